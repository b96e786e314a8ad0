// Package abi exposes the RV64I register naming convention: the
// primary x0..x31 names plus the ABI aliases assembly source actually
// uses (zero, ra, sp, ...). The name table itself lives in the
// generated names_gen.go, produced by cmd/isagen from the Registers
// section of spec/rv64i.isa — see that file's doc comment.
package abi

// Lookup resolves a register token (primary name or ABI alias) to its
// 0..31 index. The second return value is false if name is not a
// recognized register.
func Lookup(name string) (int, bool) {
	idx, ok := names[name]
	return idx, ok
}

// CanonicalName returns the primary x-name for a register index, or
// "" if index is out of range. Used by presentation code that prefers
// stable names over whichever alias the source happened to use.
func CanonicalName(index int) string {
	if index < 0 || index >= len(canonical) {
		return ""
	}
	return canonical[index]
}
