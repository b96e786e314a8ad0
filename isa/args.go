// Package isa holds the RV64I instruction catalog: the typed operand
// model, the instruction descriptor record, and the generated table
// that binds every mnemonic to a descriptor and a semantic factory.
package isa

import "github.com/lookbusy1344/rv64i-emulator/numeric"

// Arg is the tagged-union operand a Descriptor.Parse produces for one
// matched token. Exactly one of RegisterArg, Imm12, Imm20, or
// ShamtArg implements it for any given placeholder kind.
type Arg interface {
	isArg()
}

// RegisterArg names a general-purpose register by its 0..31 index.
type RegisterArg struct {
	Index int
}

func (RegisterArg) isArg() {}

// Imm12 stores a signed 12-bit field LSB-first, as produced by
// asm.ParseImmediate. Value sign-extends it to a full 64-bit word.
type Imm12 struct {
	Bits [12]bool
}

func (Imm12) isArg() {}

// Value returns the sign-extended 64-bit value of the field.
func (i Imm12) Value() uint64 {
	return numeric.SextBits(i.Bits[:])
}

// Imm20 stores a signed 20-bit field LSB-first.
type Imm20 struct {
	Bits [20]bool
}

func (Imm20) isArg() {}

// Value returns the sign-extended 64-bit value of the field.
func (i Imm20) Value() uint64 {
	return numeric.SextBits(i.Bits[:])
}

// ShamtArg is an unsigned shift amount. The parser performs no width
// check; semantics mask the low bits they need at the point of use.
type ShamtArg struct {
	Amount uint64
}

func (ShamtArg) isArg() {}
