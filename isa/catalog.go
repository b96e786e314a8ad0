package isa

// Catalog maps a mnemonic to its descriptor. It is built once, at
// process start, by the generated table in catalog_gen.go and never
// mutated afterward.
type Catalog map[string]*Descriptor

// Lookup returns the descriptor for mnemonic, and whether it exists.
func (c Catalog) Lookup(mnemonic string) (*Descriptor, bool) {
	d, ok := c[mnemonic]
	return d, ok
}
