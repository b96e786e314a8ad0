package isa

// DefaultCatalog is the process-wide RV64I instruction table, built
// once at init time from the generated descriptors in
// catalog_gen.go. The interpreter and assembler consume it as a
// read-only static map; nothing mutates it after init.
var DefaultCatalog = NewCatalog()
