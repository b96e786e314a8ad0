// Package state defines the three resources an RV64I semantic
// closure is allowed to touch: the register file, the program
// counter, and memory. It is a leaf package so that both the
// instruction catalog (isa, which needs the type for its semantic
// function signature) and the interpreter core (vm, which owns the
// resources) can depend on it without an import cycle.
package state

import "github.com/lookbusy1344/rv64i-emulator/numeric"

// NumRegisters is the size of the architectural register file.
const NumRegisters = 32

// RegisterFile holds the 32 general-purpose 64-bit registers. Index 0
// always reads as zero; the interpreter enforces this by zeroing it
// after every step rather than special-casing every write.
type RegisterFile struct {
	regs [NumRegisters]uint64
}

// Get returns the value of register i. Index 0 reads as 0 except
// between a write to it and the next ZeroX0.
func (r *RegisterFile) Get(i int) uint64 {
	return r.regs[i]
}

// Set writes value into register i. Writes to index 0 take effect
// transiently; the interpreter clears it again after the step.
func (r *RegisterFile) Set(i int, value uint64) {
	r.regs[i] = value
}

// Reset zeroes every register.
func (r *RegisterFile) Reset() {
	r.regs = [NumRegisters]uint64{}
}

// ZeroX0 forces register 0 back to zero. Called unconditionally after
// every step rather than guarding every individual write.
func (r *RegisterFile) ZeroX0() {
	r.regs[0] = 0
}

// PC is the program counter together with a transient flag recording
// whether the instruction just executed changed it directly (a
// branch or jump). The step loop resets Changed to false before
// invoking the semantic closure and only advances the PC by 4 itself
// when the closure left Changed false.
type PC struct {
	Value   uint64
	Changed bool
}

// Set assigns the PC and marks it as explicitly changed. Branch and
// jump semantics call this; nothing else needs to.
func (p *PC) Set(value uint64) {
	p.Value = value
	p.Changed = true
}

// Memory is a fixed-size, zero-initialized, byte-addressable flat
// array. There is no MMU, no segments, and no MMIO: every address is
// just an index.
type Memory struct {
	bytes []byte
}

// NewMemory allocates a zeroed memory of the given size.
func NewMemory(size int) *Memory {
	return &Memory{bytes: make([]byte, size)}
}

// Size returns the memory's fixed byte size.
func (m *Memory) Size() int {
	return len(m.bytes)
}

// Reset zeroes every byte.
func (m *Memory) Reset() {
	for i := range m.bytes {
		m.bytes[i] = 0
	}
}

// Read returns an unsigned value of the given bit width (8/16/32/64)
// assembled little-endian starting at addr. Panics on out-of-bounds
// access or an unsupported width; these are programmer errors, not
// recoverable runtime conditions.
func (m *Memory) Read(addr uint64, width int) uint64 {
	return numeric.ReadWidth(m.bytes, addr, width)
}

// ReadSext is Read followed by sign-extension of the low width bits.
func (m *Memory) ReadSext(addr uint64, width int) uint64 {
	return numeric.ReadWidthSext(m.bytes, addr, width)
}

// Write splits value into width/8 little-endian bytes at addr.
// Panics on out-of-bounds access or an unsupported width.
func (m *Memory) Write(addr uint64, width int, value uint64) {
	numeric.WriteWidth(m.bytes, addr, width, value)
}

// Bytes exposes the backing slice for presentation projections
// (hex/ascii dumps). Callers must not retain it past a Reset.
func (m *Memory) Bytes() []byte {
	return m.bytes
}
