package state_test

import (
	"testing"

	"github.com/lookbusy1344/rv64i-emulator/state"
	"github.com/stretchr/testify/assert"
)

func TestRegisterFileZeroX0(t *testing.T) {
	var regs state.RegisterFile
	regs.Set(0, 0xDEAD)
	assert.Equal(t, uint64(0xDEAD), regs.Get(0))
	regs.ZeroX0()
	assert.Equal(t, uint64(0), regs.Get(0))
}

func TestRegisterFileReset(t *testing.T) {
	var regs state.RegisterFile
	regs.Set(5, 42)
	regs.Reset()
	assert.Equal(t, uint64(0), regs.Get(5))
}

func TestPCSetMarksChanged(t *testing.T) {
	var pc state.PC
	pc.Changed = false
	pc.Set(16)
	assert.Equal(t, uint64(16), pc.Value)
	assert.True(t, pc.Changed)
}

func TestMemoryReadWriteRoundTrip(t *testing.T) {
	mem := state.NewMemory(64)
	mem.Write(0, 32, 0x41)
	assert.Equal(t, uint64(0x41), mem.Read(0, 32))
	assert.Equal(t, byte(0x41), mem.Bytes()[0])
	assert.Equal(t, byte(0), mem.Bytes()[1])
}

func TestMemoryResetClearsBytes(t *testing.T) {
	mem := state.NewMemory(16)
	mem.Write(0, 8, 0xFF)
	mem.Reset()
	assert.Equal(t, uint64(0), mem.Read(0, 8))
}

func TestMemoryOutOfBoundsPanics(t *testing.T) {
	mem := state.NewMemory(4)
	assert.Panics(t, func() { mem.Read(2, 32) })
}
