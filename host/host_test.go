package host_test

import (
	"testing"

	"github.com/lookbusy1344/rv64i-emulator/host"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func zeroRegisters() []string {
	regs := make([]string, 31)
	for i := range regs {
		regs[i] = "0"
	}
	return regs
}

func TestHostRunsProgram(t *testing.T) {
	h, err := host.New(zeroRegisters())
	require.NoError(t, err)

	h.SetCode("addi x1, x0, 5\nadd x2, x1, x1")
	h.Run()

	regs := h.RegistersRepr()
	assert.Equal(t, "5", regs[1].Decimal)
	assert.Equal(t, "10", regs[2].Decimal)
	assert.False(t, h.Running())
}

func TestHostBreakpointsAndErrors(t *testing.T) {
	h, err := host.New(zeroRegisters())
	require.NoError(t, err)

	h.SetCode("addi x1, x0, 1\naddi x2, x0, 2")
	h.ToggleBreakpoint(2)
	assert.True(t, h.Breakpoints()[1])
	assert.Empty(t, h.Errors())
	assert.Empty(t, h.Warnings())
}

func TestHostDoProvidesAtomicCompoundOperation(t *testing.T) {
	h, err := host.New(zeroRegisters())
	require.NoError(t, err)

	h.Do(func(core host.Embedding) {
		core.SetCode("addi x1, x0, 1")
		core.Run()
	})

	assert.False(t, h.Running())
}
