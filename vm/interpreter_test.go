package vm_test

import (
	"testing"

	"github.com/lookbusy1344/rv64i-emulator/isa"
	"github.com/lookbusy1344/rv64i-emulator/vm"
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

func newInterpreter(t *testing.T, source string) *vm.Interpreter {
	t.Helper()
	interp, err := vm.New(isa.DefaultCatalog, zeroRegisters())
	require.NoError(t, err)
	interp.SetCode(source)
	return interp
}

func TestAddiAdd(t *testing.T) {
	interp := newInterpreter(t, "addi x1, x0, 5\nadd x2, x1, x1")
	interp.Run()
	assert.Equal(t, uint64(5), interp.RegisterValue(1))
	assert.Equal(t, uint64(10), interp.RegisterValue(2))
	assert.Equal(t, uint64(8), interp.PCValue())
}

func TestLuiAddi(t *testing.T) {
	interp := newInterpreter(t, "lui x1, 0x12345\naddi x1, x1, 0x678")
	interp.Run()
	assert.Equal(t, uint64(0x12345678), interp.RegisterValue(1))
}

func TestBranchTaken(t *testing.T) {
	src := "addi x1, x0, 1\nbeq x1, x1, 8\naddi x2, x0, 7\naddi x3, x0, 9"
	interp := newInterpreter(t, src)
	interp.Run()
	assert.Equal(t, uint64(0), interp.RegisterValue(2))
	assert.Equal(t, uint64(9), interp.RegisterValue(3))
	assert.Equal(t, uint64(16), interp.PCValue())
}

func TestStoreLoadRoundTrip(t *testing.T) {
	src := "addi x1, x0, 0x41\nsw x1, 0(x0)\nlw x2, 0(x0)"
	interp := newInterpreter(t, src)
	interp.Run()
	assert.Equal(t, uint64(0x41), interp.RegisterValue(2))
	bytes := interp.MemoryByteRepr(0, 4)
	assert.Equal(t, []string{"41", "00", "00", "00"}, bytes)
}

func TestSraiSignExtendingShift(t *testing.T) {
	src := "addi x1, x0, -8\nsrai x2, x1, 1"
	interp := newInterpreter(t, src)
	interp.Run()
	assert.Equal(t, uint64(0xFFFFFFFFFFFFFFFC), interp.RegisterValue(2))
}

func TestBreakpointInRun(t *testing.T) {
	src := "addi x1, x0, 1\naddi x2, x0, 2\naddi x3, x0, 3"
	interp := newInterpreter(t, src)
	interp.ToggleBreakpoint(2)
	interp.Run()

	assert.False(t, interp.Running())
	assert.Equal(t, uint64(4), interp.PCValue())
	assert.Equal(t, uint64(1), interp.RegisterValue(1))
	assert.Equal(t, uint64(0), interp.RegisterValue(2))
}

func TestX0AlwaysZero(t *testing.T) {
	interp := newInterpreter(t, "addi x0, x0, 5")
	interp.Run()
	assert.Equal(t, uint64(0), interp.RegisterValue(0))
}

func TestSetCodeIdempotentSkipsReparse(t *testing.T) {
	interp, err := vm.New(isa.DefaultCatalog, zeroRegisters())
	require.NoError(t, err)

	interp.SetCode("addi x1, x0, 1")
	firstErrors := interp.Errors()
	interp.SetCode("addi x1, x0, 1")
	assert.Equal(t, firstErrors, interp.Errors())
}

func TestResetClearsStateAndErrors(t *testing.T) {
	interp := newInterpreter(t, "addi x1, x0, 5")
	interp.Run()
	require.Equal(t, uint64(5), interp.RegisterValue(1))

	interp.Reset()
	assert.Equal(t, uint64(0), interp.RegisterValue(1))
	assert.Equal(t, uint64(0), interp.PCValue())
	assert.Empty(t, interp.Errors())
	assert.False(t, interp.Running())
}

func TestRunStopsAtEndOfProgram(t *testing.T) {
	interp := newInterpreter(t, "addi x1, x0, 1")
	interp.Run()
	assert.False(t, interp.Running())
}

func TestInvalidInstructionAccumulatesError(t *testing.T) {
	interp := newInterpreter(t, "frobnicate x1, x2")
	require.Len(t, interp.Errors(), 1)
	assert.Contains(t, interp.Errors()[0], "Invalid instruction on line 1")
}

func TestConstructRejectsWrongRegisterCount(t *testing.T) {
	_, err := vm.New(isa.DefaultCatalog, []string{"0"})
	assert.Error(t, err)
}

func TestConstructWithNonZeroInitialRegisters(t *testing.T) {
	regs := zeroRegisters()
	regs[0] = "7" // x1
	interp, err := vm.New(isa.DefaultCatalog, regs)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), interp.RegisterValue(1))
}
