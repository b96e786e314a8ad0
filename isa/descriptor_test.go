package isa_test

import (
	"testing"

	"github.com/lookbusy1344/rv64i-emulator/asm"
	"github.com/lookbusy1344/rv64i-emulator/isa"
	"github.com/lookbusy1344/rv64i-emulator/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseLine(t *testing.T, mnemonic, line string) []isa.Arg {
	t.Helper()
	d, ok := isa.DefaultCatalog.Lookup(mnemonic)
	require.True(t, ok)
	args, err := d.Parse(asm.Tokenize(line))
	require.NoError(t, err)
	return args
}

func TestCatalogHasAllMnemonics(t *testing.T) {
	mnemonics := []string{
		"add", "sub", "and", "or", "xor", "sll", "srl", "sra", "slt", "sltu",
		"addi", "andi", "ori", "xori", "slti", "sltiu",
		"slli", "srli", "srai",
		"lui", "auipc",
		"jal", "jalr",
		"beq", "bne", "blt", "bge", "bltu", "bgeu",
		"lb", "lh", "lw", "lbu", "lhu", "ld", "lwu",
		"sb", "sh", "sw", "sd",
		"addiw", "slliw", "srliw", "sraiw", "addw", "subw", "sllw", "srlw", "sraw",
	}
	assert.Len(t, mnemonics, 49)
	for _, m := range mnemonics {
		_, ok := isa.DefaultCatalog.Lookup(m)
		assert.True(t, ok, "missing mnemonic %s", m)
	}
}

func TestParseAddRType(t *testing.T) {
	d, _ := isa.DefaultCatalog.Lookup("add")
	args := parseLine(t, "add", "add x1, x2, x3")
	assert.Equal(t, isa.RegisterArg{Index: 1}, args[0])
	assert.Equal(t, isa.RegisterArg{Index: 2}, args[1])
	assert.Equal(t, isa.RegisterArg{Index: 3}, args[2])

	fn := d.Factory(args)
	var regs state.RegisterFile
	regs.Set(2, 4)
	regs.Set(3, 6)
	var pc state.PC
	mem := state.NewMemory(16)
	fn(&regs, &pc, mem)
	assert.Equal(t, uint64(10), regs.Get(1))
	assert.False(t, pc.Changed)
}

func TestParseWrongTokenCountReturnsFormattedError(t *testing.T) {
	d, _ := isa.DefaultCatalog.Lookup("add")
	_, err := d.Parse(asm.Tokenize("add x1, x2"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `Instruction "add"`)
	assert.Contains(t, err.Error(), "should have format")
}

func TestParseUnknownRegisterReturnsFormattedError(t *testing.T) {
	d, _ := isa.DefaultCatalog.Lookup("add")
	_, err := d.Parse(asm.Tokenize("add x1, x2, notareg"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "but instead had")
}

func TestLoadStoreRoundTrip(t *testing.T) {
	sw, _ := isa.DefaultCatalog.Lookup("sw")
	lw, _ := isa.DefaultCatalog.Lookup("lw")

	swArgs := parseLine(t, "sw", "sw x1, 0(x0)")
	lwArgs := parseLine(t, "lw", "lw x2, 0(x0)")

	var regs state.RegisterFile
	regs.Set(1, 0x41)
	var pc state.PC
	mem := state.NewMemory(16)

	sw.Factory(swArgs)(&regs, &pc, mem)
	lw.Factory(lwArgs)(&regs, &pc, mem)

	assert.Equal(t, uint64(0x41), regs.Get(2))
	assert.Equal(t, byte(0x41), mem.Bytes()[0])
}

func TestBranchTakenSetsChanged(t *testing.T) {
	beq, _ := isa.DefaultCatalog.Lookup("beq")
	args := parseLine(t, "beq", "beq x1, x1, 8")

	var regs state.RegisterFile
	pc := state.PC{Value: 4}
	mem := state.NewMemory(16)
	beq.Factory(args)(&regs, &pc, mem)

	assert.True(t, pc.Changed)
	assert.Equal(t, uint64(12), pc.Value)
}

func TestLuiThenAddiProducesExpectedValue(t *testing.T) {
	lui, _ := isa.DefaultCatalog.Lookup("lui")
	addi, _ := isa.DefaultCatalog.Lookup("addi")

	luiArgs := parseLine(t, "lui", "lui x1, 0x12345")
	addiArgs := parseLine(t, "addi", "addi x1, x1, 0x678")

	var regs state.RegisterFile
	var pc state.PC
	mem := state.NewMemory(16)

	lui.Factory(luiArgs)(&regs, &pc, mem)
	addi.Factory(addiArgs)(&regs, &pc, mem)

	assert.Equal(t, uint64(0x12345678), regs.Get(1))
}

func TestSraiSignExtends(t *testing.T) {
	addi, _ := isa.DefaultCatalog.Lookup("addi")
	srai, _ := isa.DefaultCatalog.Lookup("srai")

	addiArgs := parseLine(t, "addi", "addi x1, x0, -8")
	sraiArgs := parseLine(t, "srai", "srai x2, x1, 1")

	var regs state.RegisterFile
	var pc state.PC
	mem := state.NewMemory(16)

	addi.Factory(addiArgs)(&regs, &pc, mem)
	srai.Factory(sraiArgs)(&regs, &pc, mem)

	assert.Equal(t, uint64(0xFFFFFFFFFFFFFFFC), regs.Get(2))
}
