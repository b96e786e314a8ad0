package asm_test

import (
	"testing"

	"github.com/lookbusy1344/rv64i-emulator/asm"
	"github.com/stretchr/testify/assert"
)

func TestTokenizeSimple(t *testing.T) {
	tokens := asm.Tokenize("add x1, x2, x3")
	assert.Equal(t, []string{"add", "x1", ",", "x2", ",", "x3"}, tokens)
}

func TestTokenizeLoadStoreOffset(t *testing.T) {
	tokens := asm.Tokenize("lw x2, 0(x0)")
	assert.Equal(t, []string{"lw", "x2", ",", "0", "(", "x0", ")"}, tokens)
}

func TestTokenizeExtraWhitespace(t *testing.T) {
	tokens := asm.Tokenize("  addi\tx1,  x0,\t5  ")
	assert.Equal(t, []string{"addi", "x1", ",", "x0", ",", "5"}, tokens)
}

func TestTokenizeEmptyLine(t *testing.T) {
	assert.Empty(t, asm.Tokenize(""))
	assert.Empty(t, asm.Tokenize("   \t  "))
}

func TestTokenizeMnemonicOnly(t *testing.T) {
	assert.Equal(t, []string{"ebreak"}, asm.Tokenize("ebreak"))
}
