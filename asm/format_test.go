package asm_test

import (
	"testing"

	"github.com/lookbusy1344/rv64i-emulator/asm"
	"github.com/stretchr/testify/assert"
)

func TestFormatCollapsesSpacing(t *testing.T) {
	got := asm.Format("add   x1,x2,x3")
	assert.Equal(t, "add x1, x2, x3", got)
}

func TestFormatLoadStoreOffset(t *testing.T) {
	got := asm.Format("lw x2,0(x0)")
	assert.Equal(t, "lw x2, 0(x0)", got)
}

func TestFormatPreservesComment(t *testing.T) {
	got := asm.Format("addi x1, x0, 5 // set x1 to 5")
	assert.Equal(t, "addi x1, x0, 5 // set x1 to 5", got)
}

func TestFormatCommentOnlyLine(t *testing.T) {
	got := asm.Format("   // just a comment")
	assert.Equal(t, "// just a comment", got)
}

func TestFormatBlankLinePreserved(t *testing.T) {
	got := asm.Format("addi x1, x0, 1\n\naddi x2, x0, 2")
	assert.Equal(t, "addi x1, x0, 1\n\naddi x2, x0, 2", got)
}
