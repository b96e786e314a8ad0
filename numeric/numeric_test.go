package numeric_test

import (
	"testing"

	"github.com/lookbusy1344/rv64i-emulator/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSextBits(t *testing.T) {
	tests := []struct {
		name string
		bits []bool
		want uint64
	}{
		{"all zero", make([]bool, 12), 0},
		{"positive 12-bit", bitsLSB(0x7FF, 12), 0x7FF},
		{"negative 12-bit (-1)", bitsLSB(0xFFF, 12), 0xFFFFFFFFFFFFFFFF},
		{"negative 12-bit (-8)", bitsLSB(0xFF8, 12), 0xFFFFFFFFFFFFFFF8},
		{"positive 20-bit", bitsLSB(0x12345, 20), 0x12345},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, numeric.SextBits(tt.bits))
		})
	}
}

// Quantified invariant from the spec: for all sext_n(x, w) with w <=
// 64, the high 64-w bits equal the replicated bit w-1 of x.
func TestSextN_HighBitsReplicateSignBit(t *testing.T) {
	for _, w := range []uint{1, 4, 8, 12, 20, 32, 63} {
		for _, x := range []uint64{0, 1, 0xFF, 0xFFFFFFFF, ^uint64(0)} {
			got := numeric.SextN(x, w)
			signBit := (x >> (w - 1)) & 1
			mask := ^(uint64(1)<<w - 1)
			var want uint64
			if signBit == 1 {
				want = mask
			}
			require.Equal(t, want, got&mask, "w=%d x=%#x", w, x)
		}
	}
}

func TestSignedLess(t *testing.T) {
	assert.True(t, numeric.SignedLess(^uint64(0), 0)) // -1 < 0
	assert.False(t, numeric.SignedLess(0, ^uint64(0)))
	assert.True(t, numeric.SignedLess(5, 10))
}

func TestArithShiftRight(t *testing.T) {
	// -8 >> 1 == -4, as bit patterns.
	assert.Equal(t, uint64(0xFFFFFFFFFFFFFFFC), numeric.ArithShiftRight(uint64(int64(-8)), 1))
	assert.Equal(t, uint64(2), numeric.ArithShiftRight(4, 1))
	// Shift amount taken modulo 64.
	assert.Equal(t, numeric.ArithShiftRight(100, 2), numeric.ArithShiftRight(100, 66))
}

// Quantified invariant: mem_write(a,w,v); mem_read(a,w) round-trips to
// v masked to w bits.
func TestMemWriteReadRoundTrip(t *testing.T) {
	mem := make([]byte, 64)
	for _, tt := range []struct {
		width int
		value uint64
	}{
		{8, 0xAB},
		{16, 0xBEEF},
		{32, 0xDEADBEEF},
		{64, 0x0123456789ABCDEF},
	} {
		numeric.WriteWidth(mem, 0, tt.width, tt.value)
		got := numeric.ReadWidth(mem, 0, tt.width)
		mask := uint64(1)<<uint(tt.width) - 1
		if tt.width == 64 {
			mask = ^uint64(0)
		}
		assert.Equal(t, tt.value&mask, got)
	}
}

func TestReadWidthLittleEndian(t *testing.T) {
	mem := []byte{0x41, 0x00, 0x00, 0x00}
	assert.Equal(t, uint64(0x41), numeric.ReadWidth(mem, 0, 32))
}

func TestReadWidthSext(t *testing.T) {
	mem := []byte{0xFF}
	assert.Equal(t, uint64(0xFFFFFFFFFFFFFFFF), numeric.ReadWidthSext(mem, 0, 8))
}

func TestMemoryAccessOutOfBoundsPanics(t *testing.T) {
	mem := make([]byte, 4)
	assert.Panics(t, func() { numeric.ReadWidth(mem, 1, 32) })
	assert.Panics(t, func() { numeric.WriteWidth(mem, 4, 8, 1) })
}

func TestMemoryAccessInvalidWidthPanics(t *testing.T) {
	mem := make([]byte, 4)
	assert.Panics(t, func() { numeric.ReadWidth(mem, 0, 24) })
}

func TestFitsSigned(t *testing.T) {
	assert.True(t, numeric.FitsSigned(-1, 12))
	assert.True(t, numeric.FitsSigned(0xFFF, 12))
	assert.False(t, numeric.FitsSigned(0x1000, 12))
	assert.False(t, numeric.FitsSigned(-2049, 12))
}

func bitsLSB(value uint64, n int) []bool {
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = (value>>uint(i))&1 == 1
	}
	return bits
}
