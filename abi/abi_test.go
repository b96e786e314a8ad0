package abi_test

import (
	"testing"

	"github.com/lookbusy1344/rv64i-emulator/abi"
	"github.com/stretchr/testify/assert"
)

func TestLookupPrimaryAndAlias(t *testing.T) {
	idx, ok := abi.Lookup("x0")
	assert.True(t, ok)
	assert.Equal(t, 0, idx)

	idx, ok = abi.Lookup("zero")
	assert.True(t, ok)
	assert.Equal(t, 0, idx)

	spIdx, ok := abi.Lookup("sp")
	assert.True(t, ok)
	x2Idx, _ := abi.Lookup("x2")
	assert.Equal(t, x2Idx, spIdx)
}

func TestLookupUnknown(t *testing.T) {
	_, ok := abi.Lookup("notareg")
	assert.False(t, ok)
}

func TestCanonicalName(t *testing.T) {
	assert.Equal(t, "x0", abi.CanonicalName(0))
	assert.Equal(t, "x31", abi.CanonicalName(31))
	assert.Equal(t, "", abi.CanonicalName(32))
	assert.Equal(t, "", abi.CanonicalName(-1))
}

func TestAllRegistersResolve(t *testing.T) {
	for i := 0; i < 32; i++ {
		name := abi.CanonicalName(i)
		idx, ok := abi.Lookup(name)
		assert.True(t, ok)
		assert.Equal(t, i, idx)
	}
}
