package wumanber

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlockHash2Deterministic(t *testing.T) {
	tr1 := [256]byte{}
	for i := range tr1 {
		tr1[i] = byte(i) & nibbleMask
	}
	h1 := blockHash2(&tr1, 'a', 'b')
	h2 := blockHash2(&tr1, 'a', 'b')
	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, blockHash2(&tr1, 'b', 'a'), "block hash must be order-sensitive")
	assert.Less(t, h1, uint32(ShiftSize))
}

func TestBlockHash3Deterministic(t *testing.T) {
	tr1 := [256]byte{}
	for i := range tr1 {
		tr1[i] = byte(i) & nibbleMask
	}
	h := blockHash3(&tr1, 'a', 'b', 'c')
	assert.Less(t, h, uint32(ShiftSize))
	assert.NotEqual(t, h, blockHash3(&tr1, 'c', 'b', 'a'))
}

func TestPrefixHashMatchesAcrossIdenticalWindows(t *testing.T) {
	tr := [256]byte{}
	for i := range tr {
		tr[i] = byte(i)
	}
	h1 := prefixHash(&tr, []byte("abc"), nibbleMask)
	h2 := prefixHash(&tr, []byte("abc"), nibbleMask)
	assert.Equal(t, h1, h2)
	assert.Less(t, h1, uint32(PatHashSize))
}

func TestPrefixHashSharedByCommonPrefix(t *testing.T) {
	tr := [256]byte{}
	for i := range tr {
		tr[i] = byte(i)
	}
	// "abcd" truncated to its first 3 bytes must hash identically to "abc":
	// this is what puts a longer pattern in the same chain bucket as its
	// own prefix.
	h1 := prefixHash(&tr, []byte("abcd")[:3], nibbleMask)
	h2 := prefixHash(&tr, []byte("abc"), nibbleMask)
	assert.Equal(t, h1, h2)
}
