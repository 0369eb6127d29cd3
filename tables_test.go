package wumanber

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildTranslatorTablesCaseSensitive(t *testing.T) {
	tr, tr1 := buildTranslatorTables(false)
	assert.Equal(t, byte('A'), tr['A'])
	assert.Equal(t, byte('a'), tr['a'])
	assert.Equal(t, byte('A')&nibbleMask, tr1['A'])
}

func TestBuildTranslatorTablesCaseInsensitive(t *testing.T) {
	tr, _ := buildTranslatorTables(true)
	assert.Equal(t, byte('a'), tr['A'])
	assert.Equal(t, byte('z'), tr['Z'])
	assert.Equal(t, byte('0'), tr['0'], "non-letters are untouched")
}

// TestTr1CaseInvariance checks the mathematical property buildShiftTable's
// doc comment relies on: ASCII case-folding only flips bit 5 of a letter
// byte, which tr1's low-nibble mask always discards, so tr1 is identical
// whether or not nocase folding is active.
func TestTr1CaseInvariance(t *testing.T) {
	_, tr1Sensitive := buildTranslatorTables(false)
	_, tr1Insensitive := buildTranslatorTables(true)
	assert.Equal(t, tr1Sensitive, tr1Insensitive)

	for b := 0; b < 256; b++ {
		assert.Equal(t, byte(b)&nibbleMask, tr1Sensitive[b])
	}
}
