package wumanber

import "github.com/sirupsen/logrus"

// preprocess computes pattern lengths and the shortest length m, chooses
// the scan variant, builds the canonicalization tables, then populates
// the shift table and pattern hash chains.
func (m *Matcher) preprocess() error {
	n := len(m.patterns)
	m.nPat = n
	m.patLen = make([]int, n)

	shortest := -1
	for i, p := range m.patterns {
		if len(p) == 0 {
			return ErrEmptyPattern
		}
		m.patLen[i] = len(p)
		if shortest == -1 || len(p) < shortest {
			shortest = len(p)
		}
	}
	m.pSize = shortest

	m.useBS1 = m.pSize == 1
	m.useBS3 = !m.useBS1 && n > 100 && m.pSize >= 3
	m.logVariant()

	if n > patternOverflowLimit {
		m.logf(logrus.WarnLevel, "pattern count %d exceeds suggested maximum %d", n, patternOverflowLimit)
	}

	m.tr, m.tr1 = buildTranslatorTables(m.nocase)

	m.patHash = make([]int32, PatHashSize)
	for i := range m.patHash {
		m.patHash[i] = chainEnd
	}
	m.chainNext = make([]int32, n)
	m.chainPat = make([]int32, n)

	if !m.useBS1 {
		m.buildShiftTable()
	}
	m.buildPatternChains()
	return nil
}

func (m *Matcher) logVariant() {
	variant := "bs2"
	switch {
	case m.useBS1:
		variant = "bs1"
	case m.useBS3:
		variant = "bs3"
	}
	m.logf(logrus.DebugLevel, "preprocessed %d patterns, shortest=%d, variant=%s", m.nPat, m.pSize, variant)
}

// blockWidth returns B: the number of bytes the active block hash spans.
func (m *Matcher) blockWidth() int {
	if m.useBS3 {
		return 3
	}
	return 2
}

// buildShiftTable populates shiftMin: the default cell is pSize-2 (the
// largest shift that still leaves one byte of overlap with the next
// window); every pattern then pulls its block hashes' cells down to the
// minimum safe shift for that block.
//
// Only a pattern's first pSize bytes participate — bytes beyond the
// shortest pattern length can never be the tail of a minimal window.
//
// Block hashes here are computed via tr1, the same table the scanner
// uses. This coincides with hashing raw (uncanonicalized) bytes: ASCII
// case-folding only flips bit 5 of a letter byte, which the low-nibble
// mask in tr1 always discards, so tr1[b] == b&0x0F for every byte this
// scanner ever hashes.
func (m *Matcher) buildShiftTable() {
	m.shiftMin = make([]uint32, ShiftSize)
	defaultShift := uint32(m.pSize - 2)
	for i := range m.shiftMin {
		m.shiftMin[i] = defaultShift
	}

	B := m.blockWidth()
	for _, p := range m.patterns {
		window := p[:m.pSize]
		for k := B - 1; k <= m.pSize-1; k++ {
			var h uint32
			if B == 3 {
				h = blockHash3(&m.tr1, window[k-2], window[k-1], window[k])
			} else {
				h = blockHash2(&m.tr1, window[k-1], window[k])
			}
			shift := uint32(m.pSize - 1 - k)
			if shift < m.shiftMin[h] {
				m.shiftMin[h] = shift
			}
		}
	}
}

// buildPatternChains computes each pattern's prefix hash over its first
// pSize canonicalized bytes and prepends a chain node at that bucket.
// Mask is 0xFF for bs1 (m=1, hash is simply tr[p[0]]) and 0x0F for
// bs2/bs3.
func (m *Matcher) buildPatternChains() {
	mask := uint32(nibbleMask)
	if m.useBS1 {
		mask = byteMask
	}
	for i, p := range m.patterns {
		h := prefixHash(&m.tr, p[:m.pSize], mask)
		m.chainPat[i] = int32(i)
		m.chainNext[i] = m.patHash[h]
		m.patHash[h] = int32(i)
	}
}
