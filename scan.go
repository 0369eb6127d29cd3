package wumanber

import "context"

// ctxCheckInterval bounds how often ScanContext polls ctx.Err(): often
// enough for prompt cancellation, rarely enough to keep the hot loop's
// cost effectively unchanged from Scan's.
const ctxCheckInterval = 4096

// Scan scans text and reports every occurrence of every pattern via cb,
// returning the number of matches found. cb and cbData are scan
// parameters rather than matcher state: nothing about a Scan call
// mutates the Matcher, so the same Matcher may be scanned concurrently
// from multiple goroutines as long as SetFlags is not called
// concurrently with them.
func (m *Matcher) Scan(text []byte, cb MatchFunc, cbData any) int {
	n, _ := m.scan(context.Background(), text, cb, cbData)
	return n
}

// ScanContext is Scan with a cancellation checkpoint between window
// advances, checked every ctxCheckInterval steps rather than per-byte so
// it costs nothing material in the hot path. Returns the number of
// matches found before cancellation (if any) and ctx.Err().
func (m *Matcher) ScanContext(ctx context.Context, text []byte, cb MatchFunc, cbData any) (int, error) {
	return m.scan(ctx, text, cb, cbData)
}

func (m *Matcher) scan(ctx context.Context, text []byte, cb MatchFunc, cbData any) (int, error) {
	if m.useBS1 {
		return m.scanSingleByte(ctx, text, cb, cbData)
	}
	return m.scanBlock(ctx, text, cb, cbData)
}

// scanBlock implements the bs2/bs3 scanner: a sliding window whose
// cursor t always points at the candidate last byte of a length-pSize
// window. On a nonzero shift, the window advances by that amount. On a
// zero shift, the window's full prefix hash is used to walk the pattern
// hash chain, verifying each candidate against the text.
func (m *Matcher) scanBlock(ctx context.Context, text []byte, cb MatchFunc, cbData any) (int, error) {
	n := len(text)
	mLen := m.pSize
	if n < mLen {
		return 0, nil
	}

	matches := 0
	t := mLen - 1
	for step := 0; t < n; step++ {
		if step%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return matches, err
			}
		}

		var h uint32
		if m.useBS3 {
			h = blockHash3(&m.tr1, text[t-2], text[t-1], text[t])
		} else {
			h = blockHash2(&m.tr1, text[t-1], text[t])
		}
		if s := m.shiftMin[h]; s > 0 {
			t += int(s)
			continue
		}

		windowStart := t - mLen + 1
		h2 := prefixHash(&m.tr, text[windowStart:windowStart+mLen], nibbleMask)
		matched, lineJump := m.reportMatches(text, windowStart, m.patHash[h2], cb, cbData, &matches)
		if matched && m.oneMatchPerLine && lineJump >= 0 {
			t = lineJump
		}
		t++
	}
	return matches, nil
}

// scanSingleByte implements the bs1 scanner: with no block to hash (the
// shortest pattern is a single byte), the cursor byte directly indexes
// the pattern hash table.
func (m *Matcher) scanSingleByte(ctx context.Context, text []byte, cb MatchFunc, cbData any) (int, error) {
	n := len(text)
	matches := 0
	for t, step := 0, 0; t < n; t, step = t+1, step+1 {
		if step%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return matches, err
			}
		}
		chainHead := m.patHash[m.tr[text[t]]]
		if chainHead == chainEnd {
			continue
		}
		matched, lineJump := m.reportMatches(text, t, chainHead, cb, cbData, &matches)
		if matched && m.oneMatchPerLine && lineJump >= 0 {
			t = lineJump
		}
	}
	return matches, nil
}

// reportMatches walks the pattern hash chain starting at chainHead,
// verifying each candidate pattern against text[windowStart:]. It reports
// every full match via cb (1-based pattern index), honoring
// oneMatchPerOffset by stopping at the first match found. It returns
// whether anything matched and, if oneMatchPerLine is set and a match
// was found, the index of the next newline at or after windowStart (or
// the last valid text index if none exists) for the caller to jump the
// scan cursor to.
func (m *Matcher) reportMatches(text []byte, windowStart int, chainHead int32, cb MatchFunc, cbData any, matches *int) (matched bool, lineJump int) {
	lineJump = -1
	n := len(text)
	for chain := chainHead; chain != chainEnd; {
		patIdx := m.chainPat[chain]
		chain = m.chainNext[chain]

		l := m.patLen[patIdx]
		if windowStart+l > n {
			continue
		}
		if !m.verify(text[windowStart:windowStart+l], m.patterns[patIdx]) {
			continue
		}

		*matches++
		if cb != nil {
			cb(uint32(patIdx)+1, uint64(windowStart), cbData)
		}
		matched = true
		if m.oneMatchPerLine {
			lineJump = advanceToNewline(text, windowStart)
		}
		if m.oneMatchPerOffset {
			break
		}
	}
	return matched, lineJump
}

// verify compares candidate against pattern, honoring the case mode.
func (m *Matcher) verify(candidate, pattern []byte) bool {
	if m.nocase {
		for i := range pattern {
			if m.tr[candidate[i]] != m.tr[pattern[i]] {
				return false
			}
		}
		return true
	}
	for i := range pattern {
		if candidate[i] != pattern[i] {
			return false
		}
	}
	return true
}

// advanceToNewline returns the index of the first '\n' at or after from,
// or len(text)-1 if text contains none, so the caller's subsequent
// cursor increment lands exactly at the end of the buffer.
func advanceToNewline(text []byte, from int) int {
	for i := from; i < len(text); i++ {
		if text[i] == '\n' {
			return i
		}
	}
	if len(text) == 0 {
		return 0
	}
	return len(text) - 1
}
