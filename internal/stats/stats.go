// Package stats tracks per-invocation match statistics for the wmgrep
// command: how many distinct patterns fired and how many matches were
// found in total. The original C driver kept this as file-scope global
// arrays (pat_count[4*PAT_HASH_SZ], distinct_count, noprint); a single
// invocation of wmgrep only ever needs one of these, so it is a plain
// struct that wmgrep's MatchFunc closure records into instead.
package stats

// Counters accumulates match statistics across one or more Scan calls.
// The zero value is ready to use.
type Counters struct {
	seen  map[uint32]bool
	total uint64
}

// NewCounters returns a Counters ready to record up to capacity distinct
// pattern indices without reallocating its internal set.
func NewCounters(capacity int) *Counters {
	return &Counters{seen: make(map[uint32]bool, capacity)}
}

// Record registers one match of the pattern at idx. Intended to be
// wrapped in a wumanber.MatchFunc closure by the caller.
func (c *Counters) Record(idx uint32) {
	if c.seen == nil {
		c.seen = make(map[uint32]bool)
	}
	c.seen[idx] = true
	c.total++
}

// Distinct returns the number of distinct pattern indices that matched.
func (c *Counters) Distinct() int { return len(c.seen) }

// Total returns the total number of matches recorded.
func (c *Counters) Total() uint64 { return c.total }
