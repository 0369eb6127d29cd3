package wumanber

import "github.com/sirupsen/logrus"

// Table sizes. Both must be powers of two; hashes are masked with
// Size-1 after computation.
const (
	ShiftSize   = 4096 // SHIFT_SZ
	PatHashSize = 4096 // PAT_HASH_SZ

	// patternOverflowLimit is the suggested maximum pattern count.
	// Exceeding it is a warning, not a fatal error.
	patternOverflowLimit = 4 * PatHashSize
)

// chainEnd marks the end of a pattern hash chain.
const chainEnd = int32(-1)

// MatchFunc is invoked once per match found during a scan. idx is the
// 1-based pattern index in [1, NumPatterns]; offset is the 0-based byte
// offset within the scanned text buffer where the match begins. The
// matcher guarantees the callback is invoked synchronously, in order of
// non-decreasing offset, and MUST NOT be used to mutate matcher state.
type MatchFunc func(idx uint32, offset uint64, data any)

// Matcher is a preprocessed Wu–Manber multi-pattern matcher. Construct
// one with New and reuse it for any number of Scan/ScanContext calls;
// nothing about a Scan mutates the Matcher, so a single Matcher is safe
// for concurrent scans by multiple goroutines. SetFlags is the only
// method that changes it after construction and must not run
// concurrently with a scan.
type Matcher struct {
	// pattern data
	patterns [][]byte // 0-based; callback indices are patterns index + 1
	patLen   []int
	nPat     int
	pSize    int // m: length of the shortest pattern

	// variant selection
	useBS3 bool
	useBS1 bool
	nocase bool

	// canonicalization tables
	tr  [256]byte
	tr1 [256]byte

	// shift table: block hash -> safe forward advance
	shiftMin []uint32

	// pattern hash chains, arena-backed: patHash[h] holds the index of the
	// chain's head node in chainNext/chainPat, or chainEnd if the bucket
	// is empty.
	patHash   []int32
	chainNext []int32
	chainPat  []int32

	// mutable scan-policy flags; not touched by Scan/ScanContext themselves.
	oneMatchPerLine   bool
	oneMatchPerOffset bool

	// diagnostics
	name   string
	logger *logrus.Logger
}

// New constructs a Matcher from patterns. opts may be nil for defaults.
// Returns ErrNoPatterns if patterns is empty, or ErrEmptyPattern if any
// pattern has zero length.
//
// patterns is retained by reference for the Matcher's lifetime (its
// backing arrays are not copied); the caller must keep it alive and
// must not mutate it after New returns.
func New(patterns [][]byte, opts *Options) (*Matcher, error) {
	o := opts.orDefault()
	if len(patterns) == 0 {
		return nil, ErrNoPatterns
	}

	m := &Matcher{
		patterns: patterns,
		nocase:   o.NoCase,
		name:     o.Name,
		logger:   o.Logger,
	}
	if err := m.preprocess(); err != nil {
		return nil, err
	}
	return m, nil
}

// SetFlags configures per-scan reporting policy: onePerLine skips the
// cursor to the next newline after a match; onePerOffset stops walking
// the pattern chain at the first match found at a given offset. Like the
// rest of the Matcher's scan policy, SetFlags is not safe to call
// concurrently with an in-flight Scan.
func (m *Matcher) SetFlags(onePerLine, onePerOffset bool) {
	m.oneMatchPerLine = onePerLine
	m.oneMatchPerOffset = onePerOffset
}

// NumPatterns returns the number of patterns the Matcher was built from.
func (m *Matcher) NumPatterns() int { return m.nPat }

// PatternLen returns the byte length of the 1-based pattern idx.
func (m *Matcher) PatternLen(idx uint32) int { return m.patLen[idx-1] }

// ShortestPatternLen returns m, the scanner's window size.
func (m *Matcher) ShortestPatternLen() int { return m.pSize }

// NoCase reports whether the Matcher folds ASCII case.
func (m *Matcher) NoCase() bool { return m.nocase }

func (m *Matcher) logf(level logrus.Level, format string, args ...any) {
	if m.logger == nil {
		return
	}
	entry := m.logger.WithField("matcher", m.name)
	entry.Logf(level, format, args...)
}
