// Package wumanber implements multi-pattern exact byte-string matching
// using the Wu–Manber algorithm.
//
// # Overview
//
// Given a set of literal byte patterns, a Matcher preprocesses them into
// a bad-shift table and a set of pattern hash chains, then scans a text
// buffer reporting every occurrence of every pattern. It is tuned for
// the regime where the pattern set is large (tens to tens of thousands)
// and the shortest pattern is short (a few bytes to a few dozen), which
// is where both a naive per-pattern scan and an Aho–Corasick automaton
// tend to lose to a sublinear-average-case shift scan.
//
// # When to Use Wu–Manber
//
// Wu–Manber excels at:
//   - Large literal pattern sets (signature/keyword databases, blocklists)
//   - Short-to-medium patterns where block hashing yields long shifts
//   - One-time preprocessing followed by many scans of different text
//
// # When NOT to Use Wu–Manber
//
// Not suitable for:
//   - Regular expressions or approximate/fuzzy matching
//   - Unicode-aware casefolding (matching is byte-oriented; the built-in
//     case-insensitive mode only folds ASCII A-Z/a-z)
//   - Streaming text that does not fit in memory
//   - A single short pattern (a plain byte search is simpler and as fast)
//
// # Tradeoffs vs Aho–Corasick
//
//   - Much smaller preprocessed state for short patterns
//   - Average-case sublinear scanning via large shifts
//   - Worst case (e.g. many patterns sharing short prefixes) degrades
//     toward linear-with-large-constant, same as Aho–Corasick's floor
//   - Aho–Corasick guarantees worst-case linear time regardless of
//     pattern overlap; Wu–Manber does not
//
// # Basic Usage
//
//	m, err := wumanber.New([][]byte{[]byte("he"), []byte("she"), []byte("his"), []byte("hers")}, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	n := m.Scan([]byte("ushers"), func(idx uint32, offset uint64, data any) {
//	    fmt.Printf("pattern %d at offset %d\n", idx, offset)
//	}, nil)
//
//	// Serialize a matcher's patterns and flags; UnmarshalBinary rebuilds
//	// the tables by running New on them.
//	data, _ := m.MarshalBinary()
//	var m2 wumanber.Matcher
//	m2.UnmarshalBinary(data)
//
// # Performance Characteristics
//
// Preprocessing: O(n*m) where n is the number of patterns and m is the
// shortest pattern length.
// Scanning: average-case sublinear in text length, worst case O(n_text*m)
// when shifts collapse to 1 throughout (e.g. dense overlapping matches).
package wumanber
