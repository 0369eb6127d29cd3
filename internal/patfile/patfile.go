// Package patfile loads the two flat files wmgrep operates on: a
// newline-separated pattern file and a raw text file to scan. It mirrors
// load_pat_list/load_file from the original C driver, re-expressed with
// os.ReadFile and bytes.Split instead of manual read() loops.
package patfile

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
)

// LoadPatterns reads path and splits it into newline-separated patterns.
// A trailing newline produces no empty final pattern; blank lines
// elsewhere are kept as zero-length patterns, which the matcher rejects
// with wumanber.ErrEmptyPattern so the caller sees one consistent error
// path rather than two.
func LoadPatterns(path string) ([][]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open pattern file %s", path)
	}
	data = bytes.TrimSuffix(data, []byte("\n"))
	if len(data) == 0 {
		return nil, nil
	}
	lines := bytes.Split(data, []byte("\n"))
	patterns := make([][]byte, len(lines))
	for i, l := range lines {
		patterns[i] = bytes.TrimSuffix(l, []byte("\r"))
	}
	return patterns, nil
}

// LoadText reads path's raw bytes, the buffer wmgrep scans.
func LoadText(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open text file %s", path)
	}
	return data, nil
}
