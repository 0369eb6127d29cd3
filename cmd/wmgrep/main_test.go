package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCmd()
	var outBuf, errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestRunFindsMatches(t *testing.T) {
	patterns := writeTemp(t, "patterns.txt", "he\nshe\nhis\nhers\n")
	text := writeTemp(t, "text.txt", "ushers")

	out, errOut, err := execute(t, patterns, text)
	require.NoError(t, err)
	assert.Contains(t, out, "idx=1, 'he'")
	assert.Contains(t, out, "idx=2, 'she'")
	assert.Contains(t, out, "idx=4, 'hers'")
	assert.Contains(t, errOut, "words:")
}

func TestRunNoMatchesExitsOne(t *testing.T) {
	patterns := writeTemp(t, "patterns.txt", "zzz\n")
	text := writeTemp(t, "text.txt", "ushers")

	_, _, err := execute(t, patterns, text)
	require.Error(t, err)

	var ee *exitError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, 1, ee.code)
}

func TestRunEmptyPatternExitsTwo(t *testing.T) {
	patterns := writeTemp(t, "patterns.txt", "he\n\nshe\n")
	text := writeTemp(t, "text.txt", "ushers")

	_, _, err := execute(t, patterns, text)
	require.Error(t, err)

	var ee *exitError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, 2, ee.code)
}

func TestRunMissingFileExitsThree(t *testing.T) {
	patterns := writeTemp(t, "patterns.txt", "he\n")
	missing := filepath.Join(t.TempDir(), "missing.txt")

	_, _, err := execute(t, patterns, missing)
	require.Error(t, err)

	var ee *exitError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, 3, ee.code)
}

func TestRunCountOnlySuppressesMatchLines(t *testing.T) {
	patterns := writeTemp(t, "patterns.txt", "a\n")
	text := writeTemp(t, "text.txt", "banana")

	out, errOut, err := execute(t, "-c", patterns, text)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "words:1 3")
}

func TestRunQuietSuppressesStats(t *testing.T) {
	patterns := writeTemp(t, "patterns.txt", "a\n")
	text := writeTemp(t, "text.txt", "banana")

	_, errOut, err := execute(t, "-q", patterns, text)
	require.NoError(t, err)
	assert.Empty(t, errOut)
}

func TestRunCaseInsensitive(t *testing.T) {
	patterns := writeTemp(t, "patterns.txt", "Foo\n")
	text := writeTemp(t, "text.txt", "foo FOO Foo")

	out, _, err := execute(t, "-i", patterns, text)
	require.NoError(t, err)
	assert.Equal(t, 3, bytes.Count([]byte(out), []byte("idx=1")))
}

func TestRunUsageErrorIsNotAnExitError(t *testing.T) {
	// A wrong argument count is rejected by cobra itself, before run is
	// ever called; main's fallback branch (not an *exitError) handles it.
	_, _, err := execute(t, "onlyonearg")
	require.Error(t, err)

	var ee *exitError
	assert.False(t, errors.As(err, &ee))
}
