package wumanber

import "github.com/sirupsen/logrus"

// Options configures matcher construction. A nil Options is equivalent to
// DefaultOptions().
type Options struct {
	// NoCase requests ASCII-only case-insensitive matching (A-Z folded to a-z).
	NoCase bool
	// Name is a diagnostic name attached to log lines as the "matcher"
	// field, mirroring the
	// progname argument the original C driver threads through wm_search_init.
	Name string
	// Logger receives preprocessing diagnostics (variant selection, pattern
	// count warnings). A nil Logger disables logging.
	Logger *logrus.Logger
}

// DefaultOptions returns case-sensitive matching with logging disabled.
func DefaultOptions() *Options {
	return &Options{}
}

func (o *Options) orDefault() *Options {
	if o == nil {
		return DefaultOptions()
	}
	return o
}
