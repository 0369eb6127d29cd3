package wumanber

import "errors"

// Sentinel errors returned by matcher construction and serialization.
var (
	// ErrEmptyPattern is returned when the pattern list contains a zero-length pattern.
	ErrEmptyPattern = errors.New("wumanber: pattern list contains an empty pattern")
	// ErrNoPatterns is returned when New is called with an empty pattern list.
	ErrNoPatterns = errors.New("wumanber: pattern list is empty")
	// ErrBadMagic is returned when UnmarshalBinary is given data with an unrecognized header.
	ErrBadMagic = errors.New("wumanber: unrecognized matcher encoding")
	// ErrBadVersion is returned when UnmarshalBinary is given data encoded by an incompatible version.
	ErrBadVersion = errors.New("wumanber: unsupported matcher encoding version")
	// ErrTruncated is returned when UnmarshalBinary runs out of input before the encoded matcher ends.
	ErrTruncated = errors.New("wumanber: truncated matcher encoding")
)
