package collection

import "github.com/pkg/errors"

// Sentinel errors for the Format taxonomy (spec §7 kind 2). IO errors are
// not given sentinels here - os/io errors are wrapped with pkg/errors and
// propagated as-is, matching the teacher's style of wrapping stdlib errors
// rather than redeclaring them.
var (
	// ErrBadMagic means the first 24 bytes of a file did not match the
	// expected magic string.
	ErrBadMagic = errors.New("bad magic header")
	// ErrUnrecognizedVersion means the version byte did not match the
	// current version nor any known historical version (spec §4.H).
	ErrUnrecognizedVersion = errors.New("unrecognized format version")
	// ErrTruncatedBody means the body ended before a length-prefixed field
	// could be fully read.
	ErrTruncatedBody = errors.New("truncated body")
)
