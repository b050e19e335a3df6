package ccd

import "github.com/pkg/errors"

// Sentinel errors for the taxonomy in spec §7 that Rebuild itself can
// surface to its caller (PerFile/ResourceExhaustion are always handled
// locally and never reach here).
var (
	// ErrEmptyScan means no root yielded any candidate audio file
	// (spec §7 kind 7, §8 "Empty root list").
	ErrEmptyScan = errors.New("ccd: no candidate audio files found")
	// ErrCancelled means the caller's cancel flag was observed between
	// phases; the previous Collection remains published (spec §7 kind 6).
	ErrCancelled = errors.New("ccd: rebuild cancelled")
	// ErrNoRoots means Rebuild was called with an empty root list. It
	// wraps ErrEmptyScan, so errors.Is(err, ErrEmptyScan) also holds.
	ErrNoRoots = errors.WithMessage(ErrEmptyScan, "ccd: no root paths given")
)
