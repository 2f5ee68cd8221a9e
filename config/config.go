// Package config holds the process-wide encode/decode toggles this
// codec exposes, grounded in tsrkit_types/config.py's environment-driven
// globals. Unlike the Python original, mutation goes through an atomic
// value rather than bare module globals, since Go gives concurrent
// callers no implicit GIL-style serialization.
package config

import (
	"os"
	"sync/atomic"
)

// DictOrder selects how a Dictionary's entries are ordered on encode.
// Sorted is the wire-canonical form that Dictionary's EncodeInto always
// produces, whatever this option says; Insertion only unlocks the
// separate, non-canonical Dictionary.EncodeInsertionOrder, which returns
// an error under any other setting.
type DictOrder int

const (
	DictOrderSorted DictOrder = iota
	DictOrderInsertion
)

// Options bundles this package's runtime toggles, mirroring the
// teacher's small Options-struct-plus-coalesce pattern (defaults.go)
// rather than bare package-level globals.
type Options struct {
	// FastMode skips redundant re-validation on paths that already
	// proved a value's invariants hold (e.g. the post-op range re-check
	// in the fixed-width integer arithmetic functions). Off by default.
	FastMode bool
	// StrictValidate is true by default. Turning it off enables the same
	// fast paths as FastMode; leaving it on does not override FastMode
	// (see IsUnsafe).
	StrictValidate bool
	// DictOrder records the caller's intended Dictionary ordering
	// discipline; see DictOrder's doc comment.
	DictOrder DictOrder
}

// coalesce returns def when v is the zero value of T, else v.
func coalesce[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}

// defaultOptions reads TSRKIT_TYPES_FAST_MODE, TSRKIT_TYPES_STRICT_VALIDATE
// and TSRKIT_TYPES_DICT_ORDER from the environment, matching config.py's
// defaults exactly (strict validation on, fast mode off, sorted order).
func defaultOptions() Options {
	o := Options{
		FastMode:       os.Getenv("TSRKIT_TYPES_FAST_MODE") == "1",
		StrictValidate: os.Getenv("TSRKIT_TYPES_STRICT_VALIDATE") != "0",
		DictOrder:      DictOrderSorted,
	}
	if os.Getenv("TSRKIT_TYPES_DICT_ORDER") == "insertion" {
		o.DictOrder = DictOrderInsertion
	}
	return o
}

var current atomic.Pointer[Options]

func init() {
	o := defaultOptions()
	current.Store(&o)
}

// Current returns the process-wide options in effect.
func Current() Options { return *current.Load() }

// Set replaces the process-wide options wholesale. Zero-valued fields in
// opts are NOT coalesced against the previous value: Set is an absolute
// assignment, unlike the per-field setters below.
func Set(opts Options) { current.Store(&opts) }

// SetFastMode enables or disables fast/unsafe paths.
func SetFastMode(enabled bool) {
	o := Current()
	o.FastMode = enabled
	current.Store(&o)
}

// SetStrictValidate enables or disables strict re-validation.
func SetStrictValidate(enabled bool) {
	o := Current()
	o.StrictValidate = enabled
	current.Store(&o)
}

// SetDictOrder records the caller's intended Dictionary ordering.
func SetDictOrder(order DictOrder) {
	o := Current()
	o.DictOrder = order
	current.Store(&o)
}

// IsUnsafe reports whether fast paths are permitted: true when FastMode
// is on, or when StrictValidate has been turned off.
func IsUnsafe() bool {
	o := Current()
	return o.FastMode || !o.StrictValidate
}

// WithDefault applies coalesce to opts against process defaults, for
// call sites that take an Options value where the zero value should mean
// "use Current()".
func WithDefault(opts Options) Options {
	def := Current()
	return Options{
		FastMode:       coalesce(opts.FastMode, def.FastMode),
		StrictValidate: coalesce(opts.StrictValidate, def.StrictValidate),
		DictOrder:      coalesce(opts.DictOrder, def.DictOrder),
	}
}
