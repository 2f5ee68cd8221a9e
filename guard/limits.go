// Package guard holds the security ceilings applied to every
// variable-length decode in this module, and the bounds checks that apply
// them. Grounded in tsrkit_types/constants.py (the source of truth for
// the suggested values) and in the teacher's bounds-checked,
// allocate-nothing-on-reject decode style (internal/wire/wire.go, which
// validates every length against the remaining buffer before slicing).
package guard

import "sync/atomic"

// Ceilings on declared lengths for variable-size kinds. A decoder MUST
// check its declared length against the relevant ceiling before
// allocating or indexing, so a forged length prefix can never force an
// unbounded allocation.
const (
	MaxSequenceLength  = 10_000_000  // items in a Vector/BoundedVector
	MaxDictionarySize  = 1_000_000   // entries in a Dictionary
	MaxByteArraySize   = 100_000_000 // bytes in a ByteArray/variable Bytes
	MaxStringBytes     = 10_000_000  // UTF-8 bytes in a String
	MaxBitsLength      = 80_000_000  // bits in a variable Bits
	MaxNestingDepth    = 100         // nested nesting depth for structures
	bitsOverflowGuard  = 1<<63 - 8   // ceiling for n before (n+7)/8 could overflow
)

// LimitHook is called (if non-nil) the moment a decoder is about to
// reject a value for exceeding one of the ceilings above, before the
// error is returned. It exists purely for observability: see the diag
// package for ready-made implementations that sample/rate-limit and
// forward to a structured logger. A nil hook (the default) costs
// nothing.
type LimitHook func(kind string, offset, declared, limit int)

// KeyOrderHook is called when a Dictionary decode rejects an
// out-of-order or duplicate key, before the error is returned.
type KeyOrderHook func(offset, index int)

// VariantHook is called when a Choice/Enum decode rejects a discriminant
// that names no declared branch/variant, before the error is returned.
type VariantHook func(offset int, discriminant uint64)

// Limits bundles the ceilings together with optional observability
// hooks, mirroring the teacher's small Options-struct-plus-coalesce
// pattern (api.go, defaults.go) rather than inventing a new shape. The
// hooks are the one place this package crosses into observability: a
// caller wires diag.Hooks in by constructing a Limits whose hook fields
// forward into them (see diag.Attach) and installing it with SetCurrent.
type Limits struct {
	MaxSequenceLength int
	MaxDictionarySize int
	MaxByteArraySize  int
	MaxStringBytes    int
	MaxBitsLength     int
	MaxNestingDepth   int

	Hook              LimitHook
	OnInvalidKeyOrder KeyOrderHook
	OnInvalidVariant  VariantHook
}

// Default returns the suggested ceilings from spec.md §4.11, with no
// observability hooks attached.
func Default() Limits {
	return Limits{
		MaxSequenceLength: MaxSequenceLength,
		MaxDictionarySize: MaxDictionarySize,
		MaxByteArraySize:  MaxByteArraySize,
		MaxStringBytes:    MaxStringBytes,
		MaxBitsLength:     MaxBitsLength,
		MaxNestingDepth:   MaxNestingDepth,
	}
}

var current atomic.Pointer[Limits]

func init() {
	l := Default()
	current.Store(&l)
}

// Current returns the process-wide Limits every decoder in this module
// consults. Defaults to Default() until SetCurrent is called.
func Current() Limits { return *current.Load() }

// SetCurrent installs l as the process-wide Limits, e.g. after attaching
// diag hooks with diag.Attach.
func SetCurrent(l Limits) { current.Store(&l) }

// Check reports whether declared exceeds limit, firing the hook first if
// the caller registered one.
func (l Limits) Check(kind string, offset, declared, limit int) bool {
	exceeded := declared > limit
	if exceeded && l.Hook != nil {
		l.Hook(kind, offset, declared, limit)
	}
	return exceeded
}

// NotifyInvalidKeyOrder fires OnInvalidKeyOrder if set. Callers invoke
// this only once they've already decided to reject the decode.
func (l Limits) NotifyInvalidKeyOrder(offset, index int) {
	if l.OnInvalidKeyOrder != nil {
		l.OnInvalidKeyOrder(offset, index)
	}
}

// NotifyInvalidVariant fires OnInvalidVariant if set.
func (l Limits) NotifyInvalidVariant(offset int, discriminant uint64) {
	if l.OnInvalidVariant != nil {
		l.OnInvalidVariant(offset, discriminant)
	}
}

// BitsOverflowGuard is the ceiling integers.py's decode_from checks bit
// counts against before computing ceil(n/8), to avoid overflowing that
// computation on a maliciously large n.
func BitsOverflowGuard() int64 { return bitsOverflowGuard }
