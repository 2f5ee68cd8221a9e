package types

import "fmt"

// Kind identifies the class of codec failure, independent of which type
// triggered it. Callers that want to react differently to, say, a
// corrupted buffer versus a DoS-sized length prefix should switch on Kind
// rather than string-matching Error().
type Kind int

const (
	// KindShortBuffer means not enough bytes remain in the input for the
	// claimed length or fixed width.
	KindShortBuffer Kind = iota
	// KindShortDestination means EncodeInto was called with insufficient
	// remaining capacity in the destination buffer.
	KindShortDestination
	// KindRange means a value is outside a kind's legal range on
	// construction, or an arithmetic op overflowed it.
	KindRange
	// KindEncoding means malformed UTF-8, or a value >= 2**64 on encode.
	KindEncoding
	// KindType means an element/key/value does not satisfy a typed
	// container's declared element type.
	KindType
	// KindLimitExceeded means a declared length exceeded a guard ceiling.
	KindLimitExceeded
	// KindInvalidKeyOrder means mapping keys were not strictly ascending.
	KindInvalidKeyOrder
	// KindInvalidVariant means a sum discriminant or enum integer did not
	// name a known branch/variant.
	KindInvalidVariant
	// KindMissingField means a record's JSON form lacked a required field
	// with no declared default.
	KindMissingField
)

func (k Kind) String() string {
	switch k {
	case KindShortBuffer:
		return "short_buffer"
	case KindShortDestination:
		return "short_destination"
	case KindRange:
		return "range"
	case KindEncoding:
		return "encoding"
	case KindType:
		return "type"
	case KindLimitExceeded:
		return "limit_exceeded"
	case KindInvalidKeyOrder:
		return "invalid_key_order"
	case KindInvalidVariant:
		return "invalid_variant"
	case KindMissingField:
		return "missing_field"
	default:
		return "unknown"
	}
}

// Error is the codec's single error type. Offset is the byte position at
// which the error was detected; it is -1 when not meaningful (e.g. a
// construction-time range error that never touched a buffer).
type Error struct {
	Kind   Kind
	Offset int
	Msg    string
	Cause  error
}

func (e *Error) Error() string {
	if e.Offset >= 0 {
		if e.Cause != nil {
			return fmt.Sprintf("tsrkit: %s at offset %d: %s: %v", e.Kind, e.Offset, e.Msg, e.Cause)
		}
		return fmt.Sprintf("tsrkit: %s at offset %d: %s", e.Kind, e.Offset, e.Msg)
	}
	if e.Cause != nil {
		return fmt.Sprintf("tsrkit: %s: %s: %v", e.Kind, e.Msg, e.Cause)
	}
	return fmt.Sprintf("tsrkit: %s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is an *Error with the same Kind, so callers
// can do errors.Is(err, &types.Error{Kind: types.KindLimitExceeded}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func newErr(kind Kind, offset int, format string, args ...any) *Error {
	return &Error{Kind: kind, Offset: offset, Msg: fmt.Sprintf(format, args...)}
}

func errShortBuffer(offset, need, have int) *Error {
	return newErr(KindShortBuffer, offset, "need %d bytes, have %d", need, have)
}

func errShortDestination(offset, need, have int) *Error {
	return newErr(KindShortDestination, offset, "need %d bytes, have %d", need, have)
}

func errRange(offset int, format string, args ...any) *Error {
	return newErr(KindRange, offset, format, args...)
}

func errEncoding(offset int, format string, args ...any) *Error {
	return newErr(KindEncoding, offset, format, args...)
}

func errLimitExceeded(offset int, declared, limit int) *Error {
	return newErr(KindLimitExceeded, offset, "declared length %d exceeds limit %d", declared, limit)
}

func errInvalidKeyOrder(offset, index int) *Error {
	return newErr(KindInvalidKeyOrder, offset, "key at index %d is not strictly greater than the previous key", index)
}

func errInvalidVariant(offset int, got uint64) *Error {
	return newErr(KindInvalidVariant, offset, "no branch/variant for discriminant %d", got)
}

func errMissingField(name string) *Error {
	return newErr(KindMissingField, -1, "missing required field %q with no default", name)
}
