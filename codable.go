package types

// Codable is the per-value contract every kind in this package satisfies:
// a value knows its own encoded size and can write itself into a
// caller-owned buffer at an offset. JSON projection is not part of this
// interface (see JSONCodable below). It mirrors the teacher's Codec[V] shape (encode/decode a
// value to/from bytes) but is implemented directly on the value rather
// than via a separate adaptor, since every kind here owns a single fixed
// wire representation (spec.md is not pluggable per-value the way a cache
// codec is).
type Codable interface {
	// EncodeSize returns the exact number of bytes Encode/EncodeInto will
	// produce for the current value. Must be computable without
	// allocating.
	EncodeSize() int

	// EncodeInto writes the value at buffer[offset:] and returns the
	// number of bytes written. It returns a *Error (KindShortDestination)
	// if fewer than EncodeSize() bytes remain.
	EncodeInto(buffer []byte, offset int) (int, error)
}

// JSONCodable is a Codable whose canonical JSON projection takes no
// element-mapping callbacks: the scalar and single-value kinds (Bool,
// Uint, the fixed-width integers, Bytes/FixedBytes/ByteArray, Text,
// Bits/FixedBits, Enum). Container kinds (Array, Vector, BoundedVector,
// Dictionary, Option, Record) take explicit per-element ToJSON callbacks
// instead, since this package has no reflection-based element dispatch,
// and so are not JSONCodable themselves. Choice has no ToJSON method.
type JSONCodable interface {
	Codable
	ToJSON() any
}

// Encode is the convenience wrapper: allocate exactly EncodeSize() bytes
// and write v into them.
func Encode(v Codable) ([]byte, error) {
	buf := make([]byte, v.EncodeSize())
	if _, err := v.EncodeInto(buf, 0); err != nil {
		return nil, err
	}
	return buf, nil
}

// checkDest returns a KindShortDestination error if buffer doesn't have
// `need` bytes available starting at offset.
func checkDest(buffer []byte, offset, need int) error {
	if len(buffer)-offset < need {
		return errShortDestination(offset, need, len(buffer)-offset)
	}
	return nil
}

// checkSrc returns a KindShortBuffer error if buffer doesn't have `need`
// bytes available starting at offset.
func checkSrc(buffer []byte, offset, need int) error {
	if len(buffer)-offset < need {
		return errShortBuffer(offset, need, len(buffer)-offset)
	}
	return nil
}
