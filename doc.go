// Package types implements the tsrkit binary codec: a closed set of
// primitive and composite typed values with deterministic, bounds-checked
// binary serialization and a canonical JSON projection.
//
// Wire format choices:
//   - All multi-byte fixed-width integers are little-endian.
//   - Variable-length integers use the JAM-style prefix-run-length varint
//     in varint.go (1-9 bytes).
//   - Variable-length containers (ByteArray, String, Vector, Dictionary,
//     variable Bits) are length- or count-prefixed with that same varint.
//   - Fixed-length containers (FixedBytes, Array, fixed Bits) carry no
//     framing at all; the caller's declared size is the only length.
//   - Sum types (Choice, Option) are a one-byte (or varint, for >256
//     branches) discriminant followed by the branch encoding.
//
// Every decoder checks its declared length against a ceiling in the guard
// package before allocating, so a crafted length prefix cannot be used to
// force an unbounded allocation (see guard.Limits).
//
// Composite values (Record) never appear on the wire with any framing of
// their own: a record's encoding is exactly its fields' encodings
// concatenated in declaration order.
package types
