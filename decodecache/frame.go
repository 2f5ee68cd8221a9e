// Envelope format stored under each cache key, adapted from the
// teacher's internal/wire single-entry frame: a magic+version header
// wraps the Codec-serialized payload so a future incompatible change to
// how entries are encoded can be detected instead of silently
// misinterpreted. The teacher's per-entry generation counter and bulk
// variant are CAS-specific (this cache has no compare-and-swap concept)
// and are dropped; see DESIGN.md.
package decodecache

import (
	"bytes"
	"encoding/binary"
	"errors"
)

const (
	frameVersion byte = 1
)

var (
	// ErrCorruptEntry is returned when a stored entry doesn't conform to
	// the expected magic/version/length framing.
	ErrCorruptEntry = errors.New("decodecache: corrupt entry")

	frameMagic = [...]byte{'T', 'D', 'C', '1'} // "tsrkit decodecache", v1
)

func hasFrameMagic(b []byte) bool {
	return len(b) >= 4 && bytes.Equal(b[:4], frameMagic[:])
}

// IsFrame reports whether b carries a well-formed decodecache envelope
// (magic, known version, and a length field that accounts for the whole
// buffer) without fully decoding the payload. Provider backends use this
// as a cheap structural check to self-heal from a corrupted or
// foreign entry stored under a decodecache key, the way the teacher's
// ristretto backend self-healed from an unexpected value shape.
func IsFrame(b []byte) bool {
	const hdr = 4 + 1 + 4
	if len(b) < hdr || !hasFrameMagic(b) || b[4] != frameVersion {
		return false
	}
	vlen := int(binary.BigEndian.Uint32(b[5:9]))
	return vlen >= 0 && 9+vlen == len(b)
}

// frameEncode wraps payload in the magic/version/length envelope.
//
// Layout: magic(4) | version(1) | len(u32) | payload(len)
func frameEncode(payload []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(4 + 1 + 4 + len(payload))
	buf.Write(frameMagic[:])
	buf.WriteByte(frameVersion)

	var u4 [4]byte
	binary.BigEndian.PutUint32(u4[:], uint32(len(payload)))
	buf.Write(u4[:])
	buf.Write(payload)
	return buf.Bytes()
}

// frameDecode unwraps an envelope produced by frameEncode. The returned
// payload is a zero-copy subslice of b; strict framing requires the
// frame to consume the entire buffer, with no trailing bytes.
func frameDecode(b []byte) ([]byte, error) {
	const hdr = 4 + 1 + 4
	if len(b) < hdr || !hasFrameMagic(b) || b[4] != frameVersion {
		return nil, ErrCorruptEntry
	}
	vlen := int(binary.BigEndian.Uint32(b[5:9]))
	if vlen < 0 || 9+vlen != len(b) {
		return nil, ErrCorruptEntry
	}
	return b[9 : 9+vlen], nil
}
