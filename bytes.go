package types

import (
	"encoding/hex"
	"math"
	"strings"

	"github.com/Chainscore/tsrkit-types/guard"
)

// FixedBytes is spec's `Bytes[L]`: exactly L octets, no length prefix.
// Construction and decoding both require exactly L bytes.
type FixedBytes []byte

func (b FixedBytes) EncodeSize() int { return len(b) }

func (b FixedBytes) EncodeInto(buffer []byte, offset int) (int, error) {
	if err := checkDest(buffer, offset, len(b)); err != nil {
		return 0, err
	}
	copy(buffer[offset:], b)
	return len(b), nil
}

func (b FixedBytes) ToJSON() any { return hex.EncodeToString(b) }

// DecodeFixedBytes reads exactly length bytes from buffer[offset:].
func DecodeFixedBytes(buffer []byte, offset, length int) (FixedBytes, int, error) {
	if err := checkSrc(buffer, offset, length); err != nil {
		return nil, 0, err
	}
	out := make([]byte, length)
	copy(out, buffer[offset:offset+length])
	return FixedBytes(out), length, nil
}

// FixedBytesFromJSON decodes a hex string (with or without a leading
// "0x") into a FixedBytes of exactly length bytes.
func FixedBytesFromJSON(s string, length int) (FixedBytes, error) {
	b, err := hexDecodeLoose(s)
	if err != nil {
		return nil, err
	}
	if len(b) != length {
		return nil, errRange(-1, "FixedBytes: hex value is %d bytes, want %d", len(b), length)
	}
	return FixedBytes(b), nil
}

func hexDecodeLoose(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errEncoding(-1, "invalid hex string %q: %v", s, err)
	}
	return b, nil
}

// Bytes is spec's variable-length, immutable octet string: a Varint byte
// count followed by that many octets.
type Bytes []byte

func (b Bytes) EncodeSize() int {
	return Uint(len(b)).EncodeSize() + len(b)
}

func (b Bytes) EncodeInto(buffer []byte, offset int) (int, error) {
	total := b.EncodeSize()
	if err := checkDest(buffer, offset, total); err != nil {
		return 0, err
	}
	n, err := EncodeVarint(buffer, offset, uint64(len(b)))
	if err != nil {
		return 0, err
	}
	copy(buffer[offset+n:], b)
	return total, nil
}

func (b Bytes) ToJSON() any { return hex.EncodeToString(b) }

// BytesFromJSON decodes a hex string (with or without "0x") into Bytes.
func BytesFromJSON(s string) (Bytes, error) {
	b, err := hexDecodeLoose(s)
	if err != nil {
		return nil, err
	}
	return Bytes(b), nil
}

// DecodeBytes reads a Varint-length-prefixed octet string from
// buffer[offset:], rejecting a declared length over
// guard.MaxByteArraySize before allocating.
func DecodeBytes(buffer []byte, offset int) (Bytes, int, error) {
	length, n, err := DecodeVarint(buffer, offset)
	if err != nil {
		return nil, 0, err
	}
	lim := guard.Current()
	declared := int(min(length, uint64(math.MaxInt)))
	if lim.Check("bytes", offset, declared, lim.MaxByteArraySize) {
		return nil, 0, errLimitExceeded(offset, declared, lim.MaxByteArraySize)
	}
	if err := checkSrc(buffer, offset+n, int(length)); err != nil {
		return nil, 0, err
	}
	out := make([]byte, length)
	copy(out, buffer[offset+n:offset+n+int(length)])
	return Bytes(out), n + int(length), nil
}
