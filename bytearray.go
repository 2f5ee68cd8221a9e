package types

import (
	"encoding/hex"
	"math"

	"github.com/Chainscore/tsrkit-types/guard"
)

// ByteArray is spec's mutable variable-length octet string. Its wire form
// is identical to Bytes (Varint length prefix + octets); the only
// difference from Bytes is that callers are expected to mutate it in
// place (Append) rather than treat it as immutable.
type ByteArray []byte

// NewByteArray makes a ByteArray that owns a copy of data.
func NewByteArray(data []byte) ByteArray {
	out := make([]byte, len(data))
	copy(out, data)
	return ByteArray(out)
}

// Append mutates the ByteArray in place, mirroring bytearray.py's
// inherited mutability.
func (b *ByteArray) Append(data ...byte) {
	*b = append(*b, data...)
}

func (b ByteArray) EncodeSize() int {
	return Uint(len(b)).EncodeSize() + len(b)
}

func (b ByteArray) EncodeInto(buffer []byte, offset int) (int, error) {
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

func (b ByteArray) ToJSON() any { return hex.EncodeToString(b) }

// ByteArrayFromJSON decodes a hex string (with or without "0x").
func ByteArrayFromJSON(s string) (ByteArray, error) {
	b, err := hexDecodeLoose(s)
	if err != nil {
		return nil, err
	}
	return ByteArray(b), nil
}

// DecodeByteArray reads a Varint-length-prefixed octet string, rejecting a
// declared length over guard.MaxByteArraySize before allocating.
func DecodeByteArray(buffer []byte, offset int) (ByteArray, int, error) {
	length, n, err := DecodeVarint(buffer, offset)
	if err != nil {
		return nil, 0, err
	}
	lim := guard.Current()
	declared := int(min(length, uint64(math.MaxInt)))
	if lim.Check("bytearray", offset, declared, lim.MaxByteArraySize) {
		return nil, 0, errLimitExceeded(offset, declared, lim.MaxByteArraySize)
	}
	if err := checkSrc(buffer, offset+n, int(length)); err != nil {
		return nil, 0, err
	}
	out := make([]byte, length)
	copy(out, buffer[offset+n:offset+n+int(length)])
	return ByteArray(out), n + int(length), nil
}
