package types

import (
	"encoding/hex"

	"github.com/Chainscore/tsrkit-types/guard"
)

// packBits packs bits[0:n) into ceil(n/8) bytes per order, writing into
// dst (which must already have the right length). Ported from bits.py's
// encode_into bit-packing loops.
func packBits(dst []byte, bits []bool, order BitOrder) {
	n := len(bits)
	for byteIdx := range dst {
		start := byteIdx * 8
		end := start + 8
		if end > n {
			end = n
		}
		var val byte
		for pos := start; pos < end; pos++ {
			if !bits[pos] {
				continue
			}
			if order == LSB {
				val |= 1 << uint(pos-start)
			} else {
				val |= 1 << uint(7-(pos-start))
			}
		}
		dst[byteIdx] = val
	}
}

// unpackBits unpacks n bits from src (which must hold at least
// ceil(n/8) bytes) per order.
func unpackBits(src []byte, n int, order BitOrder) []bool {
	out := make([]bool, 0, n)
	byteCount := (n + 7) / 8
	for byteIdx := 0; byteIdx < byteCount; byteIdx++ {
		b := src[byteIdx]
		for bitOffset := 0; bitOffset < 8; bitOffset++ {
			if len(out) >= n {
				break
			}
			var bit bool
			if order == LSB {
				bit = (b>>uint(bitOffset))&1 == 1
			} else {
				bit = (b>>uint(7-bitOffset))&1 == 1
			}
			out = append(out, bit)
		}
	}
	return out
}

// Bits is the variable-length bit vector: spec's `Bits[order]`. The wire
// form is a Varint bit count followed by ceil(n/8) packed bytes.
type Bits struct {
	Values []bool
	Order  BitOrder
}

func NewBits(values []bool, order BitOrder) Bits {
	return Bits{Values: values, Order: order}
}

func (b Bits) EncodeSize() int {
	return Uint(len(b.Values)).EncodeSize() + (len(b.Values)+7)/8
}

func (b Bits) EncodeInto(buffer []byte, offset int) (int, error) {
	total := b.EncodeSize()
	if err := checkDest(buffer, offset, total); err != nil {
		return 0, err
	}
	cur := offset
	n, err := EncodeVarint(buffer, cur, uint64(len(b.Values)))
	if err != nil {
		return 0, err
	}
	cur += n
	packBits(buffer[cur:cur+(len(b.Values)+7)/8], b.Values, b.Order)
	return cur + (len(b.Values)+7)/8 - offset, nil
}

func (b Bits) ToJSON() any {
	byteCount := (len(b.Values) + 7) / 8
	packed := make([]byte, byteCount)
	packBits(packed, b.Values, b.Order)
	return hex.EncodeToString(packed)
}

// DecodeBits decodes a variable-length Bits from buffer[offset:].
func DecodeBits(buffer []byte, offset int, order BitOrder) (Bits, int, error) {
	n, read, err := DecodeVarint(buffer, offset)
	if err != nil {
		return Bits{}, 0, err
	}
	lim := guard.Current()
	if lim.Check("bits", offset, int(n), lim.MaxBitsLength) {
		return Bits{}, 0, errLimitExceeded(offset, int(n), lim.MaxBitsLength)
	}
	if n > uint64(guard.BitsOverflowGuard()) {
		return Bits{}, 0, errRange(offset, "bit count %d too large for byte-count computation", n)
	}
	byteCount := int((n + 7) / 8)
	if err := checkSrc(buffer, offset+read, byteCount); err != nil {
		return Bits{}, 0, err
	}
	values := unpackBits(buffer[offset+read:offset+read+byteCount], int(n), order)
	return Bits{Values: values, Order: order}, read + byteCount, nil
}

// FixedBits is the fixed-length bit vector: spec's `Bits[L, order]`. The
// wire form omits the count prefix; ceil(L/8) bytes are packed directly.
// L is len(Values): the type stores no separate declared length, and
// neither NewFixedBits nor EncodeInto checks Values against one. Only
// DecodeFixedBits takes the length as a parameter.
type FixedBits struct {
	Values []bool
	Order  BitOrder
}

func NewFixedBits(values []bool, order BitOrder) FixedBits {
	return FixedBits{Values: values, Order: order}
}

func (b FixedBits) EncodeSize() int {
	return (len(b.Values) + 7) / 8
}

func (b FixedBits) EncodeInto(buffer []byte, offset int) (int, error) {
	size := b.EncodeSize()
	if err := checkDest(buffer, offset, size); err != nil {
		return 0, err
	}
	packBits(buffer[offset:offset+size], b.Values, b.Order)
	return size, nil
}

func (b FixedBits) ToJSON() any {
	packed := make([]byte, b.EncodeSize())
	packBits(packed, b.Values, b.Order)
	return hex.EncodeToString(packed)
}

// DecodeFixedBits decodes exactly `length` bits (no framing) from
// buffer[offset:].
func DecodeFixedBits(buffer []byte, offset int, length int, order BitOrder) (FixedBits, int, error) {
	byteCount := (length + 7) / 8
	if err := checkSrc(buffer, offset, byteCount); err != nil {
		return FixedBits{}, 0, err
	}
	values := unpackBits(buffer[offset:offset+byteCount], length, order)
	return FixedBits{Values: values, Order: order}, byteCount, nil
}
