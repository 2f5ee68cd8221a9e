package types

import (
	"math"

	"github.com/Chainscore/tsrkit-types/guard"
)

// ElemDecoder decodes a single element of type E from buffer[offset:],
// returning the element and the number of bytes consumed. Every sequence
// decode function below takes one as a parameter, since Go has no way to
// dispatch "the DecodeFrom for E" purely from a type parameter the way
// spec.md's decode_from classmethod does in a dynamically typed host.
type ElemDecoder[E Codable] func(buffer []byte, offset int) (E, int, error)

// Array is spec's fixed-length homogeneous sequence: `Array[N]` /
// `TypedArray[E,N]`. The wire form is N element encodings concatenated,
// with no framing; construction requires exactly N elements.
type Array[E Codable] struct {
	Items []E
}

// NewArray validates that items has exactly n elements.
func NewArray[E Codable](items []E, n int) (Array[E], error) {
	if len(items) != n {
		return Array[E]{}, errRange(-1, "Array[%d]: got %d elements", n, len(items))
	}
	return Array[E]{Items: items}, nil
}

func (a Array[E]) EncodeSize() int {
	total := 0
	for _, e := range a.Items {
		total += e.EncodeSize()
	}
	return total
}

func (a Array[E]) EncodeInto(buffer []byte, offset int) (int, error) {
	cur := offset
	for _, e := range a.Items {
		n, err := e.EncodeInto(buffer, cur)
		if err != nil {
			return 0, err
		}
		cur += n
	}
	return cur - offset, nil
}

func (a Array[E]) ToJSON(elemToJSON func(E) any) []any {
	out := make([]any, len(a.Items))
	for i, e := range a.Items {
		out[i] = elemToJSON(e)
	}
	return out
}

// DecodeArray decodes exactly n elements with no framing.
func DecodeArray[E Codable](buffer []byte, offset int, n int, dec ElemDecoder[E]) (Array[E], int, error) {
	items := make([]E, 0, n)
	cur := offset
	for i := 0; i < n; i++ {
		e, read, err := dec(buffer, cur)
		if err != nil {
			return Array[E]{}, 0, err
		}
		items = append(items, e)
		cur += read
	}
	return Array[E]{Items: items}, cur - offset, nil
}

// Vector is spec's variable-length homogeneous sequence: a Varint element
// count followed by that many element encodings.
type Vector[E Codable] struct {
	Items []E
}

func NewVector[E Codable](items []E) Vector[E] { return Vector[E]{Items: items} }

func (v Vector[E]) EncodeSize() int {
	total := Uint(len(v.Items)).EncodeSize()
	for _, e := range v.Items {
		total += e.EncodeSize()
	}
	return total
}

func (v Vector[E]) EncodeInto(buffer []byte, offset int) (int, error) {
	cur := offset
	n, err := EncodeVarint(buffer, cur, uint64(len(v.Items)))
	if err != nil {
		return 0, err
	}
	cur += n
	for _, e := range v.Items {
		ew, err := e.EncodeInto(buffer, cur)
		if err != nil {
			return 0, err
		}
		cur += ew
	}
	return cur - offset, nil
}

func (v Vector[E]) ToJSON(elemToJSON func(E) any) []any {
	out := make([]any, len(v.Items))
	for i, e := range v.Items {
		out[i] = elemToJSON(e)
	}
	return out
}

// DecodeVector decodes a Varint-prefixed sequence, rejecting a declared
// count over guard.MaxSequenceLength before allocating.
func DecodeVector[E Codable](buffer []byte, offset int, dec ElemDecoder[E]) (Vector[E], int, error) {
	count, n, err := DecodeVarint(buffer, offset)
	if err != nil {
		return Vector[E]{}, 0, err
	}
	lim := guard.Current()
	declared := int(min(count, uint64(math.MaxInt)))
	if lim.Check("sequence", offset, declared, lim.MaxSequenceLength) {
		return Vector[E]{}, 0, errLimitExceeded(offset, declared, lim.MaxSequenceLength)
	}
	cur := offset + n
	items := make([]E, 0, count)
	for i := uint64(0); i < count; i++ {
		e, read, err := dec(buffer, cur)
		if err != nil {
			return Vector[E]{}, 0, err
		}
		items = append(items, e)
		cur += read
	}
	return Vector[E]{Items: items}, cur - offset, nil
}

// BoundedVector is spec's `BoundedVector[min,max]`: same wire form as
// Vector, but construction enforces min <= len <= max.
type BoundedVector[E Codable] struct {
	Items    []E
	Min, Max int
}

// NewBoundedVector validates len(items) against [min, max].
func NewBoundedVector[E Codable](items []E, min, max int) (BoundedVector[E], error) {
	if len(items) < min || len(items) > max {
		return BoundedVector[E]{}, errRange(-1, "BoundedVector[%d,%d]: got %d elements", min, max, len(items))
	}
	return BoundedVector[E]{Items: items, Min: min, Max: max}, nil
}

func (v BoundedVector[E]) EncodeSize() int {
	return Vector[E]{Items: v.Items}.EncodeSize()
}

func (v BoundedVector[E]) EncodeInto(buffer []byte, offset int) (int, error) {
	return Vector[E]{Items: v.Items}.EncodeInto(buffer, offset)
}

func (v BoundedVector[E]) ToJSON(elemToJSON func(E) any) []any {
	return Vector[E]{Items: v.Items}.ToJSON(elemToJSON)
}

// DecodeBoundedVector decodes like DecodeVector but also enforces
// [min, max] on the decoded count.
func DecodeBoundedVector[E Codable](buffer []byte, offset int, min, max int, dec ElemDecoder[E]) (BoundedVector[E], int, error) {
	v, n, err := DecodeVector[E](buffer, offset, dec)
	if err != nil {
		return BoundedVector[E]{}, 0, err
	}
	if len(v.Items) < min || len(v.Items) > max {
		return BoundedVector[E]{}, 0, errRange(offset, "BoundedVector[%d,%d]: decoded %d elements", min, max, len(v.Items))
	}
	return BoundedVector[E]{Items: v.Items, Min: min, Max: max}, n, nil
}
