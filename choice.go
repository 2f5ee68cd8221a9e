package types

import "github.com/Chainscore/tsrkit-types/guard"

// ChoiceDecoder decodes one branch of a Choice, returning the decoded
// value as a Codable so a single Choice type can hold heterogeneous
// branches (Go generics can't express a variadic type-parameter list the
// way spec's Choice[T0,...,TN-1] does).
type ChoiceDecoder func(buffer []byte, offset int) (Codable, int, error)

// Choice is spec's tagged union over a fixed, ordered list of branch
// types: a discriminant selecting which branch is present, followed by
// that branch's encoding. The discriminant is a 1-octet tag when the
// branch count is at most 256, else a Varint, per spec.md §4.8.
type Choice struct {
	Discriminant int
	Value        Codable
	branches     int
}

// NewChoice builds a Choice for a union of the given branch count,
// holding value at the given discriminant. Callers typically wrap this in
// a domain-specific constructor per discriminant (see option.go for the
// two-branch Option specialization).
func NewChoice(branches, discriminant int, value Codable) (Choice, error) {
	if branches <= 0 {
		return Choice{}, errRange(-1, "Choice must have at least one branch")
	}
	if discriminant < 0 || discriminant >= branches {
		return Choice{}, errRange(-1, "Choice discriminant %d out of range [0,%d)", discriminant, branches)
	}
	return Choice{Discriminant: discriminant, Value: value, branches: branches}, nil
}

// tagWidth is 1 when the branch count allows a single-octet discriminant,
// else the Varint width of the discriminant actually being encoded.
func (c Choice) tagWidth() int {
	if c.branches <= 256 {
		return 1
	}
	return varintSize(uint64(c.Discriminant))
}

func (c Choice) EncodeSize() int {
	return c.tagWidth() + c.Value.EncodeSize()
}

func (c Choice) EncodeInto(buffer []byte, offset int) (int, error) {
	cur := offset
	if c.branches <= 256 {
		if err := checkDest(buffer, cur, 1); err != nil {
			return 0, err
		}
		buffer[cur] = byte(c.Discriminant)
		cur++
	} else {
		n, err := EncodeVarint(buffer, cur, uint64(c.Discriminant))
		if err != nil {
			return 0, err
		}
		cur += n
	}
	vw, err := c.Value.EncodeInto(buffer, cur)
	if err != nil {
		return 0, err
	}
	cur += vw
	return cur - offset, nil
}

// DecodeChoice reads the discriminant (1 byte if branches<=256, else a
// Varint), rejects an out-of-range value with KindInvalidVariant, and
// dispatches to decoders[discriminant] for the payload.
func DecodeChoice(buffer []byte, offset int, branches int, decoders []ChoiceDecoder) (Choice, int, error) {
	if len(decoders) != branches {
		return Choice{}, 0, errRange(offset, "Choice: %d decoders for %d branches", len(decoders), branches)
	}

	var discriminant uint64
	cur := offset
	if branches <= 256 {
		if err := checkSrc(buffer, cur, 1); err != nil {
			return Choice{}, 0, err
		}
		discriminant = uint64(buffer[cur])
		cur++
	} else {
		d, n, err := DecodeVarint(buffer, cur)
		if err != nil {
			return Choice{}, 0, err
		}
		discriminant = d
		cur += n
	}

	if discriminant >= uint64(branches) {
		guard.Current().NotifyInvalidVariant(offset, discriminant)
		return Choice{}, 0, errInvalidVariant(offset, discriminant)
	}

	value, read, err := decoders[discriminant](buffer, cur)
	if err != nil {
		return Choice{}, 0, err
	}
	cur += read

	return Choice{Discriminant: int(discriminant), Value: value, branches: branches}, cur - offset, nil
}
