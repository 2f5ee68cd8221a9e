package types

import "github.com/Chainscore/tsrkit-types/guard"

// Option is spec's two-branch Choice specialization. Its polarity is
// normative and deliberately the opposite sense of a "null flag": the
// discriminant is 1 when a value is present (Some) and 0 when it is
// absent (None). Option[T](Some(zero)) and Option[T](None) therefore
// always differ in their discriminant byte even when T's zero value
// would otherwise encode identically.
type Option[T Codable] struct {
	present bool
	value   T
}

// Some builds a present Option holding v.
func Some[T Codable](v T) Option[T] { return Option[T]{present: true, value: v} }

// None builds an absent Option.
func None[T Codable]() Option[T] { return Option[T]{} }

// IsSome reports presence; this is the Option's truthiness.
func (o Option[T]) IsSome() bool { return o.present }

// Value returns the held value and whether it was present. The returned
// value is T's zero value when absent.
func (o Option[T]) Value() (T, bool) { return o.value, o.present }

func (o Option[T]) EncodeSize() int {
	if o.present {
		return 1 + o.value.EncodeSize()
	}
	return 1
}

func (o Option[T]) EncodeInto(buffer []byte, offset int) (int, error) {
	if err := checkDest(buffer, offset, 1); err != nil {
		return 0, err
	}
	if !o.present {
		buffer[offset] = 0x00
		return 1, nil
	}
	buffer[offset] = 0x01
	vw, err := o.value.EncodeInto(buffer, offset+1)
	if err != nil {
		return 0, err
	}
	return 1 + vw, nil
}

func (o Option[T]) ToJSON(valueToJSON func(T) any) any {
	if !o.present {
		return nil
	}
	return valueToJSON(o.value)
}

// DecodeOption reads the one-octet discriminant and, if 1, decodes the
// payload with dec; any byte other than 0x00/0x01 is KindInvalidVariant,
// the same Kind a two-branch Choice would reject it with.
func DecodeOption[T Codable](buffer []byte, offset int, dec ElemDecoder[T]) (Option[T], int, error) {
	if err := checkSrc(buffer, offset, 1); err != nil {
		return Option[T]{}, 0, err
	}
	switch buffer[offset] {
	case 0x00:
		return Option[T]{}, 1, nil
	case 0x01:
		v, read, err := dec(buffer, offset+1)
		if err != nil {
			return Option[T]{}, 0, err
		}
		return Option[T]{present: true, value: v}, 1 + read, nil
	default:
		guard.Current().NotifyInvalidVariant(offset, uint64(buffer[offset]))
		return Option[T]{}, 0, errInvalidVariant(offset, uint64(buffer[offset]))
	}
}
