package types

import "github.com/Chainscore/tsrkit-types/guard"

// Enum is spec's name<->integer enumeration: the wire form is a Varint of
// the variant's integer; the JSON form accepts either the integer or the
// variant name on input, and always emits the name on output.
type Enum struct {
	value int
	names map[int]string
	byName map[string]int
}

// NewEnum declares an enumeration from its name->integer mapping and
// returns a constructor bound to that mapping. variants must be
// non-empty and have no duplicate integers.
func NewEnum(variants map[string]int) (func(name string) (Enum, error), error) {
	if len(variants) == 0 {
		return nil, errRange(-1, "Enum must declare at least one variant")
	}
	names := make(map[int]string, len(variants))
	byName := make(map[string]int, len(variants))
	for name, v := range variants {
		if _, dup := names[v]; dup {
			return nil, errRange(-1, "Enum: duplicate integer %d", v)
		}
		names[v] = name
		byName[name] = v
	}
	return func(name string) (Enum, error) {
		v, ok := byName[name]
		if !ok {
			return Enum{}, errInvalidVariant(-1, uint64(v))
		}
		return Enum{value: v, names: names, byName: byName}, nil
	}, nil
}

// enumByInt builds an Enum directly from an integer value already known
// to be a declared variant; used by DecodeEnum.
func enumByInt(value int, names map[int]string, byName map[string]int) Enum {
	return Enum{value: value, names: names, byName: byName}
}

// Int returns the variant's underlying integer.
func (e Enum) Int() int { return e.value }

// Name returns the variant's declared name.
func (e Enum) Name() string { return e.names[e.value] }

func (e Enum) EncodeSize() int { return Uint(e.value).EncodeSize() }

func (e Enum) EncodeInto(buffer []byte, offset int) (int, error) {
	return EncodeVarint(buffer, offset, uint64(e.value))
}

// ToJSON always emits the variant name.
func (e Enum) ToJSON() any { return e.Name() }

// EnumFromJSON accepts either a variant name (string) or its integer
// value (float64/int64/uint64, via the JSON-number decoding of
// FromJSONUint) and resolves it against the given mapping.
func EnumFromJSON(value any, names map[int]string, byName map[string]int) (Enum, error) {
	switch v := value.(type) {
	case string:
		i, ok := byName[v]
		if !ok {
			return Enum{}, errInvalidVariant(-1, 0)
		}
		return enumByInt(i, names, byName), nil
	default:
		u, err := FromJSONUint(value)
		if err != nil {
			return Enum{}, err
		}
		i := int(u)
		if _, ok := names[i]; !ok {
			return Enum{}, errInvalidVariant(-1, uint64(i))
		}
		return enumByInt(i, names, byName), nil
	}
}

// DecodeEnum reads a Varint discriminant and looks it up against names;
// an integer with no declared variant is KindInvalidVariant.
func DecodeEnum(buffer []byte, offset int, names map[int]string, byName map[string]int) (Enum, int, error) {
	v, n, err := DecodeVarint(buffer, offset)
	if err != nil {
		return Enum{}, 0, err
	}
	if _, ok := names[int(v)]; !ok {
		guard.Current().NotifyInvalidVariant(offset, v)
		return Enum{}, 0, errInvalidVariant(offset, v)
	}
	return enumByInt(int(v), names, byName), n, nil
}
