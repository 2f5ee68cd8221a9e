package types

// Bool is spec's one-octet boolean: 0x00 or 0x01.
type Bool bool

func (b Bool) EncodeSize() int { return 1 }

func (b Bool) EncodeInto(buffer []byte, offset int) (int, error) {
	if err := checkDest(buffer, offset, 1); err != nil {
		return 0, err
	}
	if b {
		buffer[offset] = 0x01
	} else {
		buffer[offset] = 0x00
	}
	return 1, nil
}

func (b Bool) ToJSON() any { return bool(b) }

// DecodeBool reads one octet; any non-{0x00,0x01} byte is a range error,
// since the wire contract is that a Bool is exactly one of those two.
func DecodeBool(buffer []byte, offset int) (Bool, int, error) {
	if err := checkSrc(buffer, offset, 1); err != nil {
		return false, 0, err
	}
	switch buffer[offset] {
	case 0x00:
		return false, 1, nil
	case 0x01:
		return true, 1, nil
	default:
		return false, 0, errRange(offset, "Bool byte must be 0x00 or 0x01, got %#x", buffer[offset])
	}
}

// Null is spec's zero-octet unit type.
type Null struct{}

func (Null) EncodeSize() int                              { return 0 }
func (Null) EncodeInto(buffer []byte, offset int) (int, error) { return 0, nil }
func (Null) ToJSON() any                                  { return nil }

// DecodeNull always succeeds, consuming zero bytes.
func DecodeNull(buffer []byte, offset int) (Null, int, error) { return Null{}, 0, nil }
