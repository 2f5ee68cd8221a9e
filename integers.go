package types

import (
	"encoding/binary"
	"strconv"

	"github.com/Chainscore/tsrkit-types/config"
)

// Uint is the variable-length, non-negative integer over [0, 2^64): spec's
// "Uint (variable)". It is the general-purpose integer used for length
// prefixes throughout this package and is also a first-class Codable on
// its own.
type Uint uint64

func (u Uint) EncodeSize() int { return varintSize(uint64(u)) }

func (u Uint) EncodeInto(buffer []byte, offset int) (int, error) {
	return EncodeVarint(buffer, offset, uint64(u))
}

func (u Uint) ToJSON() any { return uint64(u) }

// FromJSONUint accepts either a JSON number or a decimal string, matching
// the teacher's json.Number-tolerant pattern of accepting loosely-typed
// input from callers that unmarshaled into interface{}.
func FromJSONUint(v any) (Uint, error) {
	switch x := v.(type) {
	case float64:
		return Uint(uint64(x)), nil
	case int64:
		return Uint(uint64(x)), nil
	case uint64:
		return Uint(x), nil
	case string:
		n, err := strconv.ParseUint(x, 10, 64)
		if err != nil {
			return 0, errEncoding(-1, "invalid uint JSON value %q: %v", x, err)
		}
		return Uint(n), nil
	default:
		return 0, errEncoding(-1, "invalid uint JSON value %v", v)
	}
}

// DecodeUint reads a Uint from buffer[offset:].
func DecodeUint(buffer []byte, offset int) (Uint, int, error) {
	v, n, err := DecodeVarint(buffer, offset)
	if err != nil {
		return 0, 0, err
	}
	return Uint(v), n, nil
}

// ---------------------------------------------------------------------- //
//                         Fixed-width integers                           //
// ---------------------------------------------------------------------- //
//
// spec.md allows U{N}/I{N} for any N that's a multiple of 8, but Go has no
// value-level generics over bit width, so (as with the teacher's
// Provider/Codec interfaces, which are likewise only instantiated for a
// fixed, known set of concrete backends) we give the canonical widths
// {8,16,32,64} concrete named types and document the rest as unsupported
// at this width. See DESIGN.md.

// U8, U16, U32, U64 are unsigned fixed-width integers, little-endian on
// the wire, exactly N/8 bytes with no framing.
type U8 uint8
type U16 uint16
type U32 uint32
type U64 uint64

// I8, I16, I32, I64 are signed fixed-width integers, two's complement,
// little-endian, exactly N/8 bytes with no framing.
type I8 int8
type I16 int16
type I32 int32
type I64 int64

func (v U8) EncodeSize() int  { return 1 }
func (v U16) EncodeSize() int { return 2 }
func (v U32) EncodeSize() int { return 4 }
func (v U64) EncodeSize() int { return 8 }
func (v I8) EncodeSize() int  { return 1 }
func (v I16) EncodeSize() int { return 2 }
func (v I32) EncodeSize() int { return 4 }
func (v I64) EncodeSize() int { return 8 }

func (v U8) EncodeInto(buffer []byte, offset int) (int, error) {
	if err := checkDest(buffer, offset, 1); err != nil {
		return 0, err
	}
	buffer[offset] = byte(v)
	return 1, nil
}

func (v U16) EncodeInto(buffer []byte, offset int) (int, error) {
	if err := checkDest(buffer, offset, 2); err != nil {
		return 0, err
	}
	binary.LittleEndian.PutUint16(buffer[offset:], uint16(v))
	return 2, nil
}

func (v U32) EncodeInto(buffer []byte, offset int) (int, error) {
	if err := checkDest(buffer, offset, 4); err != nil {
		return 0, err
	}
	binary.LittleEndian.PutUint32(buffer[offset:], uint32(v))
	return 4, nil
}

func (v U64) EncodeInto(buffer []byte, offset int) (int, error) {
	if err := checkDest(buffer, offset, 8); err != nil {
		return 0, err
	}
	binary.LittleEndian.PutUint64(buffer[offset:], uint64(v))
	return 8, nil
}

func (v I8) EncodeInto(buffer []byte, offset int) (int, error) {
	if err := checkDest(buffer, offset, 1); err != nil {
		return 0, err
	}
	buffer[offset] = byte(v)
	return 1, nil
}

func (v I16) EncodeInto(buffer []byte, offset int) (int, error) {
	if err := checkDest(buffer, offset, 2); err != nil {
		return 0, err
	}
	binary.LittleEndian.PutUint16(buffer[offset:], uint16(v))
	return 2, nil
}

func (v I32) EncodeInto(buffer []byte, offset int) (int, error) {
	if err := checkDest(buffer, offset, 4); err != nil {
		return 0, err
	}
	binary.LittleEndian.PutUint32(buffer[offset:], uint32(v))
	return 4, nil
}

func (v I64) EncodeInto(buffer []byte, offset int) (int, error) {
	if err := checkDest(buffer, offset, 8); err != nil {
		return 0, err
	}
	binary.LittleEndian.PutUint64(buffer[offset:], uint64(v))
	return 8, nil
}

func DecodeU8(buffer []byte, offset int) (U8, int, error) {
	if err := checkSrc(buffer, offset, 1); err != nil {
		return 0, 0, err
	}
	return U8(buffer[offset]), 1, nil
}

func DecodeU16(buffer []byte, offset int) (U16, int, error) {
	if err := checkSrc(buffer, offset, 2); err != nil {
		return 0, 0, err
	}
	return U16(binary.LittleEndian.Uint16(buffer[offset:])), 2, nil
}

func DecodeU32(buffer []byte, offset int) (U32, int, error) {
	if err := checkSrc(buffer, offset, 4); err != nil {
		return 0, 0, err
	}
	return U32(binary.LittleEndian.Uint32(buffer[offset:])), 4, nil
}

func DecodeU64(buffer []byte, offset int) (U64, int, error) {
	if err := checkSrc(buffer, offset, 8); err != nil {
		return 0, 0, err
	}
	return U64(binary.LittleEndian.Uint64(buffer[offset:])), 8, nil
}

func DecodeI8(buffer []byte, offset int) (I8, int, error) {
	if err := checkSrc(buffer, offset, 1); err != nil {
		return 0, 0, err
	}
	return I8(int8(buffer[offset])), 1, nil
}

func DecodeI16(buffer []byte, offset int) (I16, int, error) {
	if err := checkSrc(buffer, offset, 2); err != nil {
		return 0, 0, err
	}
	return I16(int16(binary.LittleEndian.Uint16(buffer[offset:]))), 2, nil
}

func DecodeI32(buffer []byte, offset int) (I32, int, error) {
	if err := checkSrc(buffer, offset, 4); err != nil {
		return 0, 0, err
	}
	return I32(int32(binary.LittleEndian.Uint32(buffer[offset:]))), 4, nil
}

func DecodeI64(buffer []byte, offset int) (I64, int, error) {
	if err := checkSrc(buffer, offset, 8); err != nil {
		return 0, 0, err
	}
	return I64(int64(binary.LittleEndian.Uint64(buffer[offset:]))), 8, nil
}

// JSON projections: native integers.
func (v U8) ToJSON() any  { return uint64(v) }
func (v U16) ToJSON() any { return uint64(v) }
func (v U32) ToJSON() any { return uint64(v) }
func (v U64) ToJSON() any { return uint64(v) }
func (v I8) ToJSON() any  { return int64(v) }
func (v I16) ToJSON() any { return int64(v) }
func (v I32) ToJSON() any { return int64(v) }
func (v I64) ToJSON() any { return int64(v) }

// ---------------------------------------------------------------------- //
//                  Arithmetic (type- and range-preserving)                //
// ---------------------------------------------------------------------- //
//
// Ported from integers.py's _wrap_op: a + b of the same typed integer
// yields that type, re-validated against its range; overflow is a Range
// error rather than silent wraparound. Div reports a Range error (not a
// panic) on division by zero, same as integers.py's __floordiv__ raising
// instead of letting Python's own ZeroDivisionError escape. And/Or/Xor
// can never leave a width's range, so they only return an error to keep
// a uniform (T, error) signature across the operator set; fastSkip lets
// config.IsUnsafe() bypass the redundant range re-check on Add/Sub/Mul/Div
// once a caller has already proved the inputs can't overflow.

// fastSkip reports whether redundant post-op range re-validation should
// be skipped, mirroring config.py's fast-mode/strict-validate toggles.
func fastSkip() bool { return config.IsUnsafe() }

func errDivByZero(width string) error {
	return errRange(-1, "%s division by zero", width)
}

// AddU8 etc. preserve the operand type and reject results outside it.
func AddU8(a, b U8) (U8, error) { return checkU8(uint64(a) + uint64(b)) }
func SubU8(a, b U8) (U8, error) { return checkU8Signed(int64(a) - int64(b)) }
func MulU8(a, b U8) (U8, error) { return checkU8(uint64(a) * uint64(b)) }
func DivU8(a, b U8) (U8, error) {
	if b == 0 {
		return 0, errDivByZero("U8")
	}
	return checkU8(uint64(a) / uint64(b))
}
func AndU8(a, b U8) (U8, error) { return a & b, nil }
func OrU8(a, b U8) (U8, error)  { return a | b, nil }
func XorU8(a, b U8) (U8, error) { return a ^ b, nil }

func checkU8(v uint64) (U8, error) {
	if !fastSkip() && v > 0xFF {
		return 0, errRange(-1, "U8 result %d out of range [0, 255]", v)
	}
	return U8(v), nil
}
func checkU8Signed(v int64) (U8, error) {
	if !fastSkip() && (v < 0 || v > 0xFF) {
		return 0, errRange(-1, "U8 result %d out of range [0, 255]", v)
	}
	return U8(v), nil
}

func AddU16(a, b U16) (U16, error) { return checkU16(uint64(a) + uint64(b)) }
func SubU16(a, b U16) (U16, error) { return checkU16Signed(int64(a) - int64(b)) }
func MulU16(a, b U16) (U16, error) { return checkU16(uint64(a) * uint64(b)) }
func DivU16(a, b U16) (U16, error) {
	if b == 0 {
		return 0, errDivByZero("U16")
	}
	return checkU16(uint64(a) / uint64(b))
}
func AndU16(a, b U16) (U16, error) { return a & b, nil }
func OrU16(a, b U16) (U16, error)  { return a | b, nil }
func XorU16(a, b U16) (U16, error) { return a ^ b, nil }

func checkU16(v uint64) (U16, error) {
	if !fastSkip() && v > 0xFFFF {
		return 0, errRange(-1, "U16 result %d out of range [0, 65535]", v)
	}
	return U16(v), nil
}
func checkU16Signed(v int64) (U16, error) {
	if !fastSkip() && (v < 0 || v > 0xFFFF) {
		return 0, errRange(-1, "U16 result %d out of range [0, 65535]", v)
	}
	return U16(v), nil
}

func AddU32(a, b U32) (U32, error) { return checkU32(uint64(a) + uint64(b)) }
func SubU32(a, b U32) (U32, error) { return checkU32Signed(int64(a) - int64(b)) }
func MulU32(a, b U32) (U32, error) { return checkU32(uint64(a) * uint64(b)) }
func DivU32(a, b U32) (U32, error) {
	if b == 0 {
		return 0, errDivByZero("U32")
	}
	return checkU32(uint64(a) / uint64(b))
}
func AndU32(a, b U32) (U32, error) { return a & b, nil }
func OrU32(a, b U32) (U32, error)  { return a | b, nil }
func XorU32(a, b U32) (U32, error) { return a ^ b, nil }

func checkU32(v uint64) (U32, error) {
	if !fastSkip() && v > 0xFFFFFFFF {
		return 0, errRange(-1, "U32 result %d out of range [0, 4294967295]", v)
	}
	return U32(v), nil
}
func checkU32Signed(v int64) (U32, error) {
	if !fastSkip() && (v < 0 || v > 0xFFFFFFFF) {
		return 0, errRange(-1, "U32 result %d out of range [0, 4294967295]", v)
	}
	return U32(v), nil
}

// AddU64/SubU64/MulU64 detect overflow explicitly since there is no wider
// native type to promote into.
func AddU64(a, b U64) (U64, error) {
	r := a + b
	if !fastSkip() && r < a {
		return 0, errRange(-1, "U64 addition overflow: %d + %d", a, b)
	}
	return r, nil
}

func SubU64(a, b U64) (U64, error) {
	if !fastSkip() && b > a {
		return 0, errRange(-1, "U64 subtraction underflow: %d - %d", a, b)
	}
	return a - b, nil
}

func MulU64(a, b U64) (U64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	r := a * b
	if !fastSkip() && r/a != b {
		return 0, errRange(-1, "U64 multiplication overflow: %d * %d", a, b)
	}
	return r, nil
}

func DivU64(a, b U64) (U64, error) {
	if b == 0 {
		return 0, errDivByZero("U64")
	}
	return a / b, nil
}
func AndU64(a, b U64) (U64, error) { return a & b, nil }
func OrU64(a, b U64) (U64, error)  { return a | b, nil }
func XorU64(a, b U64) (U64, error) { return a ^ b, nil }

// Signed fixed-width arithmetic. AddI8/SubI8/MulI8/DivI8 etc. widen into
// int64 (wide enough for every width up to 32 bits to never itself
// overflow) and re-validate against the narrower type's range; I64
// checks overflow explicitly, same as U64.

func AddI8(a, b I8) (I8, error) { return checkI8(int64(a) + int64(b)) }
func SubI8(a, b I8) (I8, error) { return checkI8(int64(a) - int64(b)) }
func MulI8(a, b I8) (I8, error) { return checkI8(int64(a) * int64(b)) }
func DivI8(a, b I8) (I8, error) {
	if b == 0 {
		return 0, errDivByZero("I8")
	}
	return checkI8(int64(a) / int64(b))
}
func AndI8(a, b I8) (I8, error) { return a & b, nil }
func OrI8(a, b I8) (I8, error)  { return a | b, nil }
func XorI8(a, b I8) (I8, error) { return a ^ b, nil }

func checkI8(v int64) (I8, error) {
	if !fastSkip() && (v < -0x80 || v > 0x7F) {
		return 0, errRange(-1, "I8 result %d out of range [-128, 127]", v)
	}
	return I8(v), nil
}

func AddI16(a, b I16) (I16, error) { return checkI16(int64(a) + int64(b)) }
func SubI16(a, b I16) (I16, error) { return checkI16(int64(a) - int64(b)) }
func MulI16(a, b I16) (I16, error) { return checkI16(int64(a) * int64(b)) }
func DivI16(a, b I16) (I16, error) {
	if b == 0 {
		return 0, errDivByZero("I16")
	}
	return checkI16(int64(a) / int64(b))
}
func AndI16(a, b I16) (I16, error) { return a & b, nil }
func OrI16(a, b I16) (I16, error)  { return a | b, nil }
func XorI16(a, b I16) (I16, error) { return a ^ b, nil }

func checkI16(v int64) (I16, error) {
	if !fastSkip() && (v < -0x8000 || v > 0x7FFF) {
		return 0, errRange(-1, "I16 result %d out of range [-32768, 32767]", v)
	}
	return I16(v), nil
}

func AddI32(a, b I32) (I32, error) { return checkI32(int64(a) + int64(b)) }
func SubI32(a, b I32) (I32, error) { return checkI32(int64(a) - int64(b)) }
func MulI32(a, b I32) (I32, error) { return checkI32(int64(a) * int64(b)) }
func DivI32(a, b I32) (I32, error) {
	if b == 0 {
		return 0, errDivByZero("I32")
	}
	return checkI32(int64(a) / int64(b))
}
func AndI32(a, b I32) (I32, error) { return a & b, nil }
func OrI32(a, b I32) (I32, error)  { return a | b, nil }
func XorI32(a, b I32) (I32, error) { return a ^ b, nil }

func checkI32(v int64) (I32, error) {
	if !fastSkip() && (v < -0x80000000 || v > 0x7FFFFFFF) {
		return 0, errRange(-1, "I32 result %d out of range [-2147483648, 2147483647]", v)
	}
	return I32(v), nil
}

// AddI64/SubI64/MulI64/DivI64 detect overflow explicitly since there is
// no wider native type to promote into.
func AddI64(a, b I64) (I64, error) {
	r := a + b
	if !fastSkip() && ((b > 0 && r < a) || (b < 0 && r > a)) {
		return 0, errRange(-1, "I64 addition overflow: %d + %d", a, b)
	}
	return r, nil
}

func SubI64(a, b I64) (I64, error) {
	r := a - b
	if !fastSkip() && ((b < 0 && r < a) || (b > 0 && r > a)) {
		return 0, errRange(-1, "I64 subtraction overflow: %d - %d", a, b)
	}
	return r, nil
}

func MulI64(a, b I64) (I64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	r := a * b
	if !fastSkip() && (r/a != b || (a == -1 && b == I64(minI64)) || (b == -1 && a == I64(minI64))) {
		return 0, errRange(-1, "I64 multiplication overflow: %d * %d", a, b)
	}
	return r, nil
}

const minI64 = -1 << 63

func DivI64(a, b I64) (I64, error) {
	if b == 0 {
		return 0, errDivByZero("I64")
	}
	if !fastSkip() && a == I64(minI64) && b == -1 {
		return 0, errRange(-1, "I64 division overflow: %d / %d", a, b)
	}
	return a / b, nil
}
func AndI64(a, b I64) (I64, error) { return a & b, nil }
func OrI64(a, b I64) (I64, error)  { return a | b, nil }
func XorI64(a, b I64) (I64, error) { return a ^ b, nil }

// ---------------------------------------------------------------------- //
//                       Bit <-> integer conversion                       //
// ---------------------------------------------------------------------- //

// BitOrder selects whether bit 0 of a value lands at the high end (MSB)
// or the low end (LSB) of its containing byte. Shared with the Bits type.
type BitOrder int

const (
	MSB BitOrder = iota
	LSB
)

// U64ToBits converts an N-bit-wide value to a []bool of length n, ported
// from integers.py's to_bits.
func U64ToBits(v uint64, n int, order BitOrder) []bool {
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bit := (v>>uint(i))&1 == 1
		if order == MSB {
			bits[n-1-i] = bit
		} else {
			bits[i] = bit
		}
	}
	return bits
}

// BitsToU64 is the inverse of U64ToBits.
func BitsToU64(bits []bool, order BitOrder) uint64 {
	var v uint64
	n := len(bits)
	for i, b := range bits {
		if !b {
			continue
		}
		if order == MSB {
			v |= uint64(1) << uint(n-1-i)
		} else {
			v |= uint64(1) << uint(i)
		}
	}
	return v
}
