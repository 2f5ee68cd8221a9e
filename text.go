package types

import (
	"math"
	"unicode/utf8"

	"github.com/Chainscore/tsrkit-types/guard"
)

// Text is spec's UTF-8 string: a Varint byte-length prefix (the length
// unit is bytes, not code points) followed by the UTF-8 bytes.
type Text string

func (s Text) EncodeSize() int {
	return Uint(len(s)).EncodeSize() + len(s)
}

func (s Text) EncodeInto(buffer []byte, offset int) (int, error) {
	total := s.EncodeSize()
	if err := checkDest(buffer, offset, total); err != nil {
		return 0, err
	}
	n, err := EncodeVarint(buffer, offset, uint64(len(s)))
	if err != nil {
		return 0, err
	}
	copy(buffer[offset+n:], s)
	return total, nil
}

func (s Text) ToJSON() any { return string(s) }

func TextFromJSON(s string) (Text, error) { return Text(s), nil }

// DecodeText reads a Varint-byte-length-prefixed UTF-8 string from
// buffer[offset:]. A declared length over guard.MaxStringBytes is
// rejected before allocating; invalid UTF-8 is a KindEncoding error.
func DecodeText(buffer []byte, offset int) (Text, int, error) {
	length, n, err := DecodeVarint(buffer, offset)
	if err != nil {
		return "", 0, err
	}
	lim := guard.Current()
	declared := int(min(length, uint64(math.MaxInt)))
	if lim.Check("string", offset, declared, lim.MaxStringBytes) {
		return "", 0, errLimitExceeded(offset, declared, lim.MaxStringBytes)
	}
	if err := checkSrc(buffer, offset+n, int(length)); err != nil {
		return "", 0, err
	}
	raw := buffer[offset+n : offset+n+int(length)]
	if !utf8.Valid(raw) {
		return "", 0, errEncoding(offset+n, "invalid UTF-8 in String")
	}
	return Text(raw), n + int(length), nil
}
