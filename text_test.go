package types

import (
	"testing"
)

func TestTextRoundTrip(t *testing.T) {
	s := Text("hello, tsrkit")
	enc, err := Encode(s)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	dec, n, err := DecodeText(enc, 0)
	if err != nil {
		t.Fatalf("DecodeText: %v", err)
	}
	if n != len(enc) || dec != s {
		t.Fatalf("got (%v,%d) want (%v,%d)", dec, n, s, len(enc))
	}
}

func TestTextLengthIsBytesNotCodepoints(t *testing.T) {
	s := Text("héllo") // 'é' is 2 UTF-8 bytes
	enc, err := Encode(s)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if enc[0] != byte(len(s)) {
		t.Fatalf("length prefix = %d, want byte length %d", enc[0], len(s))
	}
}

func TestTextInvalidUTF8(t *testing.T) {
	buf := []byte{0x02, 0xff, 0xfe}
	if _, _, err := DecodeText(buf, 0); err == nil {
		t.Fatalf("expected encoding error for invalid UTF-8")
	}
}

func TestTextLimitExceeded(t *testing.T) {
	buf := EncodeVarintBytes(uint64(10_000_001))
	if _, _, err := DecodeText(buf, 0); err == nil {
		t.Fatalf("expected limit exceeded error")
	}
}

func TestTextShortBuffer(t *testing.T) {
	buf := []byte{0x05, 'h', 'i'} // declares 5 bytes, only 2 present
	if _, _, err := DecodeText(buf, 0); err == nil {
		t.Fatalf("expected short buffer error")
	}
}

func TestTextJSON(t *testing.T) {
	s := Text("abc")
	if s.ToJSON() != "abc" {
		t.Fatalf("ToJSON = %v", s.ToJSON())
	}
	rt, err := TextFromJSON("abc")
	if err != nil || rt != s {
		t.Fatalf("TextFromJSON = (%v,%v)", rt, err)
	}
}
