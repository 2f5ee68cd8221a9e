package types

import (
	"bytes"
	"testing"
)

func TestFixedBytesRoundTrip(t *testing.T) {
	v := FixedBytes{0xde, 0xad, 0xbe, 0xef}
	enc, err := Encode(v)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(enc, v) {
		t.Fatalf("FixedBytes has no framing: got % x want % x", enc, v)
	}
	dec, n, err := DecodeFixedBytes(enc, 0, 4)
	if err != nil {
		t.Fatalf("DecodeFixedBytes: %v", err)
	}
	if n != 4 || !bytes.Equal(dec, v) {
		t.Fatalf("got (%v,%d) want (%v,4)", dec, n, v)
	}
}

func TestFixedBytesJSONHex(t *testing.T) {
	v := FixedBytes{0x01, 0xab}
	if got := v.ToJSON(); got != "01ab" {
		t.Fatalf("ToJSON = %v, want 01ab", got)
	}
	dec, err := FixedBytesFromJSON("0x01ab", 2)
	if err != nil || !bytes.Equal(dec, v) {
		t.Fatalf("FixedBytesFromJSON = (%v,%v)", dec, err)
	}
}

func TestVariableByteArrayEmptyAndNonEmpty(t *testing.T) {
	empty, err := Encode(ByteArray(nil))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(empty, []byte{0x00}) {
		t.Fatalf("ByteArray(\"\") = % x, want 00", empty)
	}

	one, err := Encode(ByteArray("x"))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(one, []byte{0x01, 'x'}) {
		t.Fatalf("ByteArray(\"x\") = % x, want 01 78", one)
	}
}

func TestByteArrayDecodeEmptyBufferFails(t *testing.T) {
	if _, _, err := DecodeByteArray(nil, 0); err == nil {
		t.Fatalf("expected short buffer error decoding from empty buffer")
	}
}

func TestByteArrayRoundTrip(t *testing.T) {
	v := NewByteArray([]byte("hello, tsrkit"))
	enc, err := Encode(v)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	dec, n, err := DecodeByteArray(enc, 0)
	if err != nil {
		t.Fatalf("DecodeByteArray: %v", err)
	}
	if n != len(enc) || !bytes.Equal(dec, v) {
		t.Fatalf("got (%v,%d) want (%v,%d)", dec, n, v, len(enc))
	}
}

func TestByteArrayLimitExceeded(t *testing.T) {
	buf := EncodeVarintBytes(uint64(100_000_001))
	if _, _, err := DecodeByteArray(buf, 0); err == nil {
		t.Fatalf("expected limit exceeded error")
	}
}

func TestByteArrayAppendMutates(t *testing.T) {
	b := NewByteArray([]byte("ab"))
	b.Append('c', 'd')
	if !bytes.Equal(b, []byte("abcd")) {
		t.Fatalf("Append did not mutate: got %v", b)
	}
}
