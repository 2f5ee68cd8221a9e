package types

import (
	"bytes"
	"testing"
)

func mustEncodeVarint(t *testing.T, v uint64) []byte {
	t.Helper()
	buf := make([]byte, varintSize(v))
	n, err := EncodeVarint(buf, 0, v)
	if err != nil {
		t.Fatalf("EncodeVarint(%d): %v", v, err)
	}
	if n != len(buf) {
		t.Fatalf("EncodeVarint(%d): wrote %d bytes, want %d", v, n, len(buf))
	}
	return buf
}

func TestVarintKnownVectors(t *testing.T) {
	cases := []struct {
		v    uint64
		want []byte
	}{
		{0, []byte{0x00}},
		{127, []byte{0x7f}},
		{128, []byte{0x80, 0x80}},
	}
	for _, tc := range cases {
		got := mustEncodeVarint(t, tc.v)
		if !bytes.Equal(got, tc.want) {
			t.Fatalf("encode(%d) = % x, want % x", tc.v, got, tc.want)
		}
		dv, n, err := DecodeVarint(got, 0)
		if err != nil {
			t.Fatalf("decode(%d): %v", tc.v, err)
		}
		if dv != tc.v || n != len(got) {
			t.Fatalf("decode(%d) = (%d, %d), want (%d, %d)", tc.v, dv, n, tc.v, len(got))
		}
	}
}

func TestVarintRoundTripBoundaries(t *testing.T) {
	values := []uint64{
		0, 1, 126, 127, 128, 129,
		16383, 16384,
		1<<21 - 1, 1 << 21,
		1<<28 - 1, 1 << 28,
		1<<56 - 1, 1 << 56,
		1<<64 - 1,
	}
	for _, v := range values {
		enc := mustEncodeVarint(t, v)
		dv, n, err := DecodeVarint(enc, 0)
		if err != nil {
			t.Fatalf("decode(%d): %v", v, err)
		}
		if dv != v {
			t.Fatalf("decode(%d) = %d", v, dv)
		}
		if n != len(enc) {
			t.Fatalf("decode(%d) consumed %d, want %d", v, n, len(enc))
		}
	}
}

func TestVarintPowersOfTwoRoundTrip(t *testing.T) {
	for shift := 0; shift <= 63; shift++ {
		v := uint64(1) << uint(shift)
		enc := mustEncodeVarint(t, v)
		dv, n, err := DecodeVarint(enc, 0)
		if err != nil {
			t.Fatalf("shift %d: decode error: %v", shift, err)
		}
		if dv != v || n != len(enc) {
			t.Fatalf("shift %d: round trip mismatch got (%d,%d) want (%d,%d)", shift, dv, n, v, len(enc))
		}
	}
}

func TestVarintShortBuffer(t *testing.T) {
	if _, _, err := DecodeVarint(nil, 0); err == nil {
		t.Fatalf("expected error decoding from empty buffer")
	}
	enc := mustEncodeVarint(t, 1<<60)
	for l := 0; l < len(enc); l++ {
		if _, _, err := DecodeVarint(enc[:l], 0); err == nil {
			t.Fatalf("expected short buffer error for truncated len %d", l)
		}
	}
}

func TestVarintShortDestination(t *testing.T) {
	buf := make([]byte, 0)
	if _, err := EncodeVarint(buf, 0, 128); err == nil {
		t.Fatalf("expected short destination error")
	}
}

func TestVarintAtOffset(t *testing.T) {
	buf := make([]byte, 10)
	buf[0] = 0xAA
	n, err := EncodeVarint(buf, 1, 300)
	if err != nil {
		t.Fatalf("EncodeVarint: %v", err)
	}
	v, m, err := DecodeVarint(buf, 1)
	if err != nil {
		t.Fatalf("DecodeVarint: %v", err)
	}
	if v != 300 || m != n {
		t.Fatalf("got (%d,%d), want (300,%d)", v, m, n)
	}
}
