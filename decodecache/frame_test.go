package decodecache

import "testing"

func TestFrameRoundTrip(t *testing.T) {
	payload := []byte("hello, decodecache")
	framed := frameEncode(payload)
	got, err := frameDecode(framed)
	if err != nil {
		t.Fatalf("frameDecode: %v", err)
	}
	if string(got) != string(payload) {
		t.Fatalf("got %q, want %q", got, payload)
	}
}

func TestFrameRejectsBadMagic(t *testing.T) {
	framed := frameEncode([]byte("x"))
	framed[0] = 'Z'
	if _, err := frameDecode(framed); err != ErrCorruptEntry {
		t.Fatalf("got %v, want ErrCorruptEntry", err)
	}
}

func TestFrameRejectsTrailingBytes(t *testing.T) {
	framed := frameEncode([]byte("x"))
	framed = append(framed, 0xff)
	if _, err := frameDecode(framed); err != ErrCorruptEntry {
		t.Fatalf("got %v, want ErrCorruptEntry", err)
	}
}

func TestFrameRejectsTruncated(t *testing.T) {
	framed := frameEncode([]byte("hello"))
	if _, err := frameDecode(framed[:len(framed)-2]); err != ErrCorruptEntry {
		t.Fatalf("got %v, want ErrCorruptEntry", err)
	}
}

func TestIsFrameAcceptsValidEnvelope(t *testing.T) {
	framed := frameEncode([]byte("hello, decodecache"))
	if !IsFrame(framed) {
		t.Fatalf("IsFrame rejected a well-formed envelope")
	}
}

func TestIsFrameRejectsForeignBytes(t *testing.T) {
	if IsFrame([]byte("just some bytes a different writer stored")) {
		t.Fatalf("IsFrame accepted non-envelope bytes")
	}
}

func TestIsFrameRejectsTruncatedAndTrailing(t *testing.T) {
	framed := frameEncode([]byte("hello"))
	if IsFrame(framed[:len(framed)-2]) {
		t.Fatalf("IsFrame accepted a truncated envelope")
	}
	trailing := append(append([]byte{}, framed...), 0xff)
	if IsFrame(trailing) {
		t.Fatalf("IsFrame accepted an envelope with trailing bytes")
	}
}
