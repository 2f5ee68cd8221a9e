package types

import (
	"reflect"
	"testing"
)

func TestChoiceTwoBranchesTagByte(t *testing.T) {
	c, err := NewChoice(2, 1, U8(7))
	if err != nil {
		t.Fatalf("NewChoice: %v", err)
	}
	enc, err := Encode(c)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !reflect.DeepEqual(enc, []byte{0x01, 0x07}) {
		t.Fatalf("got % x, want 01 07", enc)
	}
}

func TestChoiceDecodeDispatchesToBranch(t *testing.T) {
	c, _ := NewChoice(3, 2, Text("hi"))
	enc, _ := Encode(c)

	decoders := []ChoiceDecoder{
		func(buf []byte, off int) (Codable, int, error) { return DecodeU8(buf, off) },
		func(buf []byte, off int) (Codable, int, error) { return DecodeBool(buf, off) },
		func(buf []byte, off int) (Codable, int, error) { return DecodeText(buf, off) },
	}
	dec, n, err := DecodeChoice(enc, 0, 3, decoders)
	if err != nil {
		t.Fatalf("DecodeChoice: %v", err)
	}
	if n != len(enc) || dec.Discriminant != 2 || dec.Value.(Text) != "hi" {
		t.Fatalf("got (%v,%d)", dec, n)
	}
}

func TestChoiceConstructionRejectsOutOfRangeDiscriminant(t *testing.T) {
	if _, err := NewChoice(2, 2, U8(1)); err == nil {
		t.Fatalf("expected range error for discriminant >= branches")
	}
}

func TestChoiceDecodeRejectsUnknownDiscriminant(t *testing.T) {
	buf := []byte{0x05}
	decoders := []ChoiceDecoder{
		func(buf []byte, off int) (Codable, int, error) { return DecodeU8(buf, off) },
		func(buf []byte, off int) (Codable, int, error) { return DecodeBool(buf, off) },
	}
	_, _, err := DecodeChoice(buf, 0, 2, decoders)
	if err == nil {
		t.Fatalf("expected invalid variant error")
	}
	cerr, ok := err.(*Error)
	if !ok || cerr.Kind != KindInvalidVariant {
		t.Fatalf("got %v, want KindInvalidVariant", err)
	}
}

func TestChoiceManyBranchesUsesVarintTag(t *testing.T) {
	c, err := NewChoice(300, 257, U8(9))
	if err != nil {
		t.Fatalf("NewChoice: %v", err)
	}
	enc, err := Encode(c)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	// Discriminant 257 needs a multi-byte Varint tag, not a single octet.
	if len(enc) <= 2 {
		t.Fatalf("expected varint-width tag, got % x", enc)
	}
	decoders := make([]ChoiceDecoder, 300)
	for i := range decoders {
		decoders[i] = func(buf []byte, off int) (Codable, int, error) { return DecodeU8(buf, off) }
	}
	dec, n, err := DecodeChoice(enc, 0, 300, decoders)
	if err != nil {
		t.Fatalf("DecodeChoice: %v", err)
	}
	if n != len(enc) || dec.Discriminant != 257 {
		t.Fatalf("got (%v,%d)", dec, n)
	}
}
