package types

import (
	"reflect"
	"testing"
)

// point is a concrete record used only to exercise Record/DecodeRecord:
// two declaration-ordered fields, X then Y, both U32.
type point struct {
	X U32
	Y U32
}

func (p point) record() Record {
	return Record{Fields: []FieldSpec{
		{JSONKey: "x", Get: func() Codable { return p.X }},
		{JSONKey: "y", Get: func() Codable { return p.Y }},
	}}
}

func (p point) EncodeSize() int                           { return p.record().EncodeSize() }
func (p point) EncodeInto(buf []byte, off int) (int, error) { return p.record().EncodeInto(buf, off) }

func (p point) ToJSON() map[string]any {
	return p.record().ToJSON([]func() any{
		func() any { return p.X.ToJSON() },
		func() any { return p.Y.ToJSON() },
	})
}

func decodePoint(buffer []byte, offset int) (point, int, error) {
	var p point
	n, err := DecodeRecord(buffer, offset, []FieldDecoder{
		func(buf []byte, off int) (int, error) {
			v, n, err := DecodeU32(buf, off)
			if err != nil {
				return 0, err
			}
			p.X = v
			return n, nil
		},
		func(buf []byte, off int) (int, error) {
			v, n, err := DecodeU32(buf, off)
			if err != nil {
				return 0, err
			}
			p.Y = v
			return n, nil
		},
	})
	return p, n, err
}

func TestRecordConcatenatesFieldsWithNoFraming(t *testing.T) {
	p := point{X: 1, Y: 2}
	enc, err := Encode(p)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := []byte{1, 0, 0, 0, 2, 0, 0, 0}
	if !reflect.DeepEqual(enc, want) {
		t.Fatalf("got % x, want % x", enc, want)
	}
}

func TestRecordRoundTrip(t *testing.T) {
	p := point{X: 100, Y: 200}
	enc, _ := Encode(p)
	dec, n, err := decodePoint(enc, 0)
	if err != nil {
		t.Fatalf("decodePoint: %v", err)
	}
	if n != len(enc) || dec != p {
		t.Fatalf("got (%v,%d), want (%v,%d)", dec, n, p, len(enc))
	}
}

func TestRecordToJSON(t *testing.T) {
	p := point{X: 3, Y: 4}
	got := p.ToJSON()
	want := map[string]any{"x": uint64(3), "y": uint64(4)}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestRecordFromJSONMissingFieldNoDefault(t *testing.T) {
	obj := map[string]any{"x": float64(1)}
	err := RecordFromJSON(obj, "y", func(any) error { return nil }, nil)
	if err == nil {
		t.Fatalf("expected missing field error")
	}
	cerr, ok := err.(*Error)
	if !ok || cerr.Kind != KindMissingField {
		t.Fatalf("got %v, want KindMissingField", err)
	}
}

func TestRecordFromJSONMissingFieldUsesDefault(t *testing.T) {
	obj := map[string]any{}
	called := false
	err := RecordFromJSON(obj, "y", func(any) error { return nil }, func() error {
		called = true
		return nil
	})
	if err != nil || !called {
		t.Fatalf("expected default applied, err=%v called=%v", err, called)
	}
}
