package interop

import (
	"testing"

	types "github.com/Chainscore/tsrkit-types"
)

type sample struct {
	Name string `json:"name" msgpack:"name" cbor:"name"`
	Age  int    `json:"age" msgpack:"age" cbor:"age"`
}

func TestJSONRoundTrip(t *testing.T) {
	c := JSON[sample]{}
	enc, err := c.Encode(sample{Name: "ada", Age: 36})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	dec, err := c.Decode(enc)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if dec.Name != "ada" || dec.Age != 36 {
		t.Fatalf("got %+v", dec)
	}
}

func TestCBORRoundTrip(t *testing.T) {
	c, err := NewCBOR[sample](true)
	if err != nil {
		t.Fatalf("NewCBOR: %v", err)
	}
	enc, err := c.Encode(sample{Name: "grace", Age: 40})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	dec, err := c.Decode(enc)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if dec.Name != "grace" || dec.Age != 40 {
		t.Fatalf("got %+v", dec)
	}
}

func TestMsgpackRoundTrip(t *testing.T) {
	c := Msgpack[sample]{}
	enc, err := c.Encode(sample{Name: "alan", Age: 41})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	dec, err := c.Decode(enc)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if dec.Name != "alan" || dec.Age != 41 {
		t.Fatalf("got %+v", dec)
	}
}

func TestLimitCodecRejectsOversizedPayload(t *testing.T) {
	c := LimitCodec[sample]{Inner: JSON[sample]{}, MaxDecode: 4}
	enc, _ := JSON[sample]{}.Encode(sample{Name: "too long", Age: 1})
	if _, err := c.Decode(enc); err == nil {
		t.Fatalf("expected size-limit error")
	}
}

func TestProjectJSONRendersCodableToJSON(t *testing.T) {
	enc, err := Project[types.U32](JSON[any]{}, types.U32(12345))
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	if string(enc) != "12345" {
		t.Fatalf("got %q, want JSON number 12345", enc)
	}
	got, err := Unproject(JSON[any]{}, enc)
	if err != nil {
		t.Fatalf("Unproject: %v", err)
	}
	if got.(float64) != 12345 {
		t.Fatalf("got %v, want 12345", got)
	}
}

func TestProjectCBORRendersCodableToJSON(t *testing.T) {
	c, err := NewCBOR[any](true)
	if err != nil {
		t.Fatalf("NewCBOR: %v", err)
	}
	enc, err := Project[types.Text](c, types.Text("hello"))
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	got, err := Unproject(c, enc)
	if err != nil {
		t.Fatalf("Unproject: %v", err)
	}
	if got.(string) != "hello" {
		t.Fatalf("got %v, want %q", got, "hello")
	}
}

func TestProjectMsgpackRendersCodableToJSON(t *testing.T) {
	enc, err := Project[types.Bool](Msgpack[any]{}, types.Bool(true))
	if err != nil {
		t.Fatalf("Project: %v", err)
	}
	got, err := Unproject(Msgpack[any]{}, enc)
	if err != nil {
		t.Fatalf("Unproject: %v", err)
	}
	if got.(bool) != true {
		t.Fatalf("got %v, want true", got)
	}
}

func TestRawBytesAndStringIdentity(t *testing.T) {
	b := Bytes{}
	got, err := b.Decode([]byte{1, 2, 3})
	if err != nil || len(got) != 3 {
		t.Fatalf("got (%v,%v)", got, err)
	}

	s := String{}
	str, err := s.Decode([]byte("hello"))
	if err != nil || str != "hello" {
		t.Fatalf("got (%v,%v)", str, err)
	}
}
