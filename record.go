package types

// FieldSpec describes one declared field of a Record: its JSON key (alias
// or name) and an accessor into a concrete Go struct; its wire/JSON order
// is its position in Record.Fields. Generated/hand-written Record wrappers
// build a []FieldSpec and delegate EncodeSize/EncodeInto/ToJSON to it
// (RecordFromJSON works one key at a time and does not use it), mirroring
// struct.py's @structure decorator walking dataclasses.fields() in
// declaration order.
type FieldSpec struct {
	JSONKey string
	Get     func() Codable
}

// Record implements spec's ordered heterogeneous tuple: encode
// concatenates each field's encoding with no framing, in declaration
// order; JSON is keyed by alias-or-name. Record itself only needs the
// Get accessors to encode; decoding a record is necessarily specific to
// the concrete Go struct it populates, so DecodeRecord below takes a
// caller-supplied list of field decoders that assign directly into the
// destination.
type Record struct {
	Fields []FieldSpec
}

func (r Record) EncodeSize() int {
	total := 0
	for _, f := range r.Fields {
		total += f.Get().EncodeSize()
	}
	return total
}

func (r Record) EncodeInto(buffer []byte, offset int) (int, error) {
	cur := offset
	for _, f := range r.Fields {
		n, err := f.Get().EncodeInto(buffer, cur)
		if err != nil {
			return 0, err
		}
		cur += n
	}
	return cur - offset, nil
}

// ToJSON renders a record as a map keyed by each field's JSONKey, using
// the matching fieldToJSON callback; the map keeps no field order.
func (r Record) ToJSON(fieldToJSON []func() any) map[string]any {
	out := make(map[string]any, len(r.Fields))
	for i, f := range r.Fields {
		out[f.JSONKey] = fieldToJSON[i]()
	}
	return out
}

// FieldDecoder decodes one record field from buffer[offset:] into the
// destination the closure was built against, returning bytes consumed.
type FieldDecoder func(buffer []byte, offset int) (int, error)

// DecodeRecord runs each field decoder in declaration order, threading
// the offset, and returns the total bytes consumed. Field decoders are
// expected to assign their decoded value into the caller's destination
// struct via closure, since Go has no reflection-free way to populate an
// arbitrary struct's Nth field generically.
func DecodeRecord(buffer []byte, offset int, fields []FieldDecoder) (int, error) {
	cur := offset
	for _, dec := range fields {
		n, err := dec(buffer, cur)
		if err != nil {
			return 0, err
		}
		cur += n
	}
	return cur - offset, nil
}

// RecordFromJSON looks up each declared key in obj; if missing, it calls
// applyDefault (if non-nil) or fails with KindMissingField. assign is
// called with the raw JSON value for keys that are present.
func RecordFromJSON(obj map[string]any, jsonKey string, assign func(any) error, applyDefault func() error) error {
	v, ok := obj[jsonKey]
	if !ok {
		if applyDefault != nil {
			return applyDefault()
		}
		return errMissingField(jsonKey)
	}
	return assign(v)
}
