package interop

import "github.com/Chainscore/tsrkit-types"

// Project renders v's canonical JSON projection (v.ToJSON()) through
// codec, for hosts that want to log, hash, or transport that projection
// in a denser wire format (CBOR, Msgpack) than JSON text, instead of
// v's own bit-exact EncodeInto bytes.
func Project[T types.JSONCodable](codec Codec[any], v T) ([]byte, error) {
	return codec.Encode(v.ToJSON())
}

// Unproject decodes b back into the generic JSON-shaped value codec
// produced (a map[string]any, []any, or scalar, depending on what
// ToJSON() returned). Reconstructing the original Codable, where a kind
// supports it, is the caller's job via that kind's own from-JSON helper
// (EnumFromJSON, RecordFromJSON, ByteArrayFromJSON, ...).
func Unproject(codec Codec[any], b []byte) (any, error) {
	return codec.Decode(b)
}
