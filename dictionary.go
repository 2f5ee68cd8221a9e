package types

import (
	"bytes"
	"math"
	"sort"

	"github.com/Chainscore/tsrkit-types/config"
	"github.com/Chainscore/tsrkit-types/guard"
)

// Entry is one key/value pair of a Dictionary.
type Entry[K Codable, V Codable] struct {
	Key   K
	Value V
}

// Dictionary is spec's Mapping: an ordered K->V map whose wire form is
// always sorted in strictly ascending order of the key's *encoded* bytes
// (lexicographic on E(k)), per spec.md §4.7. Implementations MAY sort by
// the key's natural order instead when it agrees with encoded-byte order
// (true for every scalar/text kind this package provides); what matters is
// that the bytes on the wire are sorted by E(k).
type Dictionary[K Codable, V Codable] struct {
	entries []Entry[K, V]
	// insertionOrder preserves the order entries were supplied to
	// NewDictionary in, for EncodeInsertionOrder's non-canonical escape
	// hatch. Always populated alongside entries.
	insertionOrder []Entry[K, V]
}

// NewDictionary builds a canonical Dictionary from entries: it sorts them
// by encoded-key bytes and rejects duplicate keys, so the value returned
// is always ready to encode in canonical form.
func NewDictionary[K Codable, V Codable](entries []Entry[K, V]) (Dictionary[K, V], error) {
	encKeys := make([][]byte, len(entries))
	for i, e := range entries {
		b, err := Encode(e.Key)
		if err != nil {
			return Dictionary[K, V]{}, err
		}
		encKeys[i] = b
	}

	order := make([]int, len(entries))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return bytes.Compare(encKeys[order[i]], encKeys[order[j]]) < 0
	})

	sorted := make([]Entry[K, V], len(entries))
	for i, idx := range order {
		sorted[i] = entries[idx]
	}
	for i := 1; i < len(sorted); i++ {
		if bytes.Equal(encKeys[order[i-1]], encKeys[order[i]]) {
			return Dictionary[K, V]{}, errInvalidKeyOrder(-1, i)
		}
	}

	insertionOrder := make([]Entry[K, V], len(entries))
	copy(insertionOrder, entries)
	return Dictionary[K, V]{entries: sorted, insertionOrder: insertionOrder}, nil
}

// Entries returns the canonical (sorted, deduplicated) entries.
func (d Dictionary[K, V]) Entries() []Entry[K, V] { return d.entries }

// Get looks up a value by comparing encoded key bytes (O(n); Dictionary
// favors a small, canonical wire form over a hash-table lookup).
func (d Dictionary[K, V]) Get(key K) (V, bool) {
	kb, err := Encode(key)
	if err != nil {
		var zero V
		return zero, false
	}
	for _, e := range d.entries {
		eb, err := Encode(e.Key)
		if err == nil && bytes.Equal(eb, kb) {
			return e.Value, true
		}
	}
	var zero V
	return zero, false
}

func (d Dictionary[K, V]) EncodeSize() int {
	total := Uint(len(d.entries)).EncodeSize()
	for _, e := range d.entries {
		total += e.Key.EncodeSize() + e.Value.EncodeSize()
	}
	return total
}

func (d Dictionary[K, V]) EncodeInto(buffer []byte, offset int) (int, error) {
	cur := offset
	n, err := EncodeVarint(buffer, cur, uint64(len(d.entries)))
	if err != nil {
		return 0, err
	}
	cur += n
	for _, e := range d.entries {
		kw, err := e.Key.EncodeInto(buffer, cur)
		if err != nil {
			return 0, err
		}
		cur += kw
		vw, err := e.Value.EncodeInto(buffer, cur)
		if err != nil {
			return 0, err
		}
		cur += vw
	}
	return cur - offset, nil
}

// EncodeInsertionOrder encodes the dictionary's entries in the order
// they were passed to NewDictionary, instead of the canonical
// sorted-by-encoded-key order EncodeInto always produces. This wire form
// is NOT canonical: two Dictionaries with the same entries in different
// insertion order produce different bytes, so it must never be used
// where the output crosses a trust boundary, is hashed, or is compared
// for equality. It is gated behind config.DictOrderInsertion so a caller
// has to opt in explicitly rather than reach for it by accident.
func (d Dictionary[K, V]) EncodeInsertionOrder(buffer []byte, offset int) (int, error) {
	if config.Current().DictOrder != config.DictOrderInsertion {
		return 0, errEncoding(offset, "EncodeInsertionOrder requires config.DictOrderInsertion; current order is sorted (canonical)")
	}
	total := d.EncodeSize()
	if err := checkDest(buffer, offset, total); err != nil {
		return 0, err
	}
	cur := offset
	n, err := EncodeVarint(buffer, cur, uint64(len(d.insertionOrder)))
	if err != nil {
		return 0, err
	}
	cur += n
	for _, e := range d.insertionOrder {
		kw, err := e.Key.EncodeInto(buffer, cur)
		if err != nil {
			return 0, err
		}
		cur += kw
		vw, err := e.Value.EncodeInto(buffer, cur)
		if err != nil {
			return 0, err
		}
		cur += vw
	}
	return cur - offset, nil
}

// ToJSON renders the entries, in canonical order, as a JSON array of
// {keyName, valueName} records, for every K (string-like keys included);
// it never renders a bare JSON object. keyName/valueName default to
// "key"/"value".
func (d Dictionary[K, V]) ToJSON(keyToJSON func(K) any, valueToJSON func(V) any, keyName, valueName string) any {
	if keyName == "" {
		keyName = "key"
	}
	if valueName == "" {
		valueName = "value"
	}
	out := make([]map[string]any, len(d.entries))
	for i, e := range d.entries {
		out[i] = map[string]any{
			keyName:   keyToJSON(e.Key),
			valueName: valueToJSON(e.Value),
		}
	}
	return out
}

// DecodeDictionary decodes a Varint-prefixed, strictly-ascending-key
// mapping. It rejects a declared entry count over
// guard.MaxDictionarySize before allocating, and fails with
// KindInvalidKeyOrder (which also makes duplicate keys impossible) if any
// key's encoded bytes do not strictly exceed the previous key's.
func DecodeDictionary[K Codable, V Codable](
	buffer []byte, offset int,
	decKey ElemDecoder[K], decValue ElemDecoder[V],
) (Dictionary[K, V], int, error) {
	count, n, err := DecodeVarint(buffer, offset)
	if err != nil {
		return Dictionary[K, V]{}, 0, err
	}
	lim := guard.Current()
	declared := int(min(count, uint64(math.MaxInt)))
	if lim.Check("dictionary", offset, declared, lim.MaxDictionarySize) {
		return Dictionary[K, V]{}, 0, errLimitExceeded(offset, declared, lim.MaxDictionarySize)
	}

	cur := offset + n
	entries := make([]Entry[K, V], 0, count)
	var prevKeyBytes []byte

	for i := uint64(0); i < count; i++ {
		k, kread, err := decKey(buffer, cur)
		if err != nil {
			return Dictionary[K, V]{}, 0, err
		}
		keyBytes, err := Encode(k)
		if err != nil {
			return Dictionary[K, V]{}, 0, err
		}
		if prevKeyBytes != nil && bytes.Compare(keyBytes, prevKeyBytes) <= 0 {
			lim.NotifyInvalidKeyOrder(cur, int(i))
			return Dictionary[K, V]{}, 0, errInvalidKeyOrder(cur, int(i))
		}
		prevKeyBytes = keyBytes
		cur += kread

		v, vread, err := decValue(buffer, cur)
		if err != nil {
			return Dictionary[K, V]{}, 0, err
		}
		cur += vread

		entries = append(entries, Entry[K, V]{Key: k, Value: v})
	}
	insertionOrder := make([]Entry[K, V], len(entries))
	copy(insertionOrder, entries)
	return Dictionary[K, V]{entries: entries, insertionOrder: insertionOrder}, cur - offset, nil
}
