package dto

import (
	"bytes"
	"encoding/json"
)

// OrderedCounts is a string->count map that marshals as a JSON object in insertion order.
type OrderedCounts struct {
	keys   []string
	counts map[string]int
}

// NewOrderedCounts pre-seeds keys with zero counts.
func NewOrderedCounts(keys ...string) *OrderedCounts {
	oc := &OrderedCounts{counts: make(map[string]int, len(keys))}
	for _, k := range keys {
		oc.ensure(k)
	}
	return oc
}

func (oc *OrderedCounts) ensure(key string) {
	if _, ok := oc.counts[key]; !ok {
		oc.keys = append(oc.keys, key)
		oc.counts[key] = 0
	}
}

// Has reports whether key is present.
func (oc *OrderedCounts) Has(key string) bool {
	_, ok := oc.counts[key]
	return ok
}

// Inc increments key, appending it when new.
func (oc *OrderedCounts) Inc(key string) {
	oc.ensure(key)
	oc.counts[key]++
}

// Get returns the count of key.
func (oc *OrderedCounts) Get(key string) int {
	return oc.counts[key]
}

// Keys returns the keys in insertion order.
func (oc *OrderedCounts) Keys() []string {
	return append([]string(nil), oc.keys...)
}

func (oc *OrderedCounts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range oc.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, _ := json.Marshal(oc.counts[k])
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON keeps the document order of the keys.
func (oc *OrderedCounts) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return err
	}
	*oc = OrderedCounts{counts: map[string]int{}}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)
		var n int
		if err := dec.Decode(&n); err != nil {
			return err
		}
		oc.ensure(key)
		oc.counts[key] = n
	}
	_, err := dec.Token()
	return err
}
