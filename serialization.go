package vec

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"fmt"

	"github.com/teenjuna/vec/internal/block"
)

var (
	_ json.Marshaler   = (*Vector[any])(nil)
	_ json.Unmarshaler = (*Vector[any])(nil)
	_ gob.GobEncoder   = (*Vector[any])(nil)
	_ gob.GobDecoder   = (*Vector[any])(nil)
)

// MarshalJSON encodes the vector as a JSON array of its items. An empty
// vector encodes as [].
func (v *Vector[Item]) MarshalJSON() ([]byte, error) {
	items := v.buf.Slice(0, v.size)
	if items == nil {
		items = []Item{}
	}
	return json.Marshal(items)
}

// UnmarshalJSON replaces the vector's contents with the items of a JSON
// array. The resulting capacity equals the length.
func (v *Vector[Item]) UnmarshalJSON(data []byte) error {
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}

	next := block.Make[Item](len(items))
	copy(next.Slice(0, len(items)), items)

	v.buf.Swap(&next)
	v.size = len(items)
	return nil
}

// GobEncode encodes the vector as its length followed by its items.
func (v *Vector[Item]) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)

	if err := enc.Encode(v.size); err != nil {
		return nil, err
	}
	for _, item := range v.buf.Slice(0, v.size) {
		if err := enc.Encode(&item); err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}

// GobDecode replaces the vector's contents with items encoded by
// [Vector.GobEncode]. The resulting capacity equals the length.
func (v *Vector[Item]) GobDecode(data []byte) error {
	dec := gob.NewDecoder(bytes.NewReader(data))

	var size int
	if err := dec.Decode(&size); err != nil {
		return err
	}
	if size < 0 {
		return fmt.Errorf("invalid vector length %d", size)
	}

	next := block.Make[Item](size)
	for i := range size {
		if err := dec.Decode(next.At(i)); err != nil {
			return err
		}
	}

	v.buf.Swap(&next)
	v.size = size
	return nil
}
