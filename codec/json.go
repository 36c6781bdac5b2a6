package codec

import "encoding/json"

// JSON is the default codec. Values are stored as UTF-8 JSON text, readable
// directly with redis-cli during debugging.
type JSON[V any] struct{}

func (JSON[V]) Encode(v V) ([]byte, error) { return json.Marshal(v) }
func (JSON[V]) Decode(b []byte) (V, error) {
	var v V
	err := json.Unmarshal(b, &v)
	return v, err
}
