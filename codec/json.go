package codec

import "encoding/json"

// JSON encodes with encoding/json. Set Indent for human-readable exports.
type JSON[V any] struct {
	Indent string // "" => compact
}

var _ Codec[struct{}] = JSON[struct{}]{}

func (JSON[V]) Name() string { return FormatJSON }

func (c JSON[V]) Encode(v V) ([]byte, error) {
	if c.Indent != "" {
		return json.MarshalIndent(v, "", c.Indent)
	}
	return json.Marshal(v)
}

func (JSON[V]) Decode(b []byte) (V, error) {
	var v V
	err := json.Unmarshal(b, &v)
	return v, err
}
