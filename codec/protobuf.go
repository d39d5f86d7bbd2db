package codec

import (
	"encoding/json"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// Protobuf encodes generated messages directly.
type Protobuf[T proto.Message] struct {
	new func() T // constructor for a concrete message (e.g., func() *structpb.Struct { return &structpb.Struct{} })
}

func NewProtobuf[T proto.Message](ctor func() T) Protobuf[T] {
	return Protobuf[T]{new: ctor}
}

func (Protobuf[T]) Name() string { return FormatProto }

func (c Protobuf[T]) Encode(v T) ([]byte, error) {
	return proto.Marshal(v)
}

func (c Protobuf[T]) Decode(b []byte) (T, error) {
	m := c.new()
	err := proto.Unmarshal(b, m)
	return m, err
}

// ProtoValue carries any JSON-shaped V as a google.protobuf.Value, so plain
// structs like shortcode.Decoded can be exported without generated types.
// Field names follow the json tags; times travel as RFC3339 strings.
type ProtoValue[V any] struct{}

var pv = NewProtobuf(func() *structpb.Value { return &structpb.Value{} })

func (ProtoValue[V]) Name() string { return FormatProto }

func (ProtoValue[V]) Encode(v V) ([]byte, error) {
	j, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	msg := &structpb.Value{}
	if err := protojson.Unmarshal(j, msg); err != nil {
		return nil, err
	}
	return pv.Encode(msg)
}

func (ProtoValue[V]) Decode(b []byte) (V, error) {
	var v V
	msg, err := pv.Decode(b)
	if err != nil {
		return v, err
	}
	j, err := protojson.Marshal(msg)
	if err != nil {
		return v, err
	}
	err = json.Unmarshal(j, &v)
	return v, err
}
