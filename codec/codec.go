// Package codec serializes decoded short codes and harness reports for export.
package codec

import (
	"fmt"
	"sort"
	"strings"
)

// Codec encodes/decodes values V to []byte.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}

// Named is implemented by codecs selectable by format name.
type Named interface {
	Name() string
}

// Formats lists the names accepted by ByName.
func Formats() []string {
	out := []string{FormatJSON, FormatCBOR, FormatMsgpack, FormatProto}
	sort.Strings(out)
	return out
}

const (
	FormatJSON    = "json"
	FormatCBOR    = "cbor"
	FormatMsgpack = "msgpack"
	FormatProto   = "proto"
)

// ByName returns the codec registered under name (case-insensitive).
func ByName[V any](name string) (Codec[V], error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case FormatJSON, "":
		return JSON[V]{}, nil
	case FormatCBOR:
		return NewCBOR[V](true)
	case FormatMsgpack:
		return Msgpack[V]{}, nil
	case FormatProto, "protobuf":
		return ProtoValue[V]{}, nil
	default:
		return nil, fmt.Errorf("codec: unknown format %q (want one of %s)", name, strings.Join(Formats(), ", "))
	}
}
