package main

import (
	"fmt"
	"io"

	"github.com/unkn0wn-root/shortcode/codec"
)

// writeAs serializes v with the codec named by format and writes it to w.
// JSON output is indented and newline-terminated for terminals.
func writeAs[V any](w io.Writer, format string, v V) error {
	var c codec.Codec[V]
	if format == codec.FormatJSON {
		c = codec.JSON[V]{Indent: "  "}
	} else {
		var err error
		if c, err = codec.ByName[V](format); err != nil {
			return err
		}
	}
	b, err := c.Encode(v)
	if err != nil {
		return fmt.Errorf("encode %s output: %w", format, err)
	}
	if format == codec.FormatJSON {
		b = append(b, '\n')
	}
	_, err = w.Write(b)
	return err
}
