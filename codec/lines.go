package codec

import (
	"bufio"
	"bytes"
	"strings"
)

// Lines reads a code list as one entry per line. Blank lines and lines
// starting with '#' are skipped; surrounding spaces are trimmed. A line is
// otherwise kept verbatim, so malformed codes still reach the decoder.
type Lines struct{}

var _ Codec[[]string] = Lines{}

func (Lines) Name() string { return "lines" }

func (Lines) Encode(codes []string) ([]byte, error) {
	var buf bytes.Buffer
	for _, c := range codes {
		buf.WriteString(c)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

func (Lines) Decode(b []byte) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(bytes.NewReader(b))
	sc.Buffer(make([]byte, 0, 64*1024), len(b)+1)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out, sc.Err()
}
