package sloghooks

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/unkn0wn-root/shortcode"
)

func newBufLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestDecodeRejectedRedactsArbitraryInput(t *testing.T) {
	var buf bytes.Buffer
	h := New(newBufLogger(&buf), Options{})
	c := shortcode.New(shortcode.Options{Hooks: h})

	_, _ = c.Decode("secret-order-token")
	out := buf.String()
	if strings.Contains(out, "secret-order-token") {
		t.Fatalf("raw input leaked into log: %s", out)
	}
	if !strings.Contains(out, "code=sha256:") || !strings.Contains(out, "reason=malformed") {
		t.Fatalf("unexpected log line: %s", out)
	}

	buf.Reset()
	_, _ = c.Decode("5K-0001")
	if !strings.Contains(buf.String(), "code=5K-0001") {
		t.Fatalf("well-formed code should be logged verbatim: %s", buf.String())
	}
}

func TestEncodeRejectedSampling(t *testing.T) {
	var buf bytes.Buffer
	h := New(newBufLogger(&buf), Options{EncodeRejectEvery: 3})
	for i := 0; i < 9; i++ {
		h.EncodeRejected(200+i, 1, shortcode.ReasonStoreOutOfRange)
	}
	if n := strings.Count(buf.String(), "shortcode.encode_rejected"); n != 3 {
		t.Fatalf("sampled %d lines, want 3", n)
	}
}

func TestCustomRedactAndNilLogger(t *testing.T) {
	var buf bytes.Buffer
	h := New(newBufLogger(&buf), Options{Redact: func(string) string { return "x" }})
	h.DecodeRejected("anything", shortcode.ReasonMalformed)
	if !strings.Contains(buf.String(), "code=x") {
		t.Fatalf("custom redactor not used: %s", buf.String())
	}

	nilHooks := New(nil, Options{})
	nilHooks.DecodeRejected("a", shortcode.ReasonMalformed)
	nilHooks.EncodeRejected(1, 0, shortcode.ReasonTxOutOfRange)
}
