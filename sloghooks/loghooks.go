// Package sloghooks logs rejected encodes and decodes through log/slog.
package sloghooks

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/shortcode"
	"github.com/unkn0wn-root/shortcode/internal/format"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	EncodeRejectEvery uint64
	DecodeRejectEvery uint64
	// Optional code redactor. Defaults to a SHA-256 prefix for inputs that
	// are not well-formed codes; well-formed codes are logged as-is.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	encodeCtr atomic.Uint64
	decodeCtr atomic.Uint64
}

var _ shortcode.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

// redact keeps arbitrary caller input (possibly long or sensitive) out of logs.
func (h *Hooks) redact(code string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(code)
	}
	if format.Shape(code) == nil {
		return code
	}
	sum := sha256.Sum256([]byte(code))
	return "sha256:" + hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) EncodeRejected(storeID, transactionID int, reason shortcode.Reason) {
	if h.l == nil || !sample(h.opts.EncodeRejectEvery, &h.encodeCtr) {
		return
	}
	h.l.Info("shortcode.encode_rejected",
		"store_id", storeID,
		"transaction_id", transactionID,
		"reason", string(reason))
}

func (h *Hooks) DecodeRejected(code string, reason shortcode.Reason) {
	if h.l == nil || !sample(h.opts.DecodeRejectEvery, &h.decodeCtr) {
		return
	}
	h.l.Info("shortcode.decode_rejected",
		"code", h.redact(code),
		"reason", string(reason))
}
