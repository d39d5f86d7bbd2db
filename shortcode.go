package shortcode

import (
	"github.com/unkn0wn-root/shortcode/internal/format"
)

type codec struct {
	clock Clock
	log   Logger
	hooks Hooks
}

var _ Codec = (*codec)(nil)

func newCodec(opts Options) *codec {
	opts = withDefaults(opts)
	return &codec{clock: opts.Clock, log: opts.Logger, hooks: opts.Hooks}
}

func (c *codec) Encode(storeID, transactionID int) (string, error) {
	if !format.StoreInRange(storeID) {
		return "", c.rejectEncode(storeID, transactionID, ReasonStoreOutOfRange, format.ErrStoreRange)
	}
	if !format.TxInRange(transactionID) {
		return "", c.rejectEncode(storeID, transactionID, ReasonTxOutOfRange, format.ErrTxRange)
	}

	var b [format.Len]byte
	copy(b[:format.StoreWidth], format.StoreField(storeID))
	b[format.StoreWidth] = format.Sep
	copy(b[format.StoreWidth+format.SepWidth:], format.TxField(transactionID))
	return string(b[:]), nil
}

func (c *codec) Decode(code string) (Decoded, error) {
	now := c.clock.Now()
	def := Decoded{ObservedAt: now}

	storeSeg, txSeg, err := format.Split(code)
	if err != nil {
		return def, c.rejectDecode(code, ReasonMalformed, err)
	}
	storeID, err := format.ParseStore(storeSeg)
	if err != nil {
		return def, c.rejectDecode(code, reasonFor(err, ReasonStoreFieldOutOfRange), err)
	}
	txID, err := format.ParseTx(txSeg)
	if err != nil {
		return def, c.rejectDecode(code, reasonFor(err, ReasonTxFieldOutOfRange), err)
	}
	return Decoded{StoreID: storeID, TransactionID: txID, ObservedAt: now}, nil
}

func (c *codec) rejectEncode(storeID, txID int, r Reason, cause error) error {
	c.log.Debug("encode rejected", Fields{"store_id": storeID, "transaction_id": txID, "reason": string(r)})
	c.hooks.EncodeRejected(storeID, txID, r)
	return &EncodeError{StoreID: storeID, TransactionID: txID, Reason: r, Err: cause}
}

func (c *codec) rejectDecode(code string, r Reason, cause error) error {
	c.log.Debug("decode rejected", Fields{"code": code, "reason": string(r)})
	c.hooks.DecodeRejected(code, r)
	return &DecodeError{Code: code, Reason: r, Err: cause}
}

// reasonFor maps a segment parse error to a Reason.
func reasonFor(err error, rangeReason Reason) Reason {
	if err == format.ErrShape {
		return ReasonMalformed
	}
	return rangeReason
}

var std Codec = New(Options{})

// Encode returns the short code for (storeID, transactionID), or Invalid.
func Encode(storeID, transactionID int) string {
	return EncodeOrInvalid(std, storeID, transactionID)
}

// Decode returns the ids in code, or {0, 0, now} when code is invalid.
func Decode(code string) Decoded {
	return DecodeOrDefault(std, code)
}

// EncodeOrInvalid folds an Encode error into the Invalid sentinel.
func EncodeOrInvalid(c Codec, storeID, transactionID int) string {
	code, err := c.Encode(storeID, transactionID)
	if err != nil {
		return Invalid
	}
	return code
}

// DecodeOrDefault drops the Decode error; the result is already the default
// {0, 0, now} on failure.
func DecodeOrDefault(c Codec, code string) Decoded {
	d, _ := c.Decode(code)
	return d
}

// Valid reports whether code is well-formed and both fields are in range.
// It does not read the clock.
func Valid(code string) bool {
	s, t, err := format.Split(code)
	if err != nil {
		return false
	}
	if _, err := format.ParseStore(s); err != nil {
		return false
	}
	_, err = format.ParseTx(t)
	return err == nil
}
