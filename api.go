package shortcode

import (
	"time"

	"github.com/unkn0wn-root/shortcode/internal/format"
)

// Invalid is returned by Encode when the input is out of domain.
const Invalid = "INVALID"

// Codec converts between id pairs and short codes. Implementations are
// stateless apart from the injected Clock and are safe for concurrent use.
type Codec interface {
	// Encode returns the code for (storeID, transactionID), or "" and an
	// *EncodeError when either id is outside its domain.
	Encode(storeID, transactionID int) (string, error)

	// Decode parses code. On failure it returns the default result
	// {0, 0, Clock.Now()} with a *DecodeError.
	Decode(code string) (Decoded, error)
}

// Decoded is the result of decoding a short code.
type Decoded struct {
	StoreID       int `json:"storeId" cbor:"storeId" msgpack:"storeId"`
	TransactionID int `json:"transactionId" cbor:"transactionId" msgpack:"transactionId"`
	// ObservedAt is when decoding happened. It is not recovered from the code.
	ObservedAt time.Time `json:"observedAt" cbor:"observedAt" msgpack:"observedAt"`
}

// IsDefault reports whether d is the failure result (both ids zero).
// Transaction id 0 is never valid, so no successful decode looks like this.
func (d Decoded) IsDefault() bool { return d.StoreID == 0 && d.TransactionID == 0 }

// String renders SS-TTTT@RFC3339, or INVALID@RFC3339 when the ids are out
// of domain (the default result included).
func (d Decoded) String() string {
	at := "@" + d.ObservedAt.Format(time.RFC3339)
	if !format.StoreInRange(d.StoreID) || !format.TxInRange(d.TransactionID) {
		return Invalid + at
	}
	return format.StoreField(d.StoreID) + string(format.Sep) + format.TxField(d.TransactionID) + at
}

// Options tune a Codec. The zero value is ready to use.
type Options struct {
	Clock  Clock  // nil => SystemClock
	Logger Logger // nil => NopLogger
	Hooks  Hooks  // nil => NopHooks
}

func New(opts Options) Codec {
	return newCodec(opts)
}
