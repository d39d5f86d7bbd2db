package shortcode

import (
	"errors"
	"fmt"

	"github.com/unkn0wn-root/shortcode/internal/format"
)

// Reason classifies a rejected Encode or Decode.
type Reason string

const (
	ReasonStoreOutOfRange      Reason = "store_out_of_range"
	ReasonTxOutOfRange         Reason = "tx_out_of_range"
	ReasonMalformed            Reason = "malformed"
	ReasonStoreFieldOutOfRange Reason = "store_field_out_of_range"
	ReasonTxFieldOutOfRange    Reason = "tx_field_out_of_range"
)

var (
	// ErrInvalidInput matches every *EncodeError.
	ErrInvalidInput = errors.New("shortcode: invalid input")
	// ErrInvalidCode matches every *DecodeError.
	ErrInvalidCode = errors.New("shortcode: invalid code")

	ErrMalformed  = format.ErrShape
	ErrStoreRange = format.ErrStoreRange
	ErrTxRange    = format.ErrTxRange
)

type EncodeError struct {
	StoreID       int
	TransactionID int
	Reason        Reason
	Err           error
}

func (e *EncodeError) Error() string {
	switch e.Reason {
	case ReasonStoreOutOfRange:
		return fmt.Sprintf("encode (%d, %d): store id not in [%d,%d]",
			e.StoreID, e.TransactionID, format.MinStore, format.MaxStore)
	case ReasonTxOutOfRange:
		return fmt.Sprintf("encode (%d, %d): transaction id not in [%d,%d]",
			e.StoreID, e.TransactionID, format.MinTx, format.MaxTx)
	default:
		return fmt.Sprintf("encode (%d, %d): %s", e.StoreID, e.TransactionID, e.Reason)
	}
}

func (e *EncodeError) Unwrap() []error {
	errs := make([]error, 0, 2)
	errs = append(errs, ErrInvalidInput)
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

type DecodeError struct {
	Code   string
	Reason Reason
	Err    error
}

func (e *DecodeError) Error() string {
	switch e.Reason {
	case ReasonMalformed:
		return fmt.Sprintf("decode %q: does not match SS-TTTT", e.Code)
	case ReasonStoreFieldOutOfRange:
		return fmt.Sprintf("decode %q: store field not in [%d,%d]", e.Code, format.MinStore, format.MaxStore)
	case ReasonTxFieldOutOfRange:
		return fmt.Sprintf("decode %q: transaction field not in [%d,%d]", e.Code, format.MinTx, format.MaxTx)
	default:
		return fmt.Sprintf("decode %q: %s", e.Code, e.Reason)
	}
}

func (e *DecodeError) Unwrap() []error {
	errs := make([]error, 0, 2)
	errs = append(errs, ErrInvalidCode)
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// ReasonOf returns the Reason carried by err, or "" if err is not an
// *EncodeError or *DecodeError.
func ReasonOf(err error) Reason {
	var ee *EncodeError
	if errors.As(err, &ee) {
		return ee.Reason
	}
	var de *DecodeError
	if errors.As(err, &de) {
		return de.Reason
	}
	return ""
}
