// Package format is the single definition of the short code layout shared by
// the encoder and the decoder.
//
//	SS-TTTT
//	SS   store id, base-36 uppercase, zero-padded to 2
//	-    separator
//	TTTT transaction id, base-10 zero-padded to 4, or ZZZZ for 10000
package format

import (
	"errors"
	"strconv"
	"strings"
)

const (
	StoreWidth = 2
	SepWidth   = 1
	TxWidth    = 4
	Len        = StoreWidth + SepWidth + TxWidth

	Sep       byte = '-'
	StoreBase      = 36
	TxBase         = 10

	MinStore = 0
	MaxStore = 199
	MinTx    = 1
	MaxTx    = 10000

	// TxSentinel stands in for MaxTx, which does not fit in TxWidth digits.
	TxSentinel = "ZZZZ"
)

var (
	ErrShape      = errors.New("shortcode: malformed code")
	ErrStoreRange = errors.New("shortcode: store id out of range")
	ErrTxRange    = errors.New("shortcode: transaction id out of range")
)

func StoreInRange(id int) bool { return id >= MinStore && id <= MaxStore }
func TxInRange(id int) bool    { return id >= MinTx && id <= MaxTx }

func isStoreChar(c byte) bool { return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'Z') }
func isDigit(c byte) bool     { return c >= '0' && c <= '9' }

// Shape reports ErrShape unless code matches ^[0-9A-Z]{2}-([0-9]{4}|ZZZZ)$.
// Ranges are not checked.
func Shape(code string) error {
	if len(code) != Len || code[StoreWidth] != Sep {
		return ErrShape
	}
	for i := 0; i < StoreWidth; i++ {
		if !isStoreChar(code[i]) {
			return ErrShape
		}
	}
	tx := code[StoreWidth+SepWidth:]
	if tx == TxSentinel {
		return nil
	}
	for i := 0; i < TxWidth; i++ {
		if !isDigit(tx[i]) {
			return ErrShape
		}
	}
	return nil
}

// Split returns the store and transaction segments of a well-shaped code.
func Split(code string) (store, tx string, err error) {
	if err := Shape(code); err != nil {
		return "", "", err
	}
	return code[:StoreWidth], code[StoreWidth+SepWidth:], nil
}

// StoreField renders id as the 2-char store segment. Caller checks the range.
func StoreField(id int) string {
	s := strings.ToUpper(strconv.FormatInt(int64(id), StoreBase))
	return pad(s, StoreWidth)
}

// TxField renders id as the 4-char transaction segment. Caller checks the range.
func TxField(id int) string {
	if id == MaxTx {
		return TxSentinel
	}
	return pad(strconv.Itoa(id), TxWidth)
}

// ParseStore decodes a store segment. Two base-36 chars reach 1295, so the
// domain is re-checked here.
func ParseStore(seg string) (int, error) {
	if len(seg) != StoreWidth {
		return 0, ErrShape
	}
	for i := 0; i < len(seg); i++ {
		if !isStoreChar(seg[i]) {
			return 0, ErrShape
		}
	}
	v, err := strconv.ParseInt(seg, StoreBase, 32)
	if err != nil {
		return 0, ErrShape
	}
	if !StoreInRange(int(v)) {
		return 0, ErrStoreRange
	}
	return int(v), nil
}

// ParseTx decodes a transaction segment. "0000" is well-shaped but out of range.
func ParseTx(seg string) (int, error) {
	if seg == TxSentinel {
		return MaxTx, nil
	}
	if len(seg) != TxWidth {
		return 0, ErrShape
	}
	for i := 0; i < len(seg); i++ {
		if !isDigit(seg[i]) {
			return 0, ErrShape
		}
	}
	v, err := strconv.Atoi(seg)
	if err != nil {
		return 0, ErrShape
	}
	if v < MinTx || v >= MaxTx {
		return 0, ErrTxRange
	}
	return v, nil
}

func pad(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return strings.Repeat("0", w-len(s)) + s
}
