// Package shortcode maps a (store id, transaction id) pair to a 7-character
// human-readable code and back.
//
// Layout:
//
//	SS-TTTT
//	SS   store id 0..199 in base-36, uppercase, zero-padded ("00".."5J")
//	TTTT transaction id 1..9999 zero-padded, or "ZZZZ" for 10000
//
// Both directions are total: out-of-domain input never panics. The Codec
// returns typed errors (EncodeError, DecodeError) carrying a Reason. The
// package-level Encode and Decode keep the sentinel contract instead:
// Encode yields Invalid and Decode yields {0, 0, now}.
//
// A code carries no date. Decoded.ObservedAt is the Clock reading at decode
// time and must not be taken as the transaction date.
//
//	c := shortcode.New(shortcode.Options{Clock: clk, Logger: log})
//	code, err := c.Encode(175, 9675) // "4V-9675"
//	d, err := c.Decode(code)         // {175, 9675, clk.Now()}
package shortcode
