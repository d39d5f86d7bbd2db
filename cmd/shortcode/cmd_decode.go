package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/unkn0wn-root/shortcode"
)

var errSomeInvalid = errors.New("one or more codes are invalid")

// decodeResult is one decoded code as exported by decode and batch.
type decodeResult struct {
	Code    string            `json:"code" cbor:"code" msgpack:"code"`
	Valid   bool              `json:"valid" cbor:"valid" msgpack:"valid"`
	Reason  shortcode.Reason  `json:"reason,omitempty" cbor:"reason,omitempty" msgpack:"reason,omitempty"`
	Decoded shortcode.Decoded `json:"decoded" cbor:"decoded" msgpack:"decoded"`
}

func decodeAll(c shortcode.Codec, codes []string) []decodeResult {
	out := make([]decodeResult, 0, len(codes))
	for _, code := range codes {
		d, err := c.Decode(code)
		out = append(out, decodeResult{
			Code:    code,
			Valid:   err == nil,
			Reason:  shortcode.ReasonOf(err),
			Decoded: d,
		})
	}
	return out
}

func writeText(w io.Writer, results []decodeResult) error {
	for _, r := range results {
		var err error
		if r.Valid {
			_, err = fmt.Fprintf(w, "%s\tstore=%d\ttx=%d\tobserved=%s\n",
				r.Code, r.Decoded.StoreID, r.Decoded.TransactionID, r.Decoded.ObservedAt.Format(time.RFC3339))
		} else {
			_, err = fmt.Fprintf(w, "%q\tinvalid\treason=%s\n", r.Code, r.Reason)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func emit(app *cli, w io.Writer, results []decodeResult) error {
	var err error
	if app.format == formatText {
		err = writeText(w, results)
	} else {
		err = writeAs(w, app.format, results)
	}
	if err != nil {
		return err
	}

	invalid := 0
	for _, r := range results {
		if !r.Valid {
			invalid++
		}
	}
	app.logger.Debug("decoded codes", zap.Int("total", len(results)), zap.Int("invalid", invalid))
	if invalid > 0 {
		return fmt.Errorf("%w: %d of %d", errSomeInvalid, invalid, len(results))
	}
	return nil
}

func newDecodeCmd(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "decode [code...]",
		Short: "Decode one or more short codes",
		Long: `Decodes each SS-TTTT code into its store id and transaction id.

Every code is reported; the command exits non-zero if any was invalid.
observedAt is the time of decoding, not the transaction date.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(app, cmd.OutOrStdout(), decodeAll(app.codec(), args))
		},
	}
}
