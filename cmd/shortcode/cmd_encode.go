package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/unkn0wn-root/shortcode"
)

type encodeResult struct {
	StoreID       int    `json:"storeId" cbor:"storeId" msgpack:"storeId"`
	TransactionID int    `json:"transactionId" cbor:"transactionId" msgpack:"transactionId"`
	Code          string `json:"code" cbor:"code" msgpack:"code"`
}

func newEncodeCmd(app *cli) *cobra.Command {
	var legacy bool
	cmd := &cobra.Command{
		Use:   "encode [store-id] [transaction-id]",
		Short: "Encode a store id and transaction id as a short code",
		Long: `Encodes the pair as SS-TTTT.

Out-of-range ids are an error. With --legacy the command prints INVALID and
exits 0 instead.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			storeID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("store id %q: not an integer", args[0])
			}
			txID, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("transaction id %q: not an integer", args[1])
			}

			c := app.codec()
			var code string
			if legacy {
				code = shortcode.EncodeOrInvalid(c, storeID, txID)
			} else if code, err = c.Encode(storeID, txID); err != nil {
				return err
			}

			if app.format == formatText {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), code)
				return err
			}
			return writeAs(cmd.OutOrStdout(), app.format, encodeResult{storeID, txID, code})
		},
	}
	cmd.Flags().BoolVar(&legacy, "legacy", false, "print INVALID instead of failing on out-of-range ids")
	return cmd
}
