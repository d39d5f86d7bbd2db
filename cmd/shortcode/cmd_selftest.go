package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/unkn0wn-root/shortcode/internal/harness"
)

var errSelftestFailed = errors.New("selftest failed")

func newSelftestCmd(app *cli) *cobra.Command {
	var samples string
	cmd := &cobra.Command{
		Use:   "selftest",
		Short: "Round-trip a cross-product of sample ids and report each check",
		Long: `Encodes then decodes every (store id, transaction id) pair of the sample
set and checks: code length <= 9, code is a non-empty string, observedAt
falls on today, and both ids survive the round trip.

The default sample set is store ids {175, 42, 0, 9} x transaction ids
{9675, 23, 123, 7}. Override it with a YAML file:

  store_ids: [0, 199]
  transaction_ids: [1, 9999, 10000]`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sample := harness.DefaultSample()
			if samples != "" {
				s, err := harness.LoadSample(samples)
				if err != nil {
					return err
				}
				sample = s
			}

			report := harness.Run(app.codec(), app.clock, sample)
			var err error
			if app.format == formatText {
				err = report.WriteText(cmd.OutOrStdout())
			} else {
				err = writeAs(cmd.OutOrStdout(), app.format, report)
			}
			if err != nil {
				return err
			}

			app.logger.Info("selftest finished",
				zap.Int("cases", len(report.Cases)),
				zap.Int("passed", report.Passed),
				zap.Int("failed", report.Failed))
			if !report.OK() {
				return errSelftestFailed
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&samples, "samples", "", "YAML file with store_ids and transaction_ids")
	return cmd
}
