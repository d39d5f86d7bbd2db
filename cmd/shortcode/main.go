// Command shortcode encodes and decodes store/transaction short codes.
//
//	shortcode encode 175 9675        # 4V-9675
//	shortcode decode 4V-9675 5J-ZZZZ
//	shortcode batch codes.txt --format cbor > out.cbor
//	shortcode selftest --samples samples.yaml
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/unkn0wn-root/shortcode"
	"github.com/unkn0wn-root/shortcode/codec"
)

const formatText = "text"

// cli holds flag values and the objects built from them in PersistentPreRunE.
type cli struct {
	verbose    bool
	format     string
	logBackend string

	logger   *zap.Logger
	codecLog shortcode.Logger
	clock    shortcode.Clock
}

func (c *cli) codecLogger() shortcode.Logger { return c.codecLog }

func (c *cli) codec() shortcode.Codec {
	return shortcode.New(shortcode.Options{Clock: c.clock, Logger: c.codecLogger()})
}

func newRootCmd(app *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   "shortcode",
		Short: "Encode and decode SS-TTTT store/transaction short codes",
		Long: `shortcode maps a store id (0-199) and a transaction id (1-10000) to a
7-character code such as 4V-9675, and back.

Store ids are base-36, transaction ids are zero-padded decimal, and
transaction 10000 is written as ZZZZ. Decoded results carry the time of
decoding; the code itself holds no date.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.logger == nil {
				config := zap.NewProductionConfig()
				config.OutputPaths = []string{"stderr"}
				if app.verbose {
					config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
				}
				l, err := config.Build()
				if err != nil {
					return fmt.Errorf("failed to initialize logger: %w", err)
				}
				app.logger = l
			}
			if app.codecLog == nil {
				l, err := newCodecLogger(app.logBackend, app.verbose, app.logger, cmd.ErrOrStderr())
				if err != nil {
					return err
				}
				app.codecLog = l
			}
			if app.clock == nil {
				app.clock = shortcode.SystemClock{}
			}
			if app.format != formatText {
				if _, err := codec.ByName[any](app.format); err != nil {
					return err
				}
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.logger != nil {
				_ = app.logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "debug logging (rejections are logged at debug)")
	root.PersistentFlags().StringVar(&app.logBackend, "log-backend", backendZap,
		fmt.Sprintf("codec log backend: %s, %s or %s", backendZap, backendLogrus, backendSlog))
	root.PersistentFlags().StringVarP(&app.format, "format", "f", formatText,
		fmt.Sprintf("output format: %s or one of %v", formatText, codec.Formats()))

	root.AddCommand(
		newEncodeCmd(app),
		newDecodeCmd(app),
		newBatchCmd(app),
		newSelftestCmd(app),
	)
	return root
}

func main() {
	if err := newRootCmd(&cli{}).Execute(); err != nil {
		os.Exit(1)
	}
}
