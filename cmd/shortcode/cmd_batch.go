package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/unkn0wn-root/shortcode"
	"github.com/unkn0wn-root/shortcode/codec"
	asynchook "github.com/unkn0wn-root/shortcode/hooks/async"
	"github.com/unkn0wn-root/shortcode/sloghooks"
)

const defaultMaxBytes = 1 << 20

// reasonCounter tallies rejections for the batch summary log.
type reasonCounter struct {
	mu sync.Mutex
	n  map[shortcode.Reason]int
}

func (r *reasonCounter) EncodeRejected(_, _ int, reason shortcode.Reason) { r.add(reason) }
func (r *reasonCounter) DecodeRejected(_ string, reason shortcode.Reason) { r.add(reason) }

func (r *reasonCounter) add(reason shortcode.Reason) {
	r.mu.Lock()
	if r.n == nil {
		r.n = make(map[shortcode.Reason]int)
	}
	r.n[reason]++
	r.mu.Unlock()
}

func (r *reasonCounter) fields() []zap.Field {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]zap.Field, 0, len(r.n))
	for reason, n := range r.n {
		out = append(out, zap.Int(string(reason), n))
	}
	return out
}

// inputCodec picks how the code list is read: "json" for a JSON array of
// strings, "lines" for one code per line. "auto" uses the file extension.
func inputCodec(in, path string, maxBytes int) (codec.Codec[[]string], error) {
	if in == "auto" {
		in = "lines"
		if strings.EqualFold(filepath.Ext(path), ".json") {
			in = codec.FormatJSON
		}
	}
	var inner codec.Codec[[]string]
	switch in {
	case "lines":
		inner = codec.Lines{}
	case codec.FormatJSON:
		inner = codec.JSON[[]string]{}
	default:
		return nil, fmt.Errorf("unknown input format %q (want auto, lines or json)", in)
	}
	return codec.LimitCodec[[]string]{Inner: inner, MaxDecode: maxBytes}, nil
}

func readInput(cmd *cobra.Command, path string, maxBytes int) ([]byte, error) {
	var r io.Reader
	if path == "" || path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	if maxBytes > 0 {
		// one byte over the limit is enough for LimitCodec to reject it
		r = io.LimitReader(r, int64(maxBytes)+1)
	}
	return io.ReadAll(r)
}

func newBatchCmd(app *cli) *cobra.Command {
	var (
		in            string
		maxBytes      int
		logRejections bool
		sampleEvery   uint64
	)
	cmd := &cobra.Command{
		Use:   "batch [file|-]",
		Short: "Decode a list of codes from a file or stdin",
		Long: `Reads codes from a file (or stdin when the argument is "-" or missing),
decodes each and writes all results in the selected --format.

Input is either one code per line (blank lines and # comments ignored) or a
JSON array of strings. Input larger than --max-bytes is refused.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			ic, err := inputCodec(in, path, maxBytes)
			if err != nil {
				return err
			}
			raw, err := readInput(cmd, path, maxBytes)
			if err != nil {
				return fmt.Errorf("read codes: %w", err)
			}
			codes, err := ic.Decode(raw)
			if err != nil {
				return fmt.Errorf("parse codes: %w", err)
			}

			counter := &reasonCounter{}
			hooks := shortcode.Hooks(counter)
			var async *asynchook.Hooks
			if logRejections {
				logHooks := sloghooks.New(newSlog(cmd.ErrOrStderr(), app.verbose), sloghooks.Options{DecodeRejectEvery: sampleEvery})
				async = asynchook.New(logHooks, 1, 1024)
				hooks = shortcode.MultiHooks(counter, async)
			}
			c := shortcode.New(shortcode.Options{
				Clock:  app.clock,
				Logger: app.codecLogger(),
				Hooks:  hooks,
			})
			results := decodeAll(c, codes)
			if async != nil {
				async.Close()
				if n := async.Dropped(); n > 0 {
					app.logger.Warn("rejection log events dropped", zap.Uint64("dropped", n))
				}
			}
			app.logger.Info("batch decoded", append(counter.fields(), zap.Int("codes", len(codes)))...)
			return emit(app, cmd.OutOrStdout(), results)
		},
	}
	cmd.Flags().StringVar(&in, "in", "auto", "input format: auto, lines or json")
	cmd.Flags().BoolVar(&logRejections, "log-rejections", false, "log each rejected code as JSON on stderr (async, sampled)")
	cmd.Flags().Uint64Var(&sampleEvery, "log-every", 1, "with --log-rejections, log every Nth rejection")
	cmd.Flags().IntVar(&maxBytes, "max-bytes", defaultMaxBytes, "refuse input larger than this many bytes (0 = unlimited)")
	return cmd
}
