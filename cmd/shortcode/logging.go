package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"github.com/unkn0wn-root/shortcode"
	shortlogrus "github.com/unkn0wn-root/shortcode/log/logrus"
	shortslog "github.com/unkn0wn-root/shortcode/log/slog"
	shortzap "github.com/unkn0wn-root/shortcode/log/zap"
)

const (
	backendZap    = "zap"
	backendLogrus = "logrus"
	backendSlog   = "slog"
)

// newCodecLogger builds the logger the codec reports rejections through.
// zap reuses the CLI logger; logrus and slog write JSON to w.
func newCodecLogger(backend string, verbose bool, zl *zap.Logger, w io.Writer) (shortcode.Logger, error) {
	switch backend {
	case backendZap, "":
		return shortzap.New(zl), nil
	case backendLogrus:
		l := logrus.New()
		l.SetOutput(w)
		l.SetFormatter(&logrus.JSONFormatter{})
		if verbose {
			l.SetLevel(logrus.DebugLevel)
		}
		return shortlogrus.LogrusLogger{E: l.WithField("logger", "shortcode")}, nil
	case backendSlog:
		return shortslog.Logger{L: newSlog(w, verbose).With("logger", "shortcode")}, nil
	default:
		return nil, fmt.Errorf("unknown log backend %q (want %s, %s or %s)", backend, backendZap, backendLogrus, backendSlog)
	}
}

func newSlog(w io.Writer, verbose bool) *slog.Logger {
	lvl := slog.LevelInfo
	if verbose {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
}
