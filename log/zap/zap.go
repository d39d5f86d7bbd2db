// Package zap adapts a *zap.Logger to shortcode.Logger.
package zap

import (
	"github.com/unkn0wn-root/shortcode"
	"go.uber.org/zap"
)

var _ shortcode.Logger = ZapLogger{}

type ZapLogger struct{ L *zap.Logger }

// New names the logger "shortcode" so codec events are easy to filter.
func New(l *zap.Logger) ZapLogger { return ZapLogger{L: l.Named("shortcode")} }

func (z ZapLogger) Debug(msg string, f shortcode.Fields) { z.L.Debug(msg, zf(f)...) }
func (z ZapLogger) Info(msg string, f shortcode.Fields)  { z.L.Info(msg, zf(f)...) }
func (z ZapLogger) Warn(msg string, f shortcode.Fields)  { z.L.Warn(msg, zf(f)...) }
func (z ZapLogger) Error(msg string, f shortcode.Fields) { z.L.Error(msg, zf(f)...) }

func zf(f shortcode.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for k, v := range f {
		out = append(out, zap.Any(k, v))
	}
	return out
}
