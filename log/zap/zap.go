// Package zap adapts a *zap.Logger to the asidecache.Logger contract.
package zap

import (
	"go.uber.org/zap"

	"github.com/unkn0wn-root/asidecache"
)

var _ asidecache.Logger = Logger{}

type Logger struct{ l *zap.Logger }

func New(l *zap.Logger) Logger { return Logger{l: l} }

func (z Logger) Debug(msg string, f asidecache.Fields) { z.l.Debug(msg, fields(f)...) }
func (z Logger) Info(msg string, f asidecache.Fields)  { z.l.Info(msg, fields(f)...) }
func (z Logger) Warn(msg string, f asidecache.Fields)  { z.l.Warn(msg, fields(f)...) }
func (z Logger) Error(msg string, f asidecache.Fields) { z.l.Error(msg, fields(f)...) }

func fields(f asidecache.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for k, v := range f {
		out = append(out, zap.Any(k, v))
	}
	return out
}
