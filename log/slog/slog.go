// Package slog adapts a stdlib *slog.Logger to the asidecache.Logger
// contract.
package slog

import (
	"context"
	stdslog "log/slog"

	"github.com/unkn0wn-root/asidecache"
)

var _ asidecache.Logger = Logger{}

type Logger struct{ l *stdslog.Logger }

func New(l *stdslog.Logger) Logger { return Logger{l: l} }

func (s Logger) Debug(msg string, f asidecache.Fields) { s.log(stdslog.LevelDebug, msg, f) }
func (s Logger) Info(msg string, f asidecache.Fields)  { s.log(stdslog.LevelInfo, msg, f) }
func (s Logger) Warn(msg string, f asidecache.Fields)  { s.log(stdslog.LevelWarn, msg, f) }
func (s Logger) Error(msg string, f asidecache.Fields) { s.log(stdslog.LevelError, msg, f) }

func (s Logger) log(level stdslog.Level, msg string, f asidecache.Fields) {
	s.l.LogAttrs(context.Background(), level, msg, attrs(f)...)
}

func attrs(f asidecache.Fields) []stdslog.Attr {
	if len(f) == 0 {
		return nil
	}
	out := make([]stdslog.Attr, 0, len(f))
	for k, v := range f {
		out = append(out, stdslog.Any(k, v))
	}
	return out
}
