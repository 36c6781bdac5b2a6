// Package logrus adapts a logrus entry to the asidecache.Logger contract.
package logrus

import (
	"github.com/sirupsen/logrus"

	"github.com/unkn0wn-root/asidecache"
)

var _ asidecache.Logger = Logger{}

type Logger struct{ e *logrus.Entry }

func New(e *logrus.Entry) Logger { return Logger{e: e} }

func (l Logger) Debug(msg string, f asidecache.Fields) {
	l.e.WithFields(logrus.Fields(f)).Debug(msg)
}
func (l Logger) Info(msg string, f asidecache.Fields) {
	l.e.WithFields(logrus.Fields(f)).Info(msg)
}
func (l Logger) Warn(msg string, f asidecache.Fields) {
	l.e.WithFields(logrus.Fields(f)).Warn(msg)
}
func (l Logger) Error(msg string, f asidecache.Fields) {
	l.e.WithFields(logrus.Fields(f)).Error(msg)
}
