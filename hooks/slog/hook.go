// Package slog is a Hooks implementation that logs events through the
// stdlib structured logger, with per-event sampling so hot caches don't
// flood the log with hit/miss lines.
package slog

import (
	stdslog "log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/asidecache"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	HitEvery  uint64
	MissEvery uint64
}

type Hooks struct {
	l    *stdslog.Logger
	opts Options

	hitCtr  atomic.Uint64
	missCtr atomic.Uint64
}

var _ asidecache.Hooks = (*Hooks)(nil)

func New(l *stdslog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) Hit(namespace, key string) {
	if h.l == nil || !sample(h.opts.HitEvery, &h.hitCtr) {
		return
	}
	h.l.Debug("asidecache.hit", "ns", namespace, "key", key)
}

func (h *Hooks) Miss(namespace, key string) {
	if h.l == nil || !sample(h.opts.MissEvery, &h.missCtr) {
		return
	}
	h.l.Debug("asidecache.miss", "ns", namespace, "key", key)
}

func (h *Hooks) WriteSkipped(namespace, key, reason string) {
	if h.l == nil {
		return
	}
	h.l.Info("asidecache.write_skipped",
		"ns", namespace,
		"key", key,
		"reason", reason)
}

func (h *Hooks) StoreError(op string, err error) {
	if h.l == nil {
		return
	}
	h.l.Warn("asidecache.store_error",
		"op", op,
		"err", err)
}

func (h *Hooks) Purged(pattern string, n int) {
	if h.l == nil {
		return
	}
	h.l.Info("asidecache.purged",
		"pattern", pattern,
		"count", n)
}
