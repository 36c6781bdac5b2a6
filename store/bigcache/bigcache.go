// Package bigcache implements store.Store in-process on allegro/bigcache.
// Useful for single-replica deployments and tests where no Redis is wanted.
//
// BigCache has one global life window instead of per-entry TTLs: Set ignores
// the ttl argument and entries expire after Config.LifeWindow. Pattern
// operations walk the iterator, so Keys and DeleteMatching are O(n) in the
// number of live entries.
package bigcache

import (
	"context"
	"path"
	"strconv"
	"time"

	bc "github.com/allegro/bigcache/v3"

	"github.com/unkn0wn-root/asidecache/store"
)

type Config struct {
	// LifeWindow is the single expiry applied to every entry; required.
	// Per-call TTLs passed to Set are ignored on this store, so wrappers
	// with different TTLs share this one window here.
	LifeWindow         time.Duration
	CleanWindow        time.Duration
	MaxEntriesInWindow int
	MaxEntrySize       int
	HardMaxCacheSizeMB int // ~ memory limit; 0 = unlimited
}

type Store struct {
	c *bc.BigCache
}

var _ store.Store = (*Store)(nil)

func New(cfg Config) (*Store, error) {
	conf := bc.DefaultConfig(cfg.LifeWindow)
	if cfg.CleanWindow > 0 {
		conf.CleanWindow = cfg.CleanWindow
	}
	if cfg.MaxEntriesInWindow > 0 {
		conf.MaxEntriesInWindow = cfg.MaxEntriesInWindow
	}
	if cfg.MaxEntrySize > 0 {
		conf.MaxEntrySize = cfg.MaxEntrySize
	}
	if cfg.HardMaxCacheSizeMB > 0 {
		conf.HardMaxCacheSize = cfg.HardMaxCacheSizeMB
	}
	c, err := bc.NewBigCache(conf)
	if err != nil {
		return nil, err
	}
	return &Store{c: c}, nil
}

func (s *Store) Available() bool { return true }

func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	b, err := s.c.Get(key)
	if err == bc.ErrEntryNotFound {
		return nil, false, nil
	}
	return b, err == nil, err
}

func (s *Store) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	return s.c.Set(key, value)
}

func (s *Store) Keys(_ context.Context, pattern string) ([]string, error) {
	var keys []string
	it := s.c.Iterator()
	for it.SetNext() {
		e, err := it.Value()
		if err != nil {
			continue // entry evicted mid-iteration
		}
		ok, err := path.Match(pattern, e.Key())
		if err != nil {
			return nil, err
		}
		if ok {
			keys = append(keys, e.Key())
		}
	}
	return keys, nil
}

func (s *Store) DeleteMatching(ctx context.Context, pattern string) (int, error) {
	keys, err := s.Keys(ctx, pattern)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, k := range keys {
		if s.c.Delete(k) == nil {
			n++
		}
	}
	return n, nil
}

func (s *Store) Stats(context.Context) (store.Stats, error) {
	st := s.c.Stats()
	return store.Stats{
		Hits:       uint64(st.Hits),
		Misses:     uint64(st.Misses),
		MemoryUsed: strconv.Itoa(s.c.Capacity()) + "B",
	}, nil
}

func (s *Store) Close(context.Context) error { return s.c.Close() }
