// Package redis implements store.Store on top of a Redis server.
//
// Connectivity is probed once, eagerly, at construction: a failed PING marks
// the store unavailable for the process lifetime and every operation then
// degrades to miss / no-op. The probe uses a short dial timeout so an
// unreachable server fails fast instead of stalling callers.
package redis

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/unkn0wn-root/asidecache"
	"github.com/unkn0wn-root/asidecache/store"
)

// ErrUnavailable is returned by Stats when the store never connected.
var ErrUnavailable = errors.New("redis store: unavailable")

const defaultConnectTimeout = 2 * time.Second

type Config struct {
	// Client, when set, is used as-is and the address fields are ignored.
	// Set CloseClient true only if this store exclusively owns the client.
	Client      goredis.UniversalClient
	CloseClient bool

	Host     string // default "localhost"
	Port     int    // default 6379
	Password string
	DB       int

	// ConnectTimeout bounds the initial PING probe. Default 2s.
	ConnectTimeout time.Duration

	Logger asidecache.Logger // nil disables logging
}

type Redis struct {
	rdb         goredis.UniversalClient
	addr        string
	available   bool
	closeClient bool
	log         asidecache.Logger
}

var _ store.Store = (*Redis)(nil)

// New builds the store and probes the server once. It never returns an
// error for an unreachable server; the result is an unavailable store whose
// operations are all safe no-ops.
func New(cfg Config) *Redis {
	log := cfg.Logger
	if log == nil {
		log = asidecache.NopLogger{}
	}

	host := cfg.Host
	if host == "" {
		host = "localhost"
	}
	port := cfg.Port
	if port == 0 {
		port = 6379
	}
	addr := host + ":" + strconv.Itoa(port)

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}

	rdb := cfg.Client
	closeClient := cfg.CloseClient
	if rdb == nil {
		rdb = goredis.NewClient(&goredis.Options{
			Addr:        addr,
			Password:    cfg.Password,
			DB:          cfg.DB,
			DialTimeout: timeout,
		})
		closeClient = true
	}

	p := &Redis{rdb: rdb, addr: addr, closeClient: closeClient, log: log}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn("redis unreachable; caching disabled", asidecache.Fields{"addr": addr, "err": err})
		return p
	}
	p.available = true
	log.Info("connected to redis", asidecache.Fields{"addr": addr})
	return p
}

func (p *Redis) Available() bool { return p.available }

func (p *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if !p.available {
		return nil, false, nil
	}
	b, err := p.rdb.Get(ctx, key).Bytes()
	if err == goredis.Nil {
		return nil, false, nil // miss
	}
	if err != nil {
		return nil, false, err // transport/server error
	}
	return b, true, nil
}

func (p *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if !p.available {
		return nil
	}
	if ttl > 0 {
		return p.rdb.SetEx(ctx, key, value, ttl).Err()
	}
	return p.rdb.Set(ctx, key, value, 0).Err()
}

func (p *Redis) Keys(ctx context.Context, pattern string) ([]string, error) {
	if !p.available {
		return nil, nil
	}
	return p.rdb.Keys(ctx, pattern).Result()
}

func (p *Redis) DeleteMatching(ctx context.Context, pattern string) (int, error) {
	if !p.available {
		return 0, nil
	}
	keys, err := p.rdb.Keys(ctx, pattern).Result()
	if err != nil {
		return 0, err
	}
	if len(keys) == 0 {
		return 0, nil
	}
	n, err := p.rdb.Del(ctx, keys...).Result()
	return int(n), err
}

func (p *Redis) Stats(ctx context.Context) (store.Stats, error) {
	if !p.available {
		return store.Stats{}, ErrUnavailable
	}
	statsInfo, err := p.rdb.Info(ctx, "stats").Result()
	if err != nil {
		return store.Stats{}, err
	}
	memInfo, err := p.rdb.Info(ctx, "memory").Result()
	if err != nil {
		return store.Stats{}, err
	}
	return store.Stats{
		Addr:       p.addr,
		Hits:       infoUint(statsInfo, "keyspace_hits"),
		Misses:     infoUint(statsInfo, "keyspace_misses"),
		MemoryUsed: infoField(memInfo, "used_memory_human"),
	}, nil
}

// Close releases the underlying client only when this store owns it.
// Safe to call multiple times; repeated calls become no-ops.
func (p *Redis) Close(context.Context) error {
	if p.closeClient {
		if err := p.rdb.Close(); err != nil && !errors.Is(err, goredis.ErrClosed) {
			return err
		}
	}
	return nil
}

// infoField extracts one "name:value" line from an INFO section body.
func infoField(info, name string) string {
	for _, line := range strings.Split(info, "\n") {
		if v, ok := strings.CutPrefix(line, name+":"); ok {
			return strings.TrimRight(v, "\r")
		}
	}
	return ""
}

func infoUint(info, name string) uint64 {
	v, _ := strconv.ParseUint(infoField(info, name), 10, 64)
	return v
}
