package asidecache

import (
	"os"
	"strconv"
	"time"
)

// fallbackTTL applies when neither Options.DefaultTTL nor CACHE_TTL is set.
const fallbackTTL = time.Hour

// ttlFromEnv reads the default TTL from CACHE_TTL (whole seconds).
func ttlFromEnv() time.Duration {
	if v := os.Getenv("CACHE_TTL"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return fallbackTTL
}
