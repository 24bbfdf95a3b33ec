package retention

import (
	"errors"
	"fmt"
	"time"
)

const (
	DefaultCacheWindow uint64 = 10
	DefaultDBWindow    uint64 = 1000
	DefaultCachePeriod        = time.Minute
	DefaultDBPeriod           = 60 * time.Minute
)

// Config holds the trailing windows, in blocks, and the cleanup periods.
type Config struct {
	CacheWindow uint64
	DBWindow    uint64
	CachePeriod time.Duration
	DBPeriod    time.Duration
}

// DefaultConfig returns the production retention settings.
func DefaultConfig() Config {
	return Config{
		CacheWindow: DefaultCacheWindow,
		DBWindow:    DefaultDBWindow,
		CachePeriod: DefaultCachePeriod,
		DBPeriod:    DefaultDBPeriod,
	}
}

// Validate rejects zero windows, zero periods and a cache window wider than the database window.
func (c Config) Validate() error {
	if c.CacheWindow == 0 {
		return errors.New("cache window must be positive")
	}
	if c.DBWindow == 0 {
		return errors.New("db window must be positive")
	}
	if c.CacheWindow > c.DBWindow {
		return fmt.Errorf("cache window %d exceeds db window %d", c.CacheWindow, c.DBWindow)
	}
	if c.CachePeriod <= 0 {
		return errors.New("cache cleanup period must be positive")
	}
	if c.DBPeriod <= 0 {
		return errors.New("db cleanup period must be positive")
	}
	return nil
}
