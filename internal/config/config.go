// Package config assembles the runtime configuration every twisty
// command shares: where the move/pruning tables live, how much search
// parallelism to allow, and the default move cap for a solve.
package config

import (
	"os"
	"strconv"

	"github.com/ehrlich-b/twisty/internal/kociemba/tables"
)

// Config is the set of knobs the twisty commands share. It is never a
// package-level global; each command builds its own Config (internal/cli's
// loadConfig) from environment variables with flag values taking
// precedence.
type Config struct {
	TableDir string
	Workers  int
	MaxLen   int
	LogLevel string
}

// Default reads TWISTY_TABLE_DIR, TWISTY_WORKERS, TWISTY_MAX_LEN, and
// TWISTY_LOG_LEVEL from the environment, falling back to sane defaults
// for anything unset or unparsable.
func Default() Config {
	return Config{
		TableDir: envOr("TWISTY_TABLE_DIR", tables.DefaultDir()),
		Workers:  envIntOr("TWISTY_WORKERS", 4),
		MaxLen:   envIntOr("TWISTY_MAX_LEN", 20),
		LogLevel: envOr("TWISTY_LOG_LEVEL", "info"),
	}
}

// WithTableDir overrides TableDir when s is non-empty, mirroring how a
// cobra flag value should take precedence over the environment.
func (c Config) WithTableDir(s string) Config {
	if s != "" {
		c.TableDir = s
	}
	return c
}

// WithWorkers overrides Workers when n is positive.
func (c Config) WithWorkers(n int) Config {
	if n > 0 {
		c.Workers = n
	}
	return c
}

// WithMaxLen overrides MaxLen when n is positive.
func (c Config) WithMaxLen(n int) Config {
	if n > 0 {
		c.MaxLen = n
	}
	return c
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
