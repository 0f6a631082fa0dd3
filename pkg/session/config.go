package session

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config contains session cookie settings.
type Config struct {
	CookieName string `toml:"cookie_name"`
	TTL        string `toml:"ttl"`
	Secure     bool   `toml:"secure"`
}

// Env maps environment variable names for session configuration.
type Env struct {
	CookieName string
	TTL        string
	Secure     string
}

// TTLDuration parses TTL.
func (c *Config) TTLDuration() time.Duration {
	d, _ := time.ParseDuration(c.TTL)
	return d
}

func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

func (c *Config) Merge(overlay *Config) {
	if overlay.CookieName != "" {
		c.CookieName = overlay.CookieName
	}
	if overlay.TTL != "" {
		c.TTL = overlay.TTL
	}
	if overlay.Secure {
		c.Secure = true
	}
}

func (c *Config) loadDefaults() {
	if c.CookieName == "" {
		c.CookieName = "SUPERBOWL_SESSION"
	}
	if c.TTL == "" {
		c.TTL = "1h"
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.CookieName != "" {
		if v := os.Getenv(env.CookieName); v != "" {
			c.CookieName = v
		}
	}
	if env.TTL != "" {
		if v := os.Getenv(env.TTL); v != "" {
			c.TTL = v
		}
	}
	if env.Secure != "" {
		if v := os.Getenv(env.Secure); v != "" {
			if b, err := strconv.ParseBool(v); err == nil {
				c.Secure = b
			}
		}
	}
}

func (c *Config) validate() error {
	d, err := time.ParseDuration(c.TTL)
	if err != nil {
		return fmt.Errorf("invalid ttl: %w", err)
	}
	if d <= 0 {
		return fmt.Errorf("ttl must be positive")
	}
	return nil
}
