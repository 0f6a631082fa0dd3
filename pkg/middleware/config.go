package middleware

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// CORSEnv maps environment variable names for CORS configuration.
type CORSEnv struct {
	Enabled          string
	Origins          string
	AllowedMethods   string
	AllowedHeaders   string
	AllowCredentials string
	MaxAge           string
}

// CORSConfig contains Cross-Origin Resource Sharing configuration.
type CORSConfig struct {
	Enabled          bool     `toml:"enabled"`
	Origins          []string `toml:"origins"`
	AllowedMethods   []string `toml:"allowed_methods"`
	AllowedHeaders   []string `toml:"allowed_headers"`
	AllowCredentials bool     `toml:"allow_credentials"`
	MaxAge           int      `toml:"max_age"`
}

// Finalize applies defaults and environment overrides.
func (c *CORSConfig) Finalize(env *CORSEnv) error {
	c.loadDefaults()
	c.loadEnv(env)
	return nil
}

// Merge applies overlay values. Booleans always override; nil slices keep the base.
func (c *CORSConfig) Merge(overlay *CORSConfig) {
	c.Enabled = overlay.Enabled
	c.AllowCredentials = overlay.AllowCredentials

	if overlay.Origins != nil {
		c.Origins = overlay.Origins
	}
	if overlay.AllowedMethods != nil {
		c.AllowedMethods = overlay.AllowedMethods
	}
	if overlay.AllowedHeaders != nil {
		c.AllowedHeaders = overlay.AllowedHeaders
	}
	if overlay.MaxAge > 0 {
		c.MaxAge = overlay.MaxAge
	}
}

func (c *CORSConfig) loadDefaults() {
	if len(c.AllowedMethods) == 0 {
		c.AllowedMethods = []string{"GET", "POST", "OPTIONS"}
	}
	if len(c.AllowedHeaders) == 0 {
		c.AllowedHeaders = []string{"Content-Type", "Authorization"}
	}
	if c.MaxAge <= 0 {
		c.MaxAge = 3600
	}
}

func (c *CORSConfig) loadEnv(env *CORSEnv) {
	if env == nil {
		return
	}

	if v := os.Getenv(env.Enabled); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			c.Enabled = enabled
		}
	}
	if v := os.Getenv(env.Origins); v != "" {
		c.Origins = splitList(v)
	}
	if v := os.Getenv(env.AllowedMethods); v != "" {
		c.AllowedMethods = splitList(v)
	}
	if v := os.Getenv(env.AllowedHeaders); v != "" {
		c.AllowedHeaders = splitList(v)
	}
	if v := os.Getenv(env.AllowCredentials); v != "" {
		if creds, err := strconv.ParseBool(v); err == nil {
			c.AllowCredentials = creds
		}
	}
	if v := os.Getenv(env.MaxAge); v != "" {
		if maxAge, err := strconv.Atoi(v); err == nil {
			c.MaxAge = maxAge
		}
	}
}

// RateLimitEnv maps environment variable names for rate limit configuration.
type RateLimitEnv struct {
	Enabled string
	Rate    string
	Burst   string
}

// RateLimitConfig limits form submissions per client address.
type RateLimitConfig struct {
	Enabled bool    `toml:"enabled"`
	Rate    float64 `toml:"rate"`
	Burst   int     `toml:"burst"`
	Idle    string  `toml:"idle"`
}

// Finalize applies defaults, environment overrides and validates.
func (c *RateLimitConfig) Finalize(env *RateLimitEnv) error {
	if c.Rate <= 0 {
		c.Rate = 5
	}
	if c.Burst <= 0 {
		c.Burst = 10
	}
	if c.Idle == "" {
		c.Idle = "10m"
	}

	if env != nil {
		if v := os.Getenv(env.Enabled); v != "" {
			if enabled, err := strconv.ParseBool(v); err == nil {
				c.Enabled = enabled
			}
		}
		if v := os.Getenv(env.Rate); v != "" {
			if r, err := strconv.ParseFloat(v, 64); err == nil {
				c.Rate = r
			}
		}
		if v := os.Getenv(env.Burst); v != "" {
			if b, err := strconv.Atoi(v); err == nil {
				c.Burst = b
			}
		}
	}

	if _, err := time.ParseDuration(c.Idle); err != nil {
		return fmt.Errorf("invalid rate_limit idle: %w", err)
	}
	return nil
}

// Merge applies overlay values.
func (c *RateLimitConfig) Merge(overlay *RateLimitConfig) {
	c.Enabled = overlay.Enabled
	if overlay.Rate > 0 {
		c.Rate = overlay.Rate
	}
	if overlay.Burst > 0 {
		c.Burst = overlay.Burst
	}
	if overlay.Idle != "" {
		c.Idle = overlay.Idle
	}
}

// IdleDuration returns how long an unused client limiter is kept.
func (c *RateLimitConfig) IdleDuration() time.Duration {
	d, _ := time.ParseDuration(c.Idle)
	return d
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
