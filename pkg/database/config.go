package database

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"
)

// Env maps environment variable names for database configuration.
type Env struct {
	Host            string
	Port            string
	Name            string
	User            string
	Password        string
	SSLMode         string
	MaxOpenConns    string
	MaxIdleConns    string
	ConnMaxLifetime string
	ConnTimeout     string
	AutoMigrate     string
}

// Config describes the Postgres catalogue database. Durations are Go
// duration strings and are parsed by Finalize.
type Config struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	Name            string `toml:"name"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	SSLMode         string `toml:"ssl_mode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime string `toml:"conn_max_lifetime"`
	ConnTimeout     string `toml:"conn_timeout"`
	AutoMigrate     bool   `toml:"auto_migrate"`

	lifetime time.Duration
	timeout  time.Duration
}

// Lifetime is the maximum age of a pooled connection.
func (c *Config) Lifetime() time.Duration {
	return c.lifetime
}

// Timeout bounds the startup ping. It falls back to five seconds before
// Finalize has run.
func (c *Config) Timeout() time.Duration {
	if c.timeout <= 0 {
		return 5 * time.Second
	}
	return c.timeout
}

// Dsn renders the connection as a postgres:// URL accepted by both the
// pgx driver and the migrator.
func (c *Config) Dsn() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + c.Name,
		RawQuery: url.Values{"sslmode": {c.SSLMode}}.Encode(),
	}
	return u.String()
}

func (c *Config) Finalize(env *Env) error {
	c.defaults()
	if env != nil {
		c.overrides(env)
	}

	if c.Name == "" {
		return fmt.Errorf("name required")
	}
	if c.User == "" {
		return fmt.Errorf("user required")
	}

	var err error
	if c.lifetime, err = time.ParseDuration(c.ConnMaxLifetime); err != nil {
		return fmt.Errorf("invalid conn_max_lifetime: %w", err)
	}
	if c.timeout, err = time.ParseDuration(c.ConnTimeout); err != nil {
		return fmt.Errorf("invalid conn_timeout: %w", err)
	}
	if c.MaxIdleConns > c.MaxOpenConns {
		c.MaxIdleConns = c.MaxOpenConns
	}
	return nil
}

// Merge copies every non-zero field of overlay. AutoMigrate can only be
// switched on by an overlay.
func (c *Config) Merge(overlay *Config) {
	for _, f := range []struct{ dst, src *string }{
		{&c.Host, &overlay.Host},
		{&c.Name, &overlay.Name},
		{&c.User, &overlay.User},
		{&c.Password, &overlay.Password},
		{&c.SSLMode, &overlay.SSLMode},
		{&c.ConnMaxLifetime, &overlay.ConnMaxLifetime},
		{&c.ConnTimeout, &overlay.ConnTimeout},
	} {
		if *f.src != "" {
			*f.dst = *f.src
		}
	}
	for _, f := range []struct{ dst, src *int }{
		{&c.Port, &overlay.Port},
		{&c.MaxOpenConns, &overlay.MaxOpenConns},
		{&c.MaxIdleConns, &overlay.MaxIdleConns},
	} {
		if *f.src != 0 {
			*f.dst = *f.src
		}
	}
	c.AutoMigrate = c.AutoMigrate || overlay.AutoMigrate
}

func (c *Config) defaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 5432
	}
	if c.SSLMode == "" {
		c.SSLMode = "disable"
	}
	if c.MaxOpenConns == 0 {
		c.MaxOpenConns = 25
	}
	if c.MaxIdleConns == 0 {
		c.MaxIdleConns = 5
	}
	if c.ConnMaxLifetime == "" {
		c.ConnMaxLifetime = "15m"
	}
	if c.ConnTimeout == "" {
		c.ConnTimeout = "5s"
	}
}

func (c *Config) overrides(env *Env) {
	lookup := func(name string) (string, bool) {
		if name == "" {
			return "", false
		}
		v := os.Getenv(name)
		return v, v != ""
	}

	for name, dst := range map[string]*string{
		env.Host:            &c.Host,
		env.Name:            &c.Name,
		env.User:            &c.User,
		env.Password:        &c.Password,
		env.SSLMode:         &c.SSLMode,
		env.ConnMaxLifetime: &c.ConnMaxLifetime,
		env.ConnTimeout:     &c.ConnTimeout,
	} {
		if v, ok := lookup(name); ok {
			*dst = v
		}
	}

	for name, dst := range map[string]*int{
		env.Port:         &c.Port,
		env.MaxOpenConns: &c.MaxOpenConns,
		env.MaxIdleConns: &c.MaxIdleConns,
	} {
		if v, ok := lookup(name); ok {
			if n, err := strconv.Atoi(v); err == nil {
				*dst = n
			}
		}
	}

	if v, ok := lookup(env.AutoMigrate); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.AutoMigrate = b
		}
	}
}
