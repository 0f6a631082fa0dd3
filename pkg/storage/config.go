package storage

import (
	"fmt"
	"os"

	"github.com/docker/go-units"
)

// Env maps environment variable names for storage configuration.
type Env struct {
	BasePath      string
	MaxUploadSize string
}

// Config locates uploaded photographs on disk. MaxUploadSize is a human
// readable size such as "10MB" and bounds a single stored blob.
type Config struct {
	BasePath      string `toml:"base_path"`
	MaxUploadSize string `toml:"max_upload_size"`

	limit int64
}

// Limit is the parsed MaxUploadSize in bytes. Zero means unbounded and is
// only seen before Finalize.
func (c *Config) Limit() int64 {
	return c.limit
}

func (c *Config) Finalize(env *Env) error {
	if c.BasePath == "" {
		c.BasePath = ".data/uploads"
	}
	if c.MaxUploadSize == "" {
		c.MaxUploadSize = "10MB"
	}

	if env != nil {
		setFromEnv(env.BasePath, &c.BasePath)
		setFromEnv(env.MaxUploadSize, &c.MaxUploadSize)
	}

	size, err := units.FromHumanSize(c.MaxUploadSize)
	switch {
	case err != nil:
		return fmt.Errorf("invalid max_upload_size %q: %w", c.MaxUploadSize, err)
	case size <= 0:
		return fmt.Errorf("max_upload_size must be positive")
	}
	c.limit = size
	return nil
}

func (c *Config) Merge(overlay *Config) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxUploadSize != "" {
		c.MaxUploadSize = overlay.MaxUploadSize
	}
}

func setFromEnv(name string, dest *string) {
	if name == "" {
		return
	}
	if v := os.Getenv(name); v != "" {
		*dest = v
	}
}
