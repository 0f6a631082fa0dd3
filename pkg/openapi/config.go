package openapi

import (
	"os"
	"strings"
)

// Env maps environment variable names for Config. Servers is read as a
// comma separated list.
type Env struct {
	Title       string
	Description string
	Servers     string
}

// Config carries the document metadata published at /docs.
type Config struct {
	Title       string   `toml:"title"`
	Description string   `toml:"description"`
	Servers     []string `toml:"servers"`
}

// Document starts a spec for the given service version with the
// configured metadata applied.
func (c *Config) Document(version string) *Spec {
	spec := NewSpec(c.Title, version)
	spec.SetDescription(c.Description)
	for _, url := range c.Servers {
		spec.AddServer(url)
	}
	return spec
}

func (c *Config) Finalize(env *Env) error {
	if env != nil {
		if v := os.Getenv(env.Title); env.Title != "" && v != "" {
			c.Title = v
		}
		if v := os.Getenv(env.Description); env.Description != "" && v != "" {
			c.Description = v
		}
		if v := os.Getenv(env.Servers); env.Servers != "" && v != "" {
			c.Servers = nil
			for _, s := range strings.Split(v, ",") {
				if s = strings.TrimSpace(s); s != "" {
					c.Servers = append(c.Servers, s)
				}
			}
		}
	}

	if c.Title == "" {
		c.Title = "Superbowl"
	}
	if c.Description == "" {
		c.Description = "Catalogue of wooden bowls, timber, exhibitions and customers."
	}
	return nil
}

func (c *Config) Merge(overlay *Config) {
	if overlay.Title != "" {
		c.Title = overlay.Title
	}
	if overlay.Description != "" {
		c.Description = overlay.Description
	}
	if len(overlay.Servers) > 0 {
		c.Servers = overlay.Servers
	}
}
