package config

import (
	"fmt"
	"strings"
)

// EnvServiceMode overrides the runtime mode.
const EnvServiceMode = "SUPERBOWL_MODE"

// Accepted values of the mode setting.
const (
	ModeDev  = "dev"
	ModeProd = "prod"
	ModeTest = "test"
)

// Mode is the runtime mode of the process.
type Mode int

const (
	Production Mode = iota
	Development
	Test
)

func (m Mode) String() string {
	switch m {
	case Development:
		return "development"
	case Test:
		return "test"
	default:
		return "production"
	}
}

// ModeFlags reports which runtime mode the configuration asserts.
type ModeFlags interface {
	IsDev() bool
	IsProd() bool
	IsTest() bool
}

// DetectMode resolves flags to exactly one mode. Development wins over
// Test, and Production is the default when nothing else is asserted.
func DetectMode(flags ModeFlags) Mode {
	switch {
	case flags.IsDev():
		return Development
	case flags.IsTest():
		return Test
	default:
		return Production
	}
}

func (c *Config) IsDev() bool  { return normalizeMode(c.Mode) == ModeDev }
func (c *Config) IsProd() bool { return normalizeMode(c.Mode) == ModeProd }
func (c *Config) IsTest() bool { return normalizeMode(c.Mode) == ModeTest }

// RuntimeMode is DetectMode applied to the configuration.
func (c *Config) RuntimeMode() Mode {
	return DetectMode(c)
}

func normalizeMode(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dev", "development":
		return ModeDev
	case "test":
		return ModeTest
	case "", "prod", "production":
		return ModeProd
	default:
		return s
	}
}

func validateMode(s string) error {
	switch normalizeMode(s) {
	case ModeDev, ModeProd, ModeTest:
		return nil
	default:
		return fmt.Errorf("invalid mode: %s (must be dev, prod, or test)", s)
	}
}
