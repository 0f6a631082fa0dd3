package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	EnvAssetsWebjarsDir   = "ASSETS_WEBJARS_DIR"
	EnvSetupSeedOnStartup = "SETUP_SEED_ON_STARTUP"
	EnvSetupUserID        = "SETUP_USER_ID"
	EnvSetupUserName      = "SETUP_USER_NAME"
	EnvSetupEmail         = "SETUP_EMAIL"
	EnvSetupPassword      = "SETUP_PASSWORD"
)

// AssetsConfig locates static assets served outside the embedded bundle.
type AssetsConfig struct {
	WebjarsDir string `toml:"webjars_dir"`
}

func (c *AssetsConfig) Finalize() error {
	if c.WebjarsDir == "" {
		c.WebjarsDir = ".data/webjars"
	}
	if v := os.Getenv(EnvAssetsWebjarsDir); v != "" {
		c.WebjarsDir = v
	}
	if c.WebjarsDir == "" {
		return fmt.Errorf("webjars_dir required")
	}
	return nil
}

func (c *AssetsConfig) Merge(overlay *AssetsConfig) {
	if overlay.WebjarsDir != "" {
		c.WebjarsDir = overlay.WebjarsDir
	}
}

// SetupConfig controls the startup seeding action and the account it
// creates. An empty password is generated at seeding time.
type SetupConfig struct {
	SeedOnStartup bool   `toml:"seed_on_startup"`
	UserID        string `toml:"user_id"`
	UserName      string `toml:"user_name"`
	Email         string `toml:"email"`
	Password      string `toml:"password"`
}

func (c *SetupConfig) Finalize() error {
	if c.UserID == "" {
		c.UserID = "admin"
	}
	if c.UserName == "" {
		c.UserName = "Administrator"
	}
	if v := os.Getenv(EnvSetupUserID); v != "" {
		c.UserID = v
	}
	if v := os.Getenv(EnvSetupUserName); v != "" {
		c.UserName = v
	}
	if v := os.Getenv(EnvSetupEmail); v != "" {
		c.Email = v
	}
	if v := os.Getenv(EnvSetupPassword); v != "" {
		c.Password = v
	}
	if v := os.Getenv(EnvSetupSeedOnStartup); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvSetupSeedOnStartup, err)
		}
		c.SeedOnStartup = b
	}
	return nil
}

func (c *SetupConfig) Merge(overlay *SetupConfig) {
	if overlay.SeedOnStartup {
		c.SeedOnStartup = true
	}
	if overlay.UserID != "" {
		c.UserID = overlay.UserID
	}
	if overlay.UserName != "" {
		c.UserName = overlay.UserName
	}
	if overlay.Email != "" {
		c.Email = overlay.Email
	}
	if overlay.Password != "" {
		c.Password = overlay.Password
	}
}
