package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/JaimeStill/superbowl/internal/config"
)

const baseConfig = `
mode = "dev"
version = "1.2.0"

[database]
name = "superbowl"
user = "superbowl"

[setup]
seed_on_startup = true
user_id = "admin"
`

func writeConfig(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, config.BaseConfigFile, baseConfig)
	t.Chdir(dir)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := cfg.RuntimeMode(); got != config.Development {
		t.Errorf("RuntimeMode() = %s, want %s", got, config.Development)
	}
	if cfg.Version != "1.2.0" {
		t.Errorf("Version = %q, want %q", cfg.Version, "1.2.0")
	}
	if !cfg.Setup.SeedOnStartup {
		t.Error("Setup.SeedOnStartup = false, want true")
	}
}

func TestLoad_Overlay(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, config.BaseConfigFile, baseConfig)
	writeConfig(t, dir, "config.release.toml", "mode = \"prod\"\n")
	t.Chdir(dir)
	t.Setenv(config.EnvServiceEnv, "release")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := cfg.RuntimeMode(); got != config.Production {
		t.Errorf("RuntimeMode() = %s, want %s", got, config.Production)
	}
}

func TestLoad_ShippedConfig(t *testing.T) {
	t.Chdir(filepath.Join("..", ".."))
	t.Setenv(config.EnvServiceMode, "")

	tests := []struct {
		env  string
		want config.Mode
	}{
		{"", config.Production},
		{"dev", config.Development},
	}

	for _, tt := range tests {
		t.Run("env="+tt.env, func(t *testing.T) {
			t.Setenv(config.EnvServiceEnv, tt.env)

			cfg, err := config.Load()
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if got := cfg.RuntimeMode(); got != tt.want {
				t.Errorf("RuntimeMode() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	if _, err := config.Load(); err == nil {
		t.Error("Load() error = nil, want error")
	}
}

func TestFinalize_ModeEnv(t *testing.T) {
	t.Setenv(config.EnvServiceMode, "test")

	cfg := &config.Config{Mode: "dev"}
	cfg.Database.Name = "superbowl"
	cfg.Database.User = "superbowl"

	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	if got := cfg.RuntimeMode(); got != config.Test {
		t.Errorf("RuntimeMode() = %s, want %s", got, config.Test)
	}
}

func TestFinalize_DefaultsToProduction(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.Name = "superbowl"
	cfg.Database.User = "superbowl"

	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	if !cfg.IsProd() {
		t.Errorf("IsProd() = false for mode %q", cfg.Mode)
	}
}

func TestFinalize_InvalidMode(t *testing.T) {
	cfg := &config.Config{Mode: "staging"}
	cfg.Database.Name = "superbowl"
	cfg.Database.User = "superbowl"

	if err := cfg.Finalize(); err == nil {
		t.Error("Finalize() error = nil, want error")
	}
}

func TestFinalize_SeedOnStartupEnv(t *testing.T) {
	t.Setenv(config.EnvSetupSeedOnStartup, "maybe")

	cfg := &config.Config{}
	cfg.Database.Name = "superbowl"
	cfg.Database.User = "superbowl"

	if err := cfg.Finalize(); err == nil {
		t.Error("Finalize() error = nil, want error")
	}
}
