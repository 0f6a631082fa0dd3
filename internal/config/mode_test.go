package config_test

import (
	"testing"

	"github.com/JaimeStill/superbowl/internal/config"
)

type flags struct {
	dev, prod, test bool
}

func (f flags) IsDev() bool  { return f.dev }
func (f flags) IsProd() bool { return f.prod }
func (f flags) IsTest() bool { return f.test }

func TestDetectMode(t *testing.T) {
	tests := []struct {
		name  string
		flags flags
		want  config.Mode
	}{
		{"none", flags{}, config.Production},
		{"prod", flags{prod: true}, config.Production},
		{"dev", flags{dev: true}, config.Development},
		{"test", flags{test: true}, config.Test},
		{"dev and test", flags{dev: true, test: true}, config.Development},
		{"dev and prod", flags{dev: true, prod: true}, config.Development},
		{"test and prod", flags{test: true, prod: true}, config.Test},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := config.DetectMode(tt.flags); got != tt.want {
				t.Errorf("DetectMode() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestMode_String(t *testing.T) {
	tests := []struct {
		mode config.Mode
		want string
	}{
		{config.Production, "production"},
		{config.Development, "development"},
		{config.Test, "test"},
	}

	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestConfig_RuntimeMode(t *testing.T) {
	tests := []struct {
		mode string
		want config.Mode
	}{
		{"", config.Production},
		{"prod", config.Production},
		{"production", config.Production},
		{"dev", config.Development},
		{"Development", config.Development},
		{"test", config.Test},
		{" TEST ", config.Test},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			cfg := &config.Config{Mode: tt.mode}
			if got := cfg.RuntimeMode(); got != tt.want {
				t.Errorf("RuntimeMode() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestConfig_ModeFlags_Exclusive(t *testing.T) {
	for _, mode := range []string{"dev", "prod", "test"} {
		cfg := &config.Config{Mode: mode}
		count := 0
		for _, set := range []bool{cfg.IsDev(), cfg.IsProd(), cfg.IsTest()} {
			if set {
				count++
			}
		}
		if count != 1 {
			t.Errorf("mode %s asserted %d flags, want 1", mode, count)
		}
	}
}
