package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/JaimeStill/superbowl/pkg/logging"
)

func TestConfig_Finalize_Defaults(t *testing.T) {
	cfg := &logging.Config{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	if cfg.Level != "info" || cfg.Format != logging.FormatText || cfg.Output != logging.OutputStdout {
		t.Errorf("defaults = %+v", cfg)
	}
}

func TestConfig_Finalize_Env(t *testing.T) {
	t.Setenv("TEST_LOG_LEVEL", "debug")
	t.Setenv("TEST_LOG_FORMAT", "json")

	cfg := &logging.Config{}
	err := cfg.Finalize(&logging.Env{Level: "TEST_LOG_LEVEL", Format: "TEST_LOG_FORMAT"})
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	if cfg.Level != "debug" || cfg.Format != logging.FormatJSON {
		t.Errorf("config = %+v, want debug json", cfg)
	}
}

func TestConfig_Finalize_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cfg  logging.Config
	}{
		{"level", logging.Config{Level: "verbose"}},
		{"format", logging.Config{Format: "xml"}},
		{"output", logging.Config{Output: "syslog"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Finalize(nil); err == nil {
				t.Error("Finalize() error = nil, want error")
			}
		})
	}
}

func TestNewWithWriter_Attrs(t *testing.T) {
	cfg := &logging.Config{Format: logging.FormatJSON}
	cfg.Finalize(nil)

	var buf bytes.Buffer
	logger := logging.NewWithWriter(cfg, &buf, "service", "superbowl", "mode", "test")
	logger.Warn("startup", "isTest", true)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if record["service"] != "superbowl" || record["mode"] != "test" {
		t.Errorf("record = %v, want service and mode attributes", record)
	}
	if record["isTest"] != true {
		t.Errorf("isTest = %v, want true", record["isTest"])
	}
}

func TestNewWithWriter_Level(t *testing.T) {
	cfg := &logging.Config{Level: "warn"}
	cfg.Finalize(nil)

	var buf bytes.Buffer
	logger := logging.NewWithWriter(cfg, &buf)
	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Errorf("output = %q, want only warn records", out)
	}
}
