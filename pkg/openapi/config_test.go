package openapi_test

import (
	"testing"

	"github.com/JaimeStill/superbowl/pkg/openapi"
)

func TestConfig_Document(t *testing.T) {
	t.Setenv("TEST_OPENAPI_SERVERS", "http://localhost:9000, ,/superbowl")

	cfg := &openapi.Config{}
	if err := cfg.Finalize(&openapi.Env{Servers: "TEST_OPENAPI_SERVERS"}); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	spec := cfg.Document("1.2.0")
	if spec.Info.Title != "Superbowl" || spec.Info.Version != "1.2.0" {
		t.Errorf("Info = %+v", spec.Info)
	}
	if spec.Info.Description == "" {
		t.Error("Description is empty")
	}
	if len(spec.Servers) != 2 || spec.Servers[1].URL != "/superbowl" {
		t.Errorf("Servers = %v, want 2 entries ending in /superbowl", spec.Servers)
	}
}

func TestConfig_Merge(t *testing.T) {
	cfg := &openapi.Config{Title: "Superbowl", Servers: []string{"/"}}
	cfg.Merge(&openapi.Config{Title: "Superbowl Staging"})

	if cfg.Title != "Superbowl Staging" || len(cfg.Servers) != 1 {
		t.Errorf("Merge() = %+v", cfg)
	}
}
