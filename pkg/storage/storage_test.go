package storage_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/JaimeStill/superbowl/pkg/lifecycle"
	"github.com/JaimeStill/superbowl/pkg/storage"
)

func newStore(t *testing.T, size string) storage.System {
	t.Helper()

	cfg := &storage.Config{BasePath: t.TempDir(), MaxUploadSize: size}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	store, err := storage.New(cfg, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := store.Start(lifecycle.New()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	return store
}

func TestConfig_Finalize(t *testing.T) {
	t.Setenv("TEST_UPLOAD_SIZE", "2KB")

	cfg := &storage.Config{}
	if err := cfg.Finalize(&storage.Env{MaxUploadSize: "TEST_UPLOAD_SIZE"}); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	if cfg.BasePath != ".data/uploads" {
		t.Errorf("BasePath = %q, want .data/uploads", cfg.BasePath)
	}
	if cfg.Limit() != 2000 {
		t.Errorf("Limit() = %d, want 2000", cfg.Limit())
	}

	bad := &storage.Config{MaxUploadSize: "lots"}
	if err := bad.Finalize(nil); err == nil {
		t.Error("Finalize() error = nil, want error")
	}
}

func TestStoreRetrieveDelete(t *testing.T) {
	store := newStore(t, "1KB")
	ctx := context.Background()

	if err := store.Store(ctx, "bowls/107.png", []byte("png")); err != nil {
		t.Fatalf("Store() error = %v", err)
	}

	obj, err := store.Retrieve(ctx, "bowls/107.png")
	if err != nil {
		t.Fatalf("Retrieve() error = %v", err)
	}
	if string(obj.Data) != "png" {
		t.Errorf("Data = %q, want png", obj.Data)
	}

	if err := store.Delete(ctx, "bowls/107.png"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if ok, _ := store.Exists(ctx, "bowls/107.png"); ok {
		t.Error("Exists() = true after Delete")
	}
	if _, err := store.Retrieve(ctx, "bowls/107.png"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Retrieve() error = %v, want ErrNotFound", err)
	}
}

func TestStore_TooLarge(t *testing.T) {
	store := newStore(t, "1KB")

	err := store.Store(context.Background(), "big.png", make([]byte, 1001))
	if !errors.Is(err, storage.ErrTooLarge) {
		t.Errorf("Store() error = %v, want ErrTooLarge", err)
	}
}

func TestStore_InvalidKey(t *testing.T) {
	store := newStore(t, "1KB")

	for _, key := range []string{"", "../escape.png", "/etc/passwd"} {
		if err := store.Store(context.Background(), key, []byte("x")); !errors.Is(err, storage.ErrInvalidKey) {
			t.Errorf("Store(%q) error = %v, want ErrInvalidKey", key, err)
		}
	}
}
