// Package storage keeps uploaded blobs, such as bowl and timber photographs,
// under stable keys. The filesystem implementation suits single-node
// deployments.
package storage

import (
	"context"
	"time"

	"github.com/JaimeStill/superbowl/pkg/lifecycle"
)

// Object is a stored blob with its modification time.
type Object struct {
	Key     string
	Data    []byte
	ModTime time.Time
}

// System stores and retrieves blobs by key.
type System interface {
	Start(lc *lifecycle.Coordinator) error
	Store(ctx context.Context, key string, data []byte) error
	Retrieve(ctx context.Context, key string) (*Object, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
