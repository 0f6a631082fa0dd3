package statuses

import "context"

// System defines the status service.
type System interface {
	// List returns every status ordered by index.
	List(ctx context.Context) ([]Status, error)
	Find(ctx context.Context, id int64) (*Status, error)
	FindByCode(ctx context.Context, code string) (*Status, error)
	// MaxIndex returns the highest index in use, or 0 when empty.
	MaxIndex(ctx context.Context) (int, error)
	Register(ctx context.Context, cmd RegisterCommand) (*Status, error)
}
