package customers

import "context"

type System interface {
	List(ctx context.Context) ([]Customer, error)
	Find(ctx context.Context, id int64) (*Customer, error)
	MaxIndex(ctx context.Context) (int, error)
	Register(ctx context.Context, cmd RegisterCommand) (*Customer, error)
}
