package timberorigins

import "context"

type System interface {
	List(ctx context.Context) ([]TimberOrigin, error)
	ListByTimber(ctx context.Context, timberID int64) ([]TimberOrigin, error)
	Find(ctx context.Context, id int64) (*TimberOrigin, error)
	MaxIndex(ctx context.Context) (int, error)
	Register(ctx context.Context, cmd RegisterCommand) (*TimberOrigin, error)
}
