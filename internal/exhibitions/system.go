package exhibitions

import "context"

type System interface {
	List(ctx context.Context) ([]Exhibition, error)
	Find(ctx context.Context, id int64) (*Exhibition, error)
	MaxIndex(ctx context.Context) (int, error)
	Register(ctx context.Context, cmd RegisterCommand) (*Exhibition, error)
}
