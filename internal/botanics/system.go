package botanics

import "context"

type System interface {
	List(ctx context.Context) ([]BotanicSystem, error)
	Find(ctx context.Context, id int64) (*BotanicSystem, error)
	MaxOrdinal(ctx context.Context) (int, error)
	Register(ctx context.Context, cmd RegisterCommand) (*BotanicSystem, error)
}
