package bowls

import (
	"context"

	"github.com/JaimeStill/superbowl/pkg/pagination"
)

type System interface {
	// List returns every bowl ordered by ordinal.
	List(ctx context.Context) ([]Bowl, error)
	Portfolio(ctx context.Context, filter PortfolioFilter, page pagination.PageRequest) (*pagination.PageResult[Bowl], error)
	Find(ctx context.Context, id int64) (*Bowl, error)
	MaxIndex(ctx context.Context) (int, error)
	MaxOrdinal(ctx context.Context) (int, error)

	Register(ctx context.Context, cmd RegisterCommand) (*Bowl, error)
	Edit(ctx context.Context, cmd EditCommand) (*Bowl, error)
	UpdateSales(ctx context.Context, cmd SalesCommand) (*Bowl, error)
	// SetImage names the stored photograph of a bowl.
	SetImage(ctx context.Context, id int64, name string) (*Bowl, error)

	ListModSteps(ctx context.Context) ([]ModStep, error)
	FindModStep(ctx context.Context, id int64) (*ModStep, error)
	// ListMods returns the modifications of a bowl by date, each with its items.
	ListMods(ctx context.Context, bowlID int64) ([]Mod, error)
	FindMod(ctx context.Context, id int64) (*Mod, error)
	RegisterMod(ctx context.Context, cmd ModCommand) (*Mod, error)
	RegisterModItem(ctx context.Context, cmd ModItemCommand) (*ModItem, error)
}
