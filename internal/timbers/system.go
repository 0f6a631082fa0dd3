package timbers

import "context"

type System interface {
	// List returns every timber ordered by region code, then index.
	List(ctx context.Context) ([]Timber, error)
	ListByGeoRegion(ctx context.Context, geoRegionCode string) ([]Timber, error)
	Find(ctx context.Context, id int64) (*Timber, error)
	FindByCode(ctx context.Context, code string) (*Timber, error)
	// MaxIndex returns the highest index within a region, or 0.
	MaxIndex(ctx context.Context, geoRegionID int64) (int, error)
	Register(ctx context.Context, cmd RegisterCommand) (*Timber, error)
}
