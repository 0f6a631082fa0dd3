package georegions

import "context"

type System interface {
	// List returns every region ordered by code.
	List(ctx context.Context) ([]GeoRegion, error)
	Find(ctx context.Context, id int64) (*GeoRegion, error)
	FindByCode(ctx context.Context, code string) (*GeoRegion, error)
}
