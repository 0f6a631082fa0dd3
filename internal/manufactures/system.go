package manufactures

import "context"

type System interface {
	// List returns every manufacture ordered by year.
	List(ctx context.Context) ([]Manufacture, error)
	Find(ctx context.Context, id int64) (*Manufacture, error)
	FindByYear(ctx context.Context, year int) (*Manufacture, error)
	// Register adds a year, reusing the existing row when the year is known.
	Register(ctx context.Context, year int) (*Manufacture, error)
}
