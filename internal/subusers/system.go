package subusers

import "context"

// System is the setup collaborator.
type System interface {
	// Setup creates the configured account when no subuser exists and
	// reports whether it did. Running it again is a no-op.
	Setup(ctx context.Context) (bool, error)
	Count(ctx context.Context) (int, error)
	List(ctx context.Context) ([]Subuser, error)
}
