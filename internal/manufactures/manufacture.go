// Package manufactures tracks the production years bowls are grouped by.
// It has no pages of its own; the bowl forms read and extend it.
package manufactures

// DefaultID preselects a production year on the bowl form.
const DefaultID int64 = 8

type Manufacture struct {
	ID      int64 `json:"id"`
	Version int   `json:"version"`
	Index   int   `json:"index"`
	Year    int   `json:"year"`
}
