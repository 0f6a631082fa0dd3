package statuses

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound  = errors.New("status not found")
	ErrDuplicate = errors.New("status code already exists")
)

// MapHTTPStatus maps domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
