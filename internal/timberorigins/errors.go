package timberorigins

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound      = errors.New("timber origin not found")
	ErrDuplicate     = errors.New("timber origin already exists")
	ErrUnknownTimber = errors.New("unknown timber")
)

func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrUnknownTimber):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
