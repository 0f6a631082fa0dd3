package customers

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound  = errors.New("customer not found")
	ErrDuplicate = errors.New("customer email already registered")
)

func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
