package exhibitions

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound      = errors.New("exhibition not found")
	ErrDuplicate     = errors.New("exhibition already exists")
	ErrInvalidPeriod = errors.New("exhibition ends before it starts")
)

func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidPeriod):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
