package georegions

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound  = errors.New("geo region not found")
	ErrDuplicate = errors.New("geo region code already exists")
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
