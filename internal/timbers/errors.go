package timbers

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound         = errors.New("timber not found")
	ErrDuplicate        = errors.New("timber code already exists")
	ErrInvalidReference = errors.New("unknown geo region or botanic system")
)

func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidReference):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
