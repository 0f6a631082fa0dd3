package manufactures

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound  = errors.New("manufacture not found")
	ErrDuplicate = errors.New("manufacture year already exists")
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
