package subusers

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound  = errors.New("subuser not found")
	ErrDuplicate = errors.New("subuser id already exists")
	// ErrPasswordRequired reports a setup without SETUP_PASSWORD.
	ErrPasswordRequired = errors.New("setup password not configured")
)

func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrPasswordRequired):
		return http.StatusPreconditionFailed
	default:
		return http.StatusInternalServerError
	}
}
