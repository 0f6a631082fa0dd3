package bowls

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/superbowl/pkg/storage"
)

var (
	ErrNotFound           = errors.New("bowl not found")
	ErrModNotFound        = errors.New("bowl modification not found")
	ErrModStepNotFound    = errors.New("bowl modification step not found")
	ErrDuplicate          = errors.New("bowl ordinal already exists")
	ErrVersionConflict    = errors.New("bowl was changed by another request")
	ErrInvalidReference   = errors.New("bowl references an unknown record")
	ErrInvalidMeasurement = errors.New("maximum wall thickness is below minimum")
	ErrIncompleteSale     = errors.New("a sale needs a sales price and date")
	ErrModMismatch        = errors.New("modification belongs to another bowl")
	ErrInvalidID          = errors.New("missing or malformed id parameter")
	ErrInvalidImage       = errors.New("missing image or unsupported image type")
	ErrImageTooLarge      = errors.New("image exceeds the upload limit")
)

func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidID),
		errors.Is(err, ErrInvalidImage):
		return http.StatusBadRequest
	case errors.Is(err, ErrImageTooLarge),
		errors.Is(err, storage.ErrTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrNotFound),
		errors.Is(err, ErrModNotFound),
		errors.Is(err, ErrModStepNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate),
		errors.Is(err, ErrVersionConflict):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidReference),
		errors.Is(err, ErrInvalidMeasurement),
		errors.Is(err, ErrIncompleteSale),
		errors.Is(err, ErrModMismatch):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
