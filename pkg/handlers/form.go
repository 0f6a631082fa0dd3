package handlers

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"

	"github.com/JaimeStill/superbowl/pkg/decode"
)

// DecodeForm reads a url-encoded, multipart or JSON body into T. Only the
// first value of each url-encoded key is used. Bodies larger than maxBytes
// are rejected.
func DecodeForm[T any](w http.ResponseWriter, r *http.Request, maxBytes int64) (T, error) {
	var form T

	if maxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/json":
		if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
			return form, fmt.Errorf("decode json form: %w", err)
		}
		return form, nil

	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxBytes); err != nil {
			return form, fmt.Errorf("parse multipart form: %w", err)
		}

	default:
		if err := r.ParseForm(); err != nil {
			return form, fmt.Errorf("parse form: %w", err)
		}
	}

	return decode.FromValues[T](r.Form)
}
