package bowls

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/JaimeStill/superbowl/pkg/handlers"
)

// ImagePrefix is the storage key prefix of bowl photographs. Assets under
// /assets/images/ fall back to the same keys.
const ImagePrefix = "images/"

var imageTypes = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// imageFile is the stored name of the photograph of the bowl with ordinal.
func imageFile(ordinal int, ext string) string {
	return fmt.Sprintf("bowl-%d%s", ordinal, strings.ToLower(ext))
}

// UploadImage stores the multipart "image" of the bowl named by bowlId and
// records its name. A previous photograph under another name is removed.
func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	if h.maxUpload > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	}
	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		handlers.RespondError(w, h.logger, http.StatusRequestEntityTooLarge, ErrImageTooLarge)
		return
	}

	id, err := idParam(r, "bowlId")
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidImage)
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !imageTypes[ext] {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("%w: %q", ErrInvalidImage, header.Filename))
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidImage)
		return
	}

	ctx := r.Context()
	b, err := h.sys.Find(ctx, id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	name := imageFile(b.Ordinal, ext)
	if err := h.images.Store(ctx, ImagePrefix+name, data); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	updated, err := h.sys.SetImage(ctx, id, name)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	if b.ImageName != "" && b.ImageName != name {
		h.removeImage(r, b.ImageName)
	}

	handlers.RespondJSON(w, http.StatusOK, updated)
}

func (h *Handler) removeImage(r *http.Request, name string) {
	key := ImagePrefix + name
	ok, err := h.images.Exists(r.Context(), key)
	if err != nil || !ok {
		return
	}
	if err := h.images.Delete(r.Context(), key); err != nil {
		h.logger.Warn("remove replaced image", "key", key, "error", err)
	}
}
