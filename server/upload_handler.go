package server

import (
	"fmt"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"

	"echofm/logger"
	"echofm/storage"

	"github.com/google/uuid"
)

var nonAlphaNumeric = regexp.MustCompile(`[^a-zA-Z0-9_\-\.]`)

// UploadHandler stores one uploaded file (cover art or media) in object
// storage and returns the URL to feed into coverArtUrl/mediaUrl on track
// creation. Requires MinIO to be configured.
func (h *APIHandler) UploadHandler(w http.ResponseWriter, r *http.Request) {
	if !storage.Enabled() {
		writeJSON(w, http.StatusServiceUnavailable, apiResponse{Success: false, Error: "object storage not configured"})
		return
	}

	if err := r.ParseMultipartForm(64 << 20); err != nil { // 64MB max memory
		bad(w, fmt.Sprintf("failed to parse multipart form: %v", err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		bad(w, "missing 'file' in form")
		return
	}
	defer file.Close()

	kind := r.FormValue("kind")
	if kind != "covers" && kind != "media" {
		kind = "media"
	}

	// Object names get a uuid prefix so re-uploads of the same filename
	// never clobber each other.
	safeName := nonAlphaNumeric.ReplaceAllString(filepath.Base(header.Filename), "_")
	objectName := fmt.Sprintf("%s/%s-%s", kind, uuid.NewString(), safeName)

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := storage.UploadObject(r.Context(), objectName, file, header.Size, contentType)
	if err != nil {
		logger.Error("upload failed",
			logger.String("object", objectName),
			logger.ErrorField(err),
		)
		writeJSON(w, http.StatusInternalServerError, apiResponse{Success: false, Error: "upload failed"})
		return
	}

	logger.Info("object uploaded",
		logger.String("object", objectName),
		logger.String("contentType", contentType),
	)
	ok(w, map[string]string{"url": url, "kind": strings.TrimSuffix(kind, "s")})
}
