package http

import (
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/cmlabs-hris/siteledger-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/siteledger-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/siteledger-backend-go/internal/pkg/storage"
	"github.com/go-chi/chi/v5"
)

// ArchiveHandler serves archived exports back to the company that made them.
type ArchiveHandler interface {
	Download(w http.ResponseWriter, r *http.Request)
}

type archiveHandlerImpl struct {
	fileStorage storage.FileStorage
}

func NewArchiveHandler(fileStorage storage.FileStorage) ArchiveHandler {
	return &archiveHandlerImpl{fileStorage: fileStorage}
}

func (h *archiveHandlerImpl) Download(w http.ResponseWriter, r *http.Request) {
	companyID, err := jwt.CompanyIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	key := path.Clean(chi.URLParam(r, "*"))
	if !strings.HasPrefix(key, "payroll/"+companyID+"/") {
		response.NotFound(w, "Export not found")
		return
	}

	exists, err := h.fileStorage.Exists(r.Context(), key)
	if err != nil || !exists {
		response.NotFound(w, "Export not found")
		return
	}

	file, err := h.fileStorage.Open(r.Context(), key)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	defer file.Close()

	contentType := mime.TypeByExtension(path.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", "attachment; filename=\""+path.Base(key)+"\"")
	if _, err := io.Copy(w, file); err != nil {
		slog.Warn("Failed to stream archived export", "key", key, "error", err)
	}
}
