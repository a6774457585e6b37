package upload

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/HavenEstates/HE-Backend/internal/respond"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const maxFileSize = 10 << 20 // 10MB

// Handler stores uploaded images on local disk and hands back a public URL.
// The rest of the system only ever sees the returned URL.
type Handler struct {
	Dir     string
	BaseURL string
	Log     *logrus.Logger
}

func NewHandler(dir, baseURL string, log *logrus.Logger) (*Handler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Handler{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/"), Log: log}, nil
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Post("/", h.Store)
	return r
}

func (h *Handler) Store(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFileSize+4096)
	if err := r.ParseMultipartForm(maxFileSize); err != nil {
		respond.Error(w, http.StatusBadRequest, "No file uploaded")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	if !strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
		respond.Error(w, http.StatusBadRequest, "Only image files are allowed!")
		return
	}
	if header.Size > maxFileSize {
		respond.Error(w, http.StatusBadRequest, "File too large")
		return
	}

	filename := uuid.NewString() + strings.ToLower(filepath.Ext(header.Filename))
	dst, err := os.Create(filepath.Join(h.Dir, filename))
	if err != nil {
		h.Log.WithError(err).Error("upload: create file failed")
		respond.Error(w, http.StatusInternalServerError, "Error uploading file")
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		h.Log.WithError(err).Error("upload: write file failed")
		respond.Error(w, http.StatusInternalServerError, "Error uploading file")
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"imageUrl":     h.BaseURL + "/uploads/" + filename,
		"filename":     filename,
		"originalName": header.Filename,
		"size":         header.Size,
		"mimetype":     header.Header.Get("Content-Type"),
	})
}
