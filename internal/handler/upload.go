package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/rec-registration/internal/domain"
	"github.com/pkordes/rec-registration/internal/upload"
)

// multipartMemory is how much of a multipart form is held in memory before
// spilling to temporary files.
const multipartMemory = 8 << 20

// UploadImage handles POST /upload.
// Expects a multipart form with the file in the "image" field.
func (s *Server) UploadImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	name := upload.NewName(header.Filename)
	if err := s.images.Save(r.Context(), name, file, header.Size, header.Header.Get("Content-Type")); err != nil {
		s.log.ErrorContext(r.Context(), "save upload failed", "filename", header.Filename, "error", err)
		writeError(w, http.StatusInternalServerError, rootMessage(err))
		return
	}

	s.log.InfoContext(r.Context(), "image uploaded", "name", name, "size", header.Size)
	writeJSON(w, http.StatusOK, map[string]string{"imageUrl": upload.URL(name)})
}

// GetImage handles GET and HEAD /uploads/{filename}.
// Unknown names get the same 404 as an unknown route.
func (s *Server) GetImage(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "filename")
	f, err := s.images.Open(r.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			routeNotFound(w, r)
			return
		}
		s.log.ErrorContext(r.Context(), "open upload failed", "name", name, "error", err)
		writeError(w, http.StatusInternalServerError, rootMessage(err))
		return
	}
	defer f.Close()

	http.ServeContent(w, r, name, f.ModTime, f)
}
