package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/pkhlegal/legalbrain/internal/llm"
	"github.com/pkhlegal/legalbrain/internal/pipeline"
)

func (s *Server) handleAnalyzePack(w http.ResponseWriter, r *http.Request) {
	// Limit total request size; extra 1MB for form overhead.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = typeFromExtension(header.Filename)
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	analysis, err := s.analyzer.AnalyzePack(r.Context(), data, contentType)
	if err != nil {
		s.writeAnalyzeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(analysis)
}

// writeAnalyzeError maps pipeline failures onto HTTP statuses. Validation
// errors carry their user-facing message; anything else surfaces as a
// generic server failure.
func (s *Server) writeAnalyzeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, pipeline.ErrUnsupportedMediaType):
		jsonError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, pipeline.ErrNoReadablePages),
		errors.Is(err, pipeline.ErrNoReadableText):
		jsonError(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, llm.ErrNoProviderConfigured):
		s.log.Error("analysis failed", "error", err)
		jsonError(w, "analysis service is not configured", http.StatusInternalServerError)
	default:
		s.log.Error("analysis failed", "error", err)
		jsonError(w, "analysis failed", http.StatusInternalServerError)
	}
}

func typeFromExtension(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "application/pdf"
	case ".zip":
		return "application/zip"
	default:
		return ""
	}
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
