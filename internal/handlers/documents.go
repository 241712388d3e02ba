package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/LAXMAN-NALLA/document-analysis-api/internal/models"
	"github.com/LAXMAN-NALLA/document-analysis-api/internal/services"
	"github.com/LAXMAN-NALLA/document-analysis-api/internal/utils"
)

type DocumentHandler struct {
	service     services.DocumentService
	logger      *utils.Logger
	maxFileSize int64
}

func NewDocumentHandler(service services.DocumentService, maxFileSize int64, logger *utils.Logger) *DocumentHandler {
	return &DocumentHandler{
		service:     service,
		logger:      logger,
		maxFileSize: maxFileSize,
	}
}

// AnalyzeDocument accepts a multipart upload under the "file" field,
// runs the extraction/analysis pipeline and returns the combined
// result. The document is held in memory for the duration of the
// request and discarded with it.
func (h *DocumentHandler) AnalyzeDocument(w http.ResponseWriter, r *http.Request) {
	// Reject oversized requests early, before reading the body.
	if r.ContentLength > h.maxFileSize {
		h.respondError(w, utils.NewBadRequestError("File size exceeds the upload limit"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)

	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, utils.NewBadRequestError("File size exceeds the upload limit"))
			return
		}
		h.respondError(w, utils.NewBadRequestError("Invalid form data"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.respondError(w, utils.NewBadRequestError("No file provided"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxFileSize+1))
	if err != nil {
		h.respondError(w, utils.NewInternalError("Failed to read file"))
		return
	}
	if int64(len(data)) > h.maxFileSize {
		h.respondError(w, utils.NewBadRequestError("File size exceeds the upload limit"))
		return
	}
	if len(data) == 0 {
		h.respondError(w, utils.NewBadRequestError("Uploaded file is empty"))
		return
	}

	h.logger.Info("analyze request",
		"filename", header.Filename,
		"size", len(data))

	resp, err := h.service.AnalyzeDocument(r.Context(), &models.UploadRequest{
		File:     data,
		Filename: header.Filename,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}

func (h *DocumentHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode JSON response", "error", err)
	}
}

func (h *DocumentHandler) respondError(w http.ResponseWriter, err error) {
	var status int
	var message string

	switch e := err.(type) {
	case *utils.AppError:
		status = e.StatusCode
		message = e.Message
	default:
		status = http.StatusInternalServerError
		message = "Internal server error"
	}

	h.logger.Error("Request error", "status", status, "error", message)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
