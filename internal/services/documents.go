package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/LAXMAN-NALLA/document-analysis-api/internal/classifier"
	"github.com/LAXMAN-NALLA/document-analysis-api/internal/extractor"
	"github.com/LAXMAN-NALLA/document-analysis-api/internal/models"
	"github.com/LAXMAN-NALLA/document-analysis-api/internal/utils"
)

// AllowedExtensions is the upload surface: natively extracted formats
// plus the image types that rely entirely on OCR.
var AllowedExtensions = []string{".pdf", ".docx", ".csv", ".xlsx", ".png", ".jpg", ".jpeg", ".txt"}

// TextExtractor is the extraction side of the pipeline.
type TextExtractor interface {
	ExtractText(ctx context.Context, req extractor.Request) string
}

// DocumentAnalyzer is the analysis side of the pipeline.
type DocumentAnalyzer interface {
	Analyze(ctx context.Context, text string) *models.AnalysisRecord
}

type DocumentService interface {
	AnalyzeDocument(ctx context.Context, req *models.UploadRequest) (*models.AnalyzeResponse, error)
}

// documentService sequences extraction, analysis and the keyword
// classifier for one uploaded document.
type documentService struct {
	extractor TextExtractor
	analyzer  DocumentAnalyzer
	logger    *utils.Logger
}

func NewService(ext TextExtractor, an DocumentAnalyzer, logger *utils.Logger) DocumentService {
	return &documentService{
		extractor: ext,
		analyzer:  an,
		logger:    logger,
	}
}

// AnalyzeDocument is the full request flow. Extraction and analysis
// never fail; the only errors surfaced here are the user-visible ones:
// an unsupported file type and a document with no recoverable text.
func (s *documentService) AnalyzeDocument(ctx context.Context, req *models.UploadRequest) (*models.AnalyzeResponse, error) {
	ext := strings.ToLower(filepath.Ext(req.Filename))
	if !isAllowedExtension(ext) {
		s.logger.Warn("unsupported file type", "filename", req.Filename, "ext", ext)
		return nil, utils.NewBadRequestError(fmt.Sprintf(
			"Unsupported file type: %s. Allowed types: %s", ext, strings.Join(AllowedExtensions, ", ")))
	}

	extractedText := s.extractor.ExtractText(ctx, extractor.Request{
		Filename: req.Filename,
		Data:     req.File,
	})
	if strings.TrimSpace(extractedText) == "" {
		s.logger.Warn("no text could be extracted", "filename", req.Filename)
		return nil, utils.NewUnprocessableError("Failed to extract text from document.")
	}

	record := s.analyzer.Analyze(ctx, extractedText)

	// A generic type from the model is replaced by the deterministic
	// content-based classification.
	if classifier.IsGenericType(record.DocumentType) {
		record.DocumentType = classifier.Classify(extractedText)
	}

	s.logger.Info("analysis successful",
		"filename", req.Filename,
		"document_type", record.DocumentType,
		"degraded", record.Error != "")

	return &models.AnalyzeResponse{
		Filename:     req.Filename,
		DocumentType: record.DocumentType,
		Analysis:     record,
	}, nil
}

func isAllowedExtension(ext string) bool {
	for _, allowed := range AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
