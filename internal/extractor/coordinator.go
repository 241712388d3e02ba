// Package extractor converts uploaded documents into plain text. Each
// supported format has a native extractor; the Coordinator chains them
// with an OCR fallback for scans and images.
package extractor

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/LAXMAN-NALLA/document-analysis-api/internal/ocr"
	"github.com/LAXMAN-NALLA/document-analysis-api/internal/utils"
	"github.com/LAXMAN-NALLA/document-analysis-api/internal/worker"
)

// Request is one document to extract text from.
type Request struct {
	Filename string
	Data     []byte
}

// Coordinator selects a native extractor by file extension and falls
// back to OCR when native extraction produces nothing. It never
// returns an error: every failure ends in an empty string, and the
// orchestrator decides what an empty result means.
type Coordinator struct {
	ocr    ocr.Client
	pool   *worker.Pool
	logger *utils.Logger
}

func NewCoordinator(ocrClient ocr.Client, pool *worker.Pool, logger *utils.Logger) *Coordinator {
	return &Coordinator{
		ocr:    ocrClient,
		pool:   pool,
		logger: logger,
	}
}

// nativeExtractor maps a lowercase extension to its format extractor.
// Images and unknown extensions have no native path and go straight
// to OCR.
func nativeExtractor(ext string) (func([]byte) (string, error), bool) {
	switch ext {
	case ".pdf":
		return ExtractPDF, true
	case ".docx":
		return ExtractDOCX, true
	case ".csv":
		return ExtractCSV, true
	case ".xlsx":
		return ExtractXLSX, true
	case ".txt":
		return ExtractTXT, true
	}
	return nil, false
}

// ExtractText runs the extraction chain for one document. Native
// extraction and OCR are blocking work and run on the worker pool so
// concurrent requests keep being served.
//
// The chain: non-whitespace native text wins immediately and OCR is
// never called. An empty or failed native pass falls back to OCR over
// the raw bytes, at most once. An unavailable or failing OCR backend
// ends the chain with an empty string.
func (c *Coordinator) ExtractText(ctx context.Context, req Request) string {
	ext := strings.ToLower(filepath.Ext(req.Filename))

	if extract, ok := nativeExtractor(ext); ok {
		text, err := c.pool.Run(ctx, func() (string, error) {
			return extract(req.Data)
		})
		if err != nil {
			c.logger.Error("native extraction failed, trying OCR fallback",
				"filename", req.Filename, "ext", ext, "error", err)
		}

		if trimmed := strings.TrimSpace(text); trimmed != "" {
			c.logger.Info("extracted text with native library",
				"filename", req.Filename, "ext", ext, "text_length", len(trimmed))
			return trimmed
		}
	}

	if !c.ocr.Available() {
		c.logger.Warn("OCR not available, cannot process document",
			"filename", req.Filename, "ext", ext)
		return ""
	}

	c.logger.Info("falling back to OCR", "filename", req.Filename, "ext", ext)

	text, err := c.pool.Run(ctx, func() (string, error) {
		return c.ocr.Recognize(ctx, req.Data)
	})
	if err != nil {
		c.logger.Error("OCR fallback failed", "filename", req.Filename, "error", err)
		return ""
	}

	return strings.TrimSpace(text)
}
