//go:build !tesseract
// +build !tesseract

// Package ocr extracts plain text from screenshot images.
package ocr

import (
	"context"
	"fmt"
	"log/slog"
)

// TesseractExtractor stub when Tesseract is not available. Absence of OCR
// means absence of screen text, which the pipeline already treats as valid,
// so callers see the error once and continue with empty context.
type TesseractExtractor struct {
	logger *slog.Logger
}

func NewTesseractExtractor(_ []string, logger *slog.Logger) *TesseractExtractor {
	return &TesseractExtractor{logger: logger}
}

func (t *TesseractExtractor) ExtractText(_ context.Context, _ string) (string, error) {
	return "", fmt.Errorf("ocr not available: rebuild with -tags tesseract")
}
