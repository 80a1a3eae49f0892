//go:build tesseract
// +build tesseract

// Package ocr extracts plain text from screenshot images.
package ocr

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/otiai10/gosseract/v2"
)

// TesseractExtractor runs the image through a Tesseract client. Layout is
// discarded; only the recognized text comes back.
type TesseractExtractor struct {
	languages []string
	logger    *slog.Logger
}

func NewTesseractExtractor(languages []string, logger *slog.Logger) *TesseractExtractor {
	return &TesseractExtractor{
		languages: languages,
		logger:    logger,
	}
}

func (t *TesseractExtractor) ExtractText(ctx context.Context, imagePath string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if len(t.languages) > 0 {
		if err := client.SetLanguage(t.languages...); err != nil {
			return "", fmt.Errorf("setting ocr languages: %w", err)
		}
	}
	if err := client.SetImage(imagePath); err != nil {
		return "", fmt.Errorf("loading image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("running ocr: %w", err)
	}

	t.logger.Debug("ocr finished", "image", imagePath, "chars", len(text))
	return text, nil
}
