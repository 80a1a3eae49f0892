package application

import "context"

// Capturer grabs the primary display into the image file at path.
type Capturer interface {
	Capture(ctx context.Context, path string) error
}

// TextExtractor runs OCR over the image file at path and returns the plain
// text it contains, with no layout preserved.
type TextExtractor interface {
	ExtractText(ctx context.Context, imagePath string) (string, error)
}
