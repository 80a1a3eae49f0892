package screen

import (
	"context"
	"fmt"
	"image/png"
	"log/slog"
	"os"

	"github.com/kbinani/screenshot"

	"ai-vision/internal/application"
)

// NativeCapturer captures the primary display in-process and encodes it to
// path as PNG. Used where no screenshot executable is available.
type NativeCapturer struct {
	logger *slog.Logger
}

func NewNativeCapturer(logger *slog.Logger) *NativeCapturer {
	return &NativeCapturer{logger: logger}
}

func (c *NativeCapturer) Capture(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if screenshot.NumActiveDisplays() == 0 {
		return fmt.Errorf("%w: no active displays", application.ErrCapture)
	}

	img, err := screenshot.CaptureDisplay(0)
	if err != nil {
		return fmt.Errorf("%w: %v", application.ErrCapture, err)
	}

	c.logger.Info("captured display", "path", path, "bounds", img.Bounds())

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: creating screenshot file: %v", application.ErrCapture, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("%w: encoding screenshot: %v", application.ErrCapture, err)
	}
	return nil
}
