// Package screen captures the primary display to an image file, either via an
// external screenshot executable or in-process.
package screen

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"ai-vision/internal/application"
)

// CommandCapturer shells out to a screenshot executable that takes the output
// path as its argument, such as macOS screencapture.
type CommandCapturer struct {
	binary  string
	timeout time.Duration
	logger  *slog.Logger
}

func NewCommandCapturer(binary string, timeout time.Duration, logger *slog.Logger) *CommandCapturer {
	return &CommandCapturer{
		binary:  binary,
		timeout: timeout,
		logger:  logger,
	}
}

func (c *CommandCapturer) Capture(ctx context.Context, path string) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	// -C includes the cursor in the capture.
	cmd := exec.CommandContext(ctx, c.binary, "-C", path)

	c.logger.Info("capturing screen", "binary", c.binary, "path", path)

	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%w: %s: %v (output: %s)",
			application.ErrCapture, c.binary, err, strings.TrimSpace(string(out)))
	}
	return nil
}
