package screen_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"ai-vision/internal/application"
	"ai-vision/internal/infra/screen"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeBinary writes a shell script standing in for the screenshot
// executable. The script sees the arguments [-C path].
func fakeBinary(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake executables need a POSIX shell")
	}

	path := filepath.Join(t.TempDir(), "screencapture")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0755); err != nil {
		t.Fatalf("writing fake binary: %v", err)
	}
	return path
}

func TestCommandCapturer_WritesImage(t *testing.T) {
	bin := fakeBinary(t, `printf 'PNG' > "$2"`)
	out := filepath.Join(t.TempDir(), "shot.png")

	c := screen.NewCommandCapturer(bin, 5*time.Second, testLogger())

	if err := c.Capture(context.Background(), out); err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("expected screenshot at %s: %v", out, err)
	}
}

func TestCommandCapturer_ProcessFailure(t *testing.T) {
	bin := fakeBinary(t, `echo "no display" >&2; exit 1`)

	c := screen.NewCommandCapturer(bin, 5*time.Second, testLogger())

	err := c.Capture(context.Background(), filepath.Join(t.TempDir(), "shot.png"))
	if !errors.Is(err, application.ErrCapture) {
		t.Fatalf("error: got %v, want ErrCapture", err)
	}
}

func TestCommandCapturer_Timeout(t *testing.T) {
	bin := fakeBinary(t, `sleep 5`)

	c := screen.NewCommandCapturer(bin, 100*time.Millisecond, testLogger())

	start := time.Now()
	err := c.Capture(context.Background(), filepath.Join(t.TempDir(), "shot.png"))
	if !errors.Is(err, application.ErrCapture) {
		t.Fatalf("error: got %v, want ErrCapture", err)
	}
	if time.Since(start) > 2*time.Second {
		t.Errorf("timeout did not bound the process")
	}
}
