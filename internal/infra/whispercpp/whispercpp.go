// Package whispercpp invokes a local whisper.cpp executable for speech
// recognition.
package whispercpp

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"ai-vision/internal/application"
)

// Recognizer runs the whisper.cpp binary against a WAV file. The binary
// writes its transcript to a companion <audio>.txt file, which the Recognizer
// reads, trims, and deletes.
type Recognizer struct {
	binary  string
	model   string
	timeout time.Duration
	logger  *slog.Logger
}

func NewRecognizer(binary, model string, timeout time.Duration, logger *slog.Logger) *Recognizer {
	return &Recognizer{
		binary:  binary,
		model:   model,
		timeout: timeout,
		logger:  logger,
	}
}

func (r *Recognizer) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	// -nt drops timestamps, -otxt writes the transcript next to the input.
	cmd := exec.CommandContext(ctx, r.binary, "-m", r.model, "-f", audioPath, "-nt", "-otxt")

	r.logger.Info("running speech recognition", "binary", r.binary, "audio", audioPath)

	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("%w: %s: %v (output: %s)",
			application.ErrTranscription, r.binary, err, strings.TrimSpace(string(out)))
	}

	transcriptPath := audioPath + ".txt"
	defer os.Remove(transcriptPath)

	data, err := os.ReadFile(transcriptPath)
	if err != nil {
		return "", fmt.Errorf("%w: reading transcript %s: %v",
			application.ErrTranscription, transcriptPath, err)
	}

	return strings.TrimSpace(string(data)), nil
}
