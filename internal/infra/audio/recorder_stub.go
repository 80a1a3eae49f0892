//go:build !portaudio
// +build !portaudio

package audio

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ai-vision/internal/application"
)

// MicrophoneRecorder stub when portaudio is not available.
type MicrophoneRecorder struct {
	logger *slog.Logger
}

func NewMicrophoneRecorder(_ time.Duration, _ int, logger *slog.Logger) *MicrophoneRecorder {
	return &MicrophoneRecorder{logger: logger}
}

func (m *MicrophoneRecorder) Record(_ context.Context, _ string) error {
	return fmt.Errorf("%w: rebuild with -tags portaudio", application.ErrDevice)
}
