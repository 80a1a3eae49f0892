//go:build portaudio
// +build portaudio

package audio

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gordonklaus/portaudio"

	"ai-vision/internal/application"
)

// MicrophoneRecorder records a fixed-duration mono 16-bit clip from the
// default input device.
type MicrophoneRecorder struct {
	duration   time.Duration
	sampleRate int
	logger     *slog.Logger
}

func NewMicrophoneRecorder(duration time.Duration, sampleRate int, logger *slog.Logger) *MicrophoneRecorder {
	return &MicrophoneRecorder{
		duration:   duration,
		sampleRate: sampleRate,
		logger:     logger,
	}
}

func (m *MicrophoneRecorder) Record(ctx context.Context, path string) error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("%w: initializing portaudio: %v", application.ErrDevice, err)
	}
	defer portaudio.Terminate()

	framesPerBuffer := 1024
	in := make([]int16, framesPerBuffer)

	stream, err := portaudio.OpenDefaultStream(1, 0, float64(m.sampleRate), framesPerBuffer, in)
	if err != nil {
		return fmt.Errorf("%w: opening stream: %v", application.ErrDevice, err)
	}
	defer func() {
		stream.Stop()
		stream.Close()
	}()

	if err := stream.Start(); err != nil {
		return fmt.Errorf("%w: starting stream: %v", application.ErrDevice, err)
	}

	want := int(m.duration.Seconds() * float64(m.sampleRate))
	samples := make([]int16, 0, want)

	m.logger.Info("recording", "duration", m.duration, "sampleRate", m.sampleRate)

	for len(samples) < want {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := stream.Read(); err != nil {
			return fmt.Errorf("reading from stream: %w", err)
		}
		samples = append(samples, in...)
	}
	samples = samples[:want]

	return WriteWAV(path, samples, m.sampleRate)
}
