package application

import "context"

// SpeechRecognizer turns a recorded WAV file into text. An empty string with a
// nil error means the engine recognized no speech; the pipeline treats that as
// a distinct outcome, not a failure.
type SpeechRecognizer interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}
