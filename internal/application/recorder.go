package application

import "context"

// Recorder captures a fixed-duration clip from the default input device and
// writes it to path as an uncompressed WAV file.
type Recorder interface {
	Record(ctx context.Context, path string) error
}

type AudioFormat struct {
	SampleRate int
	Channels   int
	BitDepth   int
}

func DefaultAudioFormat() AudioFormat {
	return AudioFormat{
		SampleRate: 16000,
		Channels:   1,
		BitDepth:   16,
	}
}
