package application

import "errors"

// Fatal stage failures. Each aborts the run; cleanup still removes every
// temporary file created up to that point.
var (
	// ErrDevice indicates the default audio input device could not be opened.
	ErrDevice = errors.New("audio input device unavailable")

	// ErrTranscription indicates the speech-recognition process failed or did
	// not produce its companion transcript file.
	ErrTranscription = errors.New("transcription failed")

	// ErrCapture indicates the screenshot facility failed.
	ErrCapture = errors.New("screen capture failed")
)
