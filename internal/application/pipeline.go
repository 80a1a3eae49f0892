package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Pipeline runs one voice-question-to-answer cycle: record, transcribe,
// capture the screen, query the model, notify. Stages run strictly in order
// and the run holds no state beyond the values handed from one stage to the
// next.
type Pipeline struct {
	recorder  Recorder
	stt       SpeechRecognizer
	capturer  Capturer
	ocr       TextExtractor
	assistant Answerer
	notifier  Notifier
	artifacts ArtifactTracker
	logger    *slog.Logger

	state State
}

func NewPipeline(
	recorder Recorder,
	stt SpeechRecognizer,
	capturer Capturer,
	ocr TextExtractor,
	assistant Answerer,
	notifier Notifier,
	artifacts ArtifactTracker,
	logger *slog.Logger,
) *Pipeline {
	return &Pipeline{
		recorder:  recorder,
		stt:       stt,
		capturer:  capturer,
		ocr:       ocr,
		assistant: assistant,
		notifier:  notifier,
		artifacts: artifacts,
		logger:    logger,
		state:     StateIdle,
	}
}

// State returns the current run state.
func (p *Pipeline) State() State {
	return p.state
}

// Run executes the five stages once. It returns nil when the run reaches Done
// or ends early because no speech was recognized; it returns the stage error
// when the run aborts. Temporary files are removed before Run returns on
// every path.
func (p *Pipeline) Run(ctx context.Context) error {
	defer p.artifacts.CleanupAll()

	// Stage 1: record the question.
	p.advance(StateRecording)
	p.notify(ctx, "Listening...", "Please ask your question now.")

	audioPath, err := p.artifacts.Create("aivision-*.wav")
	if err != nil {
		return p.abort(ctx, fmt.Errorf("allocating audio file: %w", err))
	}

	p.logger.Info("recording audio", "path", audioPath)
	if err := p.recorder.Record(ctx, audioPath); err != nil {
		return p.abort(ctx, fmt.Errorf("recording audio: %w", err))
	}

	// Stage 2: transcribe it locally.
	p.advance(StateTranscribing)
	p.notify(ctx, "Thinking...", "Transcribing your question...")

	// The recognizer writes and removes a transcript next to the audio file.
	// Track it anyway so it cannot survive a crash between write and read.
	p.artifacts.Track(audioPath + ".txt")

	question, err := p.stt.Transcribe(ctx, audioPath)
	if err != nil {
		return p.abort(ctx, fmt.Errorf("transcribing audio: %w", err))
	}

	question = strings.TrimSpace(question)
	if question == "" {
		p.advance(StateNoSpeechDetected)
		p.logger.Info("no speech recognized")
		p.notify(ctx, "Error", "Could not understand audio. Please try again.")
		return nil
	}
	p.logger.Info("transcribed question", "text", question)

	// Stage 3: capture the screen and extract its text.
	p.advance(StateCapturing)

	screenText, err := p.captureScreenText(ctx)
	if err != nil {
		return p.abort(ctx, err)
	}

	// Stage 4: ask the model. Failures here become the answer itself so the
	// final stage always has something to show.
	p.advance(StateQuerying)
	p.notify(ctx, "Consulting AI...", "Getting an answer based on your screen.")

	answer, err := p.assistant.Answer(ctx, screenText, question)
	if err != nil {
		p.logger.Error("querying assistant", "error", err)
		answer = fmt.Sprintf("An error occurred while contacting the AI: %v", err)
	}

	// Stage 5: show the answer.
	p.advance(StateNotifying)
	p.logger.Info("answer ready", "answer", answer)
	p.notify(ctx, "Here's your answer!", answer)

	p.advance(StateDone)
	return nil
}

// captureScreenText grabs a screenshot into a temporary image and runs OCR
// over it. The image is deleted before returning regardless of OCR outcome.
// A failed or empty OCR pass yields empty text; only the screenshot itself
// can fail the stage.
func (p *Pipeline) captureScreenText(ctx context.Context) (string, error) {
	imagePath, err := p.artifacts.Create("aivision-*.png")
	if err != nil {
		return "", fmt.Errorf("allocating screenshot file: %w", err)
	}
	defer func() {
		if err := p.artifacts.Remove(imagePath); err != nil {
			p.logger.Warn("removing screenshot", "path", imagePath, "error", err)
		}
	}()

	p.logger.Info("capturing screen", "path", imagePath)
	if err := p.capturer.Capture(ctx, imagePath); err != nil {
		return "", fmt.Errorf("capturing screen: %w", err)
	}

	text, err := p.ocr.ExtractText(ctx, imagePath)
	if err != nil {
		p.logger.Warn("ocr failed, continuing without screen text", "error", err)
		return "", nil
	}

	p.logger.Info("ocr complete", "chars", len(text))
	return text, nil
}

func (p *Pipeline) abort(ctx context.Context, err error) error {
	p.advance(StateAborted)
	p.logger.Error("run aborted", "error", err)
	p.notify(ctx, "Error", err.Error())
	return err
}

// advance moves the run to the next state. Transitions are fixed by the stage
// order, so a disallowed one is a bug in the pipeline itself.
func (p *Pipeline) advance(to State) {
	if err := transition(p.state, to); err != nil {
		panic(err)
	}
	p.logger.Debug("state change", "from", p.state, "to", to)
	p.state = to
}

func (p *Pipeline) notify(ctx context.Context, subtitle, message string) {
	if err := p.notifier.Notify(ctx, subtitle, message); err != nil {
		p.logger.Error("sending notification", "subtitle", subtitle, "error", err)
	}
}
