package application

import "fmt"

// State names a phase of a single pipeline run.
type State string

const (
	StateIdle             State = "idle"
	StateRecording        State = "recording"
	StateTranscribing     State = "transcribing"
	StateCapturing        State = "capturing"
	StateQuerying         State = "querying"
	StateNotifying        State = "notifying"
	StateDone             State = "done"
	StateNoSpeechDetected State = "no_speech_detected"
	StateAborted          State = "aborted"
)

// IsTerminal reports whether the state ends the run.
func IsTerminal(s State) bool {
	switch s {
	case StateDone, StateNoSpeechDetected, StateAborted:
		return true
	default:
		return false
	}
}

// transition validates a state change. Querying has no edge to Aborted:
// remote-inference failures are absorbed into the answer, so that stage can
// never end the run early.
func transition(from, to State) error {
	if !isAllowedTransition(from, to) {
		return fmt.Errorf("disallowed transition: %s -> %s", from, to)
	}
	return nil
}

func isAllowedTransition(from, to State) bool {
	switch from {
	case StateIdle:
		return to == StateRecording
	case StateRecording:
		return to == StateTranscribing || to == StateAborted
	case StateTranscribing:
		return to == StateCapturing || to == StateNoSpeechDetected || to == StateAborted
	case StateCapturing:
		return to == StateQuerying || to == StateAborted
	case StateQuerying:
		return to == StateNotifying
	case StateNotifying:
		return to == StateDone
	default:
		return false
	}
}
