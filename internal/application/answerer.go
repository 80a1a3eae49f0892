package application

import "context"

// Answerer sends the screen context and the spoken question to a remote model
// and returns its answer.
type Answerer interface {
	Answer(ctx context.Context, screenText, question string) (string, error)
}
