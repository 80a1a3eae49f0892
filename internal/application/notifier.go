package application

import "context"

// Notifier shows a native notification. Best-effort: the pipeline logs and
// drops notification errors, it never lets them alter control flow.
type Notifier interface {
	Notify(ctx context.Context, subtitle, message string) error
}

type NoopNotifier struct{}

func (n *NoopNotifier) Notify(_ context.Context, _, _ string) error {
	return nil
}
