package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gen2brain/beeep"
)

// BeeepNotifier shows notifications through the cross-platform beeep library.
// The subtitle is folded into the title since beeep has no subtitle field.
type BeeepNotifier struct {
	appName string
	logger  *slog.Logger
}

func NewBeeepNotifier(appName string, logger *slog.Logger) *BeeepNotifier {
	return &BeeepNotifier{appName: appName, logger: logger}
}

func (n *BeeepNotifier) Notify(ctx context.Context, subtitle, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	title := n.appName
	if subtitle != "" {
		title = fmt.Sprintf("%s - %s", n.appName, subtitle)
	}

	n.logger.Debug("showing notification", "subtitle", subtitle)

	if err := beeep.Notify(title, message, ""); err != nil {
		return fmt.Errorf("beeep: %w", err)
	}
	return nil
}
