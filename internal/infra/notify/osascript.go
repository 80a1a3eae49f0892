// Package notify renders best-effort native notifications.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// OsascriptNotifier shows macOS notifications through osascript.
type OsascriptNotifier struct {
	appName string
	logger  *slog.Logger
}

func NewOsascriptNotifier(appName string, logger *slog.Logger) *OsascriptNotifier {
	return &OsascriptNotifier{appName: appName, logger: logger}
}

func (n *OsascriptNotifier) Notify(ctx context.Context, subtitle, message string) error {
	script := notificationScript(n.appName, subtitle, message)

	n.logger.Debug("showing notification", "subtitle", subtitle)

	if out, err := exec.CommandContext(ctx, "osascript", "-e", script).CombinedOutput(); err != nil {
		return fmt.Errorf("osascript: %v (output: %s)", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// notificationScript builds the AppleScript call. Quotes and backslashes in
// the interpolated strings would break the string literal, so they are
// sanitized first.
func notificationScript(title, subtitle, message string) string {
	return fmt.Sprintf("display notification \"%s\" with title \"%s\" subtitle \"%s\"",
		sanitize(message), sanitize(title), sanitize(subtitle))
}

func sanitize(s string) string {
	s = strings.ReplaceAll(s, `\`, `/`)
	return strings.ReplaceAll(s, `"`, `'`)
}
