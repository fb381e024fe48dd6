package notify

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"noticetrack/internal/domain/service"

	"github.com/pkg/errors"
)

// commandNotifier runs a local command per alert, e.g. notify-send. The
// command string is split on whitespace; the alert summary and unread count
// are appended as the final two arguments.
type commandNotifier struct {
	command string
	logger  *slog.Logger
}

// NewCommandNotifier creates a notifier that shells out per alert
func NewCommandNotifier(command string, logger *slog.Logger) service.Notifier {
	return &commandNotifier{
		command: command,
		logger:  logger,
	}
}

func (n *commandNotifier) NotifyNewNotice(ctx context.Context, alert *service.NoticeAlert) error {
	parts := strings.Fields(n.command)
	if len(parts) == 0 {
		return errors.New("notifier command is empty")
	}

	summary := alertSummary(alert)
	args := append(parts[1:], summary, fmt.Sprintf("%d unread notice(s)", alert.UnreadCount))

	n.logger.Info("[CommandNotifier] Executing alert command",
		slog.String("command", parts[0]),
		slog.Uint64("notice_id", alert.NoticeID),
	)

	cmd := exec.CommandContext(ctx, parts[0], args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return errors.Wrapf(err, "alert command failed: %s", strings.TrimSpace(string(output)))
	}

	return nil
}

func (n *commandNotifier) Close() error {
	return nil
}

func alertSummary(alert *service.NoticeAlert) string {
	switch {
	case alert.NoticeType != "" && alert.IssuingAgency != "":
		return fmt.Sprintf("%s from %s", alert.NoticeType, alert.IssuingAgency)
	case alert.NoticeType != "":
		return alert.NoticeType
	case alert.CaseNumber != "":
		return "Legal notice for case " + alert.CaseNumber
	default:
		return "New legal notice received"
	}
}
