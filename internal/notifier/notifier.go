package notifier

import (
	"context"

	"go.uber.org/zap"
)

// Accent selects the visual treatment of a delivered message.
type Accent int

const (
	// AccentScheduled marks alerts produced by the periodic scan.
	AccentScheduled Accent = iota
	// AccentManual marks replies to on-demand queries.
	AccentManual
)

func (a Accent) emoji() string {
	if a == AccentManual {
		return "📊"
	}
	return "📈"
}

// Notifier renders and delivers a message to a destination chat.
// Failures are logged by the caller, never retried.
type Notifier interface {
	Send(ctx context.Context, chatID, title, body string, accent Accent) error
}

// ConsoleNotifier writes messages to the log instead of a chat transport.
// Used in development when no bot credentials are configured for a check.
type ConsoleNotifier struct{}

func NewConsoleNotifier() *ConsoleNotifier { return &ConsoleNotifier{} }

func (c *ConsoleNotifier) Send(_ context.Context, chatID, title, body string, accent Accent) error {
	zap.L().Info("notification",
		zap.String("chat_id", chatID),
		zap.String("title", accent.emoji()+" "+title),
		zap.String("body", body))
	return nil
}
