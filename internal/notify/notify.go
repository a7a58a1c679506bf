package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/slack-go/slack"

	"fizzbench/internal/benchmark"
)

// Notifier defines the interface for sending notifications.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}

// SlackNotifier posts messages to a Slack channel through the Web API.
type SlackNotifier struct {
	client  *slack.Client
	channel string
}

// NewSlackNotifier creates a notifier for channel authenticated with a bot token.
func NewSlackNotifier(token, channel string, opts ...slack.Option) *SlackNotifier {
	return &SlackNotifier{
		client:  slack.New(token, opts...),
		channel: channel,
	}
}

// Notify sends message to the configured channel.
func (n *SlackNotifier) Notify(ctx context.Context, message string) error {
	if n.channel == "" {
		return fmt.Errorf("slack channel is not configured")
	}
	_, _, err := n.client.PostMessageContext(ctx, n.channel, slack.MsgOptionText(message, false))
	if err != nil {
		return fmt.Errorf("failed to send slack notification: %w", err)
	}
	return nil
}

// RunSummary renders a short plain-text digest of run: one line per
// candidate with its median sample.
func RunSummary(run benchmark.Run) string {
	var b strings.Builder
	fmt.Fprintf(&b, "fizzbench: %d candidates, %d rounds over [%d, %d)", len(run.Results), run.Rounds, run.Lower, run.Upper)
	if run.Commit != "" {
		fmt.Fprintf(&b, " at %s", run.Commit)
	}
	for _, s := range benchmark.SummarizeRun(run) {
		if s.N == 0 {
			fmt.Fprintf(&b, "\n• %s: no samples", s.Name)
			continue
		}
		fmt.Fprintf(&b, "\n• %s: median %s", s.Name, s.Center)
	}
	return b.String()
}
