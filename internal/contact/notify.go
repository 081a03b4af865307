package contact

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"time"

	"github.com/Leonard-ssj/portfolio/internal/email"
	"github.com/Leonard-ssj/portfolio/internal/i18n"
	"github.com/Leonard-ssj/portfolio/internal/pubsub"
)

// Composed is published once a valid form has been handed to the mail client.
type Composed struct {
	Form
	Lang i18n.Lang `json:"lang"`
	At   time.Time `json:"at"`
}

// ComposedEvent is the bus topic for Composed.
var ComposedEvent = pubsub.NewEvent[Composed]("contact.composed")

// Notifier forwards composed messages to the site owner by email.
type Notifier struct {
	sender email.Sender
	to     string
}

func NewNotifier(sender email.Sender, to string) *Notifier {
	return &Notifier{sender: sender, to: to}
}

// Start subscribes the notifier to the bus until ctx is done.
func (n *Notifier) Start(ctx context.Context, sub pubsub.Subscriber) error {
	return pubsub.Subscribe(ctx, sub, ComposedEvent, n.Handle)
}

// Handle sends one notification.
func (n *Notifier) Handle(_ context.Context, visitorID string, c Composed) error {
	subject := SubjectPrefix + c.Name
	var b strings.Builder
	fmt.Fprintf(&b, "<p><strong>Name:</strong> %s</p>", html.EscapeString(c.Name))
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>", html.EscapeString(c.Email))
	fmt.Fprintf(&b, "<p><strong>Language:</strong> %s</p>", c.Lang)
	fmt.Fprintf(&b, "<p>%s</p>", strings.ReplaceAll(html.EscapeString(c.Message), "\n", "<br>"))

	if err := n.sender.Send(n.to, subject, b.String()); err != nil {
		return fmt.Errorf("notify contact from %s: %w", visitorID, err)
	}
	slog.Info("contact notification sent", "visitor_id", visitorID)
	return nil
}
