// Package notify defines how a generated summary is delivered to a team chat
// channel.
package notify

import (
	"context"
	"errors"
)

// DefaultHeader prefixes every delivered summary.
const DefaultHeader = "*Todo Summary*"

// ErrEmptyMessage is returned when asked to deliver a message with no body.
var ErrEmptyMessage = errors.New("message body cannot be empty")

// Message is a chat notification.
type Message struct {
	Header string
	Body   string
}

// Text renders the message as posted to the chat channel: the header, a
// newline, then the body. A message without header is just the body.
func (m Message) Text() string {
	if m.Header == "" {
		return m.Body
	}
	return m.Header + "\n" + m.Body
}

// Delivery describes a successful post.
type Delivery struct {
	// StatusCode is the HTTP status returned by the webhook.
	StatusCode int
}

// Notifier posts a message to a chat channel.
type Notifier interface {
	// Notify delivers msg once, without retry. Errors wrap ErrEmptyMessage,
	// a *generation.UpstreamError for non-2xx responses, or the transport
	// error unchanged.
	Notify(ctx context.Context, msg Message) (*Delivery, error)
}
