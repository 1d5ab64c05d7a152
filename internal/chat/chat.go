// Package chat holds the platform-neutral message types the bot core works with.
package chat

import "context"

// Kind tells how a message reached the bot.
type Kind string

const (
	KindDirectMessage Kind = "direct_message"
	KindDirectMention Kind = "direct_mention"
	KindMention       Kind = "mention"
	// KindAmbient is a channel message that does not address the bot. It can
	// continue an open conversation but never starts one.
	KindAmbient Kind = "ambient"
)

type Message struct {
	ID        string
	ChannelID string
	UserID    string
	Text      string
	Kind      Kind
}

type Field struct {
	Label string
	Value string
}

type Attachment struct {
	Title  string
	Color  string // hex, e.g. "#27ae60"
	Fields []Field
}

type Reply struct {
	Text        string
	ReplyTo     string // message ID to reference, optional
	Attachments []Attachment
}

// Sender delivers replies to a channel.
type Sender interface {
	Send(ctx context.Context, channelID string, reply Reply) error
}
