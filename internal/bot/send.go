package bot

import (
	"context"
	"errors"
	"math/rand"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/susu3304/cajachica/internal/chat"
)

const (
	// Discord rejects messages with more than 10 embeds.
	maxEmbedsPerMessage = 10
	maxEmbedTitle       = 256
)

// Minimal session interface for sending channel messages.
type messageSender interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Send implements chat.Sender. Attachments become embeds; replies with more
// than ten are split over several messages and only the first carries the
// text and the reference.
func (b *Bot) Send(ctx context.Context, channelID string, reply chat.Reply) error {
	for _, data := range buildMessages(channelID, reply) {
		if err := sendWithRetry(ctx, b.sender, channelID, data); err != nil {
			return err
		}
	}
	return nil
}

func buildMessages(channelID string, reply chat.Reply) []*discordgo.MessageSend {
	first := &discordgo.MessageSend{Content: reply.Text}
	if reply.ReplyTo != "" {
		first.Reference = &discordgo.MessageReference{MessageID: reply.ReplyTo, ChannelID: channelID}
	}

	embeds := toEmbeds(reply.Attachments)
	if len(embeds) <= maxEmbedsPerMessage {
		first.Embeds = embeds
		return []*discordgo.MessageSend{first}
	}

	first.Embeds = embeds[:maxEmbedsPerMessage]
	out := []*discordgo.MessageSend{first}
	for start := maxEmbedsPerMessage; start < len(embeds); start += maxEmbedsPerMessage {
		end := start + maxEmbedsPerMessage
		if end > len(embeds) {
			end = len(embeds)
		}
		out = append(out, &discordgo.MessageSend{Embeds: embeds[start:end]})
	}
	return out
}

func toEmbeds(attachments []chat.Attachment) []*discordgo.MessageEmbed {
	if len(attachments) == 0 {
		return nil
	}
	embeds := make([]*discordgo.MessageEmbed, 0, len(attachments))
	for _, a := range attachments {
		embed := &discordgo.MessageEmbed{
			Title: truncate(a.Title, maxEmbedTitle),
			Color: parseColor(a.Color),
		}
		for _, f := range a.Fields {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: f.Label, Value: f.Value})
		}
		embeds = append(embeds, embed)
	}
	return embeds
}

// parseColor turns "#rrggbb" into Discord's integer color; bad input is 0.
func parseColor(hex string) int {
	v, err := strconv.ParseInt(strings.TrimPrefix(hex, "#"), 16, 32)
	if err != nil {
		return 0
	}
	return int(v)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

func sendWithRetry(ctx context.Context, s messageSender, channelID string, data *discordgo.MessageSend) error {
	const attemptTimeout = 12 * time.Second
	const maxAttempts = 2

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		sendCtx, cancel := context.WithTimeout(ctx, attemptTimeout)
		_, err := s.ChannelMessageSendComplex(channelID, data, discordgo.WithContext(sendCtx))
		cancel()
		if err == nil {
			return nil
		}
		lastErr = err
		if !isTimeout(err) || attempt == maxAttempts {
			return err
		}
		select {
		case <-time.After(time.Duration(300+rand.Intn(500)) * time.Millisecond):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return lastErr
}

func isTimeout(err error) bool {
	var ne net.Error
	if errors.As(err, &ne) {
		return ne.Timeout()
	}
	return false
}
