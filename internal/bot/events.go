package bot

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/susu3304/cajachica/internal/chat"
	"github.com/susu3304/cajachica/internal/commands"
	applog "github.com/susu3304/cajachica/internal/log"
)

const enqueueTimeout = 5 * time.Second

func (b *Bot) onReady(s *discordgo.Session, event *discordgo.Ready) {
	b.log.Info("connected", "username", event.User.Username)

	// Guild-scoped commands show up immediately, global ones can take an hour
	for _, guild := range event.Guilds {
		if err := b.registerGuildCommands(guild.ID); err != nil {
			b.log.Error("failed to register commands", "guild_id", guild.ID, applog.FieldError, err)
		}
	}
}

func (b *Bot) onGuildCreate(s *discordgo.Session, event *discordgo.GuildCreate) {
	if err := b.registerGuildCommands(event.ID); err != nil {
		b.log.Error("failed to register commands", "guild_id", event.ID, applog.FieldError, err)
	}
}

func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Ignore bot messages, including our own replies
	if m.Author == nil || m.Author.Bot {
		return
	}
	if b.inbox == nil || s.State == nil || s.State.User == nil {
		return
	}

	msg := toChatMessage(m.Message, s.State.User.ID)
	if msg.Text == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), enqueueTimeout)
	defer cancel()
	if err := b.inbox.Enqueue(ctx, msg); err != nil {
		b.log.Warn("dropped inbound message",
			applog.FieldChannelID, msg.ChannelID,
			applog.FieldUserID, msg.UserID,
			applog.FieldError, err)
	}
}

func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := i.ApplicationCommandData()
	switch data.Name {
	case commands.CommandCaja:
		if err := commands.HandleCaja(s, i); err != nil {
			b.log.Error("failed to answer interaction", applog.FieldCommand, data.Name, applog.FieldError, err)
		}
	}
}

// toChatMessage classifies m relative to the bot and strips the bot mention.
func toChatMessage(m *discordgo.Message, botID string) chat.Message {
	msg := chat.Message{
		ID:        m.ID,
		ChannelID: m.ChannelID,
		Text:      strings.TrimSpace(m.Content),
	}
	if m.Author != nil {
		msg.UserID = m.Author.ID
	}

	mentionTags := []string{"<@" + botID + ">", "<@!" + botID + ">"}
	leading := false
	for _, tag := range mentionTags {
		if strings.HasPrefix(msg.Text, tag) {
			leading = true
			break
		}
	}
	mentioned := leading || mentionsUser(m, botID)
	for _, tag := range mentionTags {
		msg.Text = strings.ReplaceAll(msg.Text, tag, "")
	}
	msg.Text = strings.TrimLeft(strings.TrimSpace(msg.Text), ":, ")

	switch {
	case m.GuildID == "":
		msg.Kind = chat.KindDirectMessage
	case leading:
		msg.Kind = chat.KindDirectMention
	case mentioned:
		msg.Kind = chat.KindMention
	default:
		msg.Kind = chat.KindAmbient
	}
	return msg
}

func mentionsUser(m *discordgo.Message, userID string) bool {
	for _, u := range m.Mentions {
		if u != nil && u.ID == userID {
			return true
		}
	}
	return false
}
