package bot

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/susu3304/cajachica/internal/chat"
	"github.com/susu3304/cajachica/internal/commands"
	applog "github.com/susu3304/cajachica/internal/log"
)

// Inbox receives classified messages for processing.
type Inbox interface {
	Enqueue(ctx context.Context, msg chat.Message) error
}

type Bot struct {
	session *discordgo.Session
	sender  messageSender
	inbox   Inbox
	log     *applog.Logger
}

func New(token string, logger *applog.Logger) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}

	bot := &Bot{
		session: session,
		sender:  session,
		log:     logger.WithComponent(applog.ComponentBot),
	}

	// Register event handlers
	session.AddHandler(bot.onReady)
	session.AddHandler(bot.onGuildCreate)
	session.AddHandler(bot.onMessageCreate)
	session.AddHandler(bot.onInteractionCreate)

	session.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent

	return bot, nil
}

// Attach sets where inbound messages go. Call it before Start.
func (b *Bot) Attach(inbox Inbox) {
	b.inbox = inbox
}

func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open discord session: %w", err)
	}
	b.log.Info("discord bot is running")
	return nil
}

func (b *Bot) Stop() error {
	return b.session.Close()
}

func (b *Bot) registerGuildCommands(guildID string) error {
	cmds := commands.GetCommands()
	// Replace whatever was registered before
	_, err := b.session.ApplicationCommandBulkOverwrite(b.session.State.User.ID, guildID, cmds)
	if err != nil {
		return err
	}

	b.log.Info("registered application commands", "guild_id", guildID)
	return nil
}

var _ chat.Sender = (*Bot)(nil)
