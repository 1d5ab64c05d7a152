package commands

import (
	"github.com/bwmarrin/discordgo"
)

// Responder is the part of the Discord session used to answer interactions.
type Responder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
}

// HandleCaja acknowledges /caja privately. It has no ledger effect.
func HandleCaja(s Responder, i *discordgo.InteractionCreate) error {
	var text string
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == optionTexto {
			text = opt.StringValue()
		}
	}
	return respondEphemeral(s, i, "Recibido: "+text)
}

func respondEphemeral(s Responder, i *discordgo.InteractionCreate, content string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}
