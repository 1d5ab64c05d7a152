package commands

import "github.com/bwmarrin/discordgo"

const (
	CommandCaja = "caja"
	optionTexto = "texto"
)

func GetCommands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:         CommandCaja,
			Description:  "Hablale a la caja chica",
			DMPermission: boolPtr(true),
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        optionTexto,
					Description: "Lo que le querés decir",
					Required:    true,
				},
			},
		},
	}
}

func boolPtr(b bool) *bool {
	return &b
}
