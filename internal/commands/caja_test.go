package commands

import (
	"testing"

	"github.com/bwmarrin/discordgo"
)

type fakeResponder struct {
	resp *discordgo.InteractionResponse
}

func (f *fakeResponder) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	f.resp = resp
	return nil
}

func TestHandleCaja(t *testing.T) {
	i := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type: discordgo.InteractionApplicationCommand,
		Data: discordgo.ApplicationCommandInteractionData{
			Name: CommandCaja,
			Options: []*discordgo.ApplicationCommandInteractionDataOption{
				{Name: optionTexto, Type: discordgo.ApplicationCommandOptionString, Value: "hola caja"},
			},
		},
	}}

	r := &fakeResponder{}
	if err := HandleCaja(r, i); err != nil {
		t.Fatalf("HandleCaja: %v", err)
	}
	if r.resp == nil {
		t.Fatal("no response sent")
	}
	if got := r.resp.Data.Content; got != "Recibido: hola caja" {
		t.Errorf("content = %q", got)
	}
	if r.resp.Data.Flags&discordgo.MessageFlagsEphemeral == 0 {
		t.Error("response should be ephemeral")
	}
}

func TestGetCommands(t *testing.T) {
	cmds := GetCommands()
	if len(cmds) != 1 || cmds[0].Name != CommandCaja {
		t.Fatalf("commands = %+v", cmds)
	}
	if len(cmds[0].Options) != 1 || !cmds[0].Options[0].Required {
		t.Errorf("caja options = %+v", cmds[0].Options)
	}
}
