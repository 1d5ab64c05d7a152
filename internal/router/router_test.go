package router

import (
	"testing"

	"github.com/susu3304/cajachica/internal/chat"
)

func TestMatchDefaultRoutes(t *testing.T) {
	r := New(DefaultRoutes())

	tests := []struct {
		name   string
		text   string
		kind   chat.Kind
		want   Command
		wantOk bool
	}{
		{"reset spanish", "reiniciar", chat.KindDirectMessage, CommandReset, true},
		{"reset english uppercase", "RESET please", chat.KindDirectMention, CommandReset, true},
		{"subtract gasto", "registrá un gasto", chat.KindMention, CommandSubtract, true},
		{"add with accent", "Añadir plata", chat.KindDirectMessage, CommandAdd, true},
		{"add english", "add", chat.KindDirectMessage, CommandAdd, true},
		{"list", "dame el reporte", chat.KindDirectMention, CommandList, true},
		{"status greeting", "hola", chat.KindDirectMessage, CommandStatus, true},
		{"status with accent", "¿Cuánto hay?", chat.KindMention, CommandStatus, true},
		{"status multiword", "how much is left", chat.KindDirectMessage, CommandStatus, true},
		{"no phrase", "buenas tardes", chat.KindDirectMessage, "", false},
		{"ambient never starts", "reset", chat.KindAmbient, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			route, ok := r.Match(chat.Message{Text: tt.text, Kind: tt.kind})
			if ok != tt.wantOk {
				t.Fatalf("Match(%q) ok = %v, want %v", tt.text, ok, tt.wantOk)
			}
			if ok && route.Command != tt.want {
				t.Errorf("Match(%q) = %s, want %s", tt.text, route.Command, tt.want)
			}
		})
	}
}

func TestMatchFirstRouteWins(t *testing.T) {
	r := New(DefaultRoutes())

	// "reiniciar la cuenta" hits both reset and status; reset is declared first.
	route, ok := r.Match(chat.Message{Text: "reiniciar la cuenta", Kind: chat.KindDirectMessage})
	if !ok || route.Command != CommandReset {
		t.Fatalf("got %v/%v, want reset", route.Command, ok)
	}

	// "add expense" hits subtract before add.
	route, ok = r.Match(chat.Message{Text: "add expense", Kind: chat.KindDirectMessage})
	if !ok || route.Command != CommandSubtract {
		t.Fatalf("got %v/%v, want subtract", route.Command, ok)
	}
}

func TestMatchRespectsKindFilter(t *testing.T) {
	r := New([]Route{
		{Command: CommandStatus, Phrases: []string{"Status"}, Kinds: []chat.Kind{chat.KindDirectMessage}},
	})

	if _, ok := r.Match(chat.Message{Text: "status", Kind: chat.KindMention}); ok {
		t.Error("mention should not match a DM-only route")
	}
	if _, ok := r.Match(chat.Message{Text: "status", Kind: chat.KindDirectMessage}); !ok {
		t.Error("DM should match, phrases are compared lower-cased")
	}
}
