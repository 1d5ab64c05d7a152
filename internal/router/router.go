package router

import (
	"strings"

	"github.com/susu3304/cajachica/internal/chat"
)

type Command string

const (
	CommandReset    Command = "reset"
	CommandSubtract Command = "subtract"
	CommandAdd      Command = "add"
	CommandList     Command = "list"
	CommandStatus   Command = "status"
)

// Route binds trigger phrases to a command. A route only fires for messages
// whose kind is listed in Kinds.
type Route struct {
	Command Command
	Phrases []string
	Kinds   []chat.Kind
}

var addressed = []chat.Kind{chat.KindDirectMessage, chat.KindDirectMention, chat.KindMention}

// DefaultRoutes is the bilingual trigger table. Order matters: the first
// matching route wins.
func DefaultRoutes() []Route {
	return []Route{
		{Command: CommandReset, Phrases: []string{"reset", "reiniciar"}, Kinds: addressed},
		{Command: CommandSubtract, Phrases: []string{"remover", "restar", "gasto", "subtract", "decrease", "expense"}, Kinds: addressed},
		{Command: CommandAdd, Phrases: []string{"agregar", "añadir", "sumar", "add", "increase"}, Kinds: addressed},
		{Command: CommandList, Phrases: []string{"listar", "reporte", "transacciones", "list", "report", "transactions"}, Kinds: addressed},
		{Command: CommandStatus, Phrases: []string{"hello", "hi", "hola", "holis", "status", "cuánto", "cuanto", "cuenta", "how much"}, Kinds: addressed},
	}
}

type Router struct {
	routes []Route
}

func New(routes []Route) *Router {
	r := &Router{routes: make([]Route, len(routes))}
	for i, route := range routes {
		phrases := make([]string, len(route.Phrases))
		for j, p := range route.Phrases {
			phrases[j] = strings.ToLower(p)
		}
		route.Phrases = phrases
		r.routes[i] = route
	}
	return r
}

// Match returns the first route whose kind filter accepts the message and one
// of whose phrases occurs in the text, ignoring case.
func (r *Router) Match(msg chat.Message) (Route, bool) {
	text := strings.ToLower(msg.Text)
	for _, route := range r.routes {
		if !acceptsKind(route.Kinds, msg.Kind) {
			continue
		}
		for _, phrase := range route.Phrases {
			if strings.Contains(text, phrase) {
				return route, true
			}
		}
	}
	return Route{}, false
}

func acceptsKind(kinds []chat.Kind, k chat.Kind) bool {
	for _, kind := range kinds {
		if kind == k {
			return true
		}
	}
	return false
}
