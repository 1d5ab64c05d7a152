// Package conversation drives the multi-turn exchanges behind each command.
// Every conversation is an explicit state machine keyed by (channel, user)
// and fed by a single receive loop.
package conversation

import (
	"github.com/shopspring/decimal"
	"github.com/susu3304/cajachica/internal/router"
)

type State int

const (
	StateAwaitingInput State = iota
	StateProcessing
	StateReplying
	StateTerminated
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateAwaitingInput:
		return "awaiting_input"
	case StateProcessing:
		return "processing"
	case StateReplying:
		return "replying"
	case StateTerminated:
		return "terminated"
	case StateAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// step is the question a conversation is waiting on.
type step int

const (
	stepNone step = iota
	stepAmount
	stepDescription
)

type Key struct {
	ChannelID string
	UserID    string
}

type Conversation struct {
	Key     Key
	Command router.Command
	State   State

	step   step
	amount decimal.Decimal
}

// Done reports whether the conversation reached a terminal state.
func (c *Conversation) Done() bool {
	return c.State == StateTerminated || c.State == StateAborted
}

func (c *Conversation) await(s step) {
	c.step = s
	c.State = StateAwaitingInput
}

func (c *Conversation) finish() {
	c.step = stepNone
	c.State = StateTerminated
}

func (c *Conversation) abort() {
	c.step = stepNone
	c.State = StateAborted
}
