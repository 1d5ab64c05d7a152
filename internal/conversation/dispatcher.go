package conversation

import (
	"context"
	"sync"

	"github.com/susu3304/cajachica/internal/chat"
	"github.com/susu3304/cajachica/internal/ledger"
	applog "github.com/susu3304/cajachica/internal/log"
	"github.com/susu3304/cajachica/internal/router"
)

const inboxSize = 64

// Dispatcher routes inbound messages to open conversations or starts new ones.
type Dispatcher struct {
	router *router.Router
	ledger *ledger.Ledger
	sender chat.Sender
	log    *applog.Logger

	inbox chan chat.Message

	mu     sync.Mutex
	active map[Key]*Conversation
}

func NewDispatcher(r *router.Router, l *ledger.Ledger, sender chat.Sender, logger *applog.Logger) *Dispatcher {
	return &Dispatcher{
		router: r,
		ledger: l,
		sender: sender,
		log:    logger.WithComponent(applog.ComponentConversation),
		inbox:  make(chan chat.Message, inboxSize),
		active: make(map[Key]*Conversation),
	}
}

// Enqueue hands a message to the receive loop, blocking while the inbox is full.
func (d *Dispatcher) Enqueue(ctx context.Context, msg chat.Message) error {
	select {
	case d.inbox <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run processes queued messages one at a time until ctx is cancelled.
func (d *Dispatcher) Run(ctx context.Context) error {
	d.log.Info("dispatcher started")
	for {
		select {
		case <-ctx.Done():
			d.log.Info("dispatcher stopped")
			return nil
		case msg := <-d.inbox:
			d.Handle(ctx, msg)
		}
	}
}

// Handle processes one message synchronously. A message from a user with an
// open conversation in the channel always goes to that conversation, whatever
// its kind.
func (d *Dispatcher) Handle(ctx context.Context, msg chat.Message) {
	d.mu.Lock()
	defer d.mu.Unlock()

	key := Key{ChannelID: msg.ChannelID, UserID: msg.UserID}
	if conv, ok := d.active[key]; ok {
		d.advance(ctx, conv, msg)
		if conv.Done() {
			delete(d.active, key)
		}
		return
	}

	route, ok := d.router.Match(msg)
	if !ok {
		return
	}
	conv := &Conversation{Key: key, Command: route.Command, State: StateProcessing}
	d.log.DebugContext(ctx, "conversation started",
		applog.FieldChannelID, key.ChannelID,
		applog.FieldUserID, key.UserID,
		applog.FieldCommand, string(route.Command))

	d.start(ctx, conv, msg)
	if !conv.Done() {
		d.active[key] = conv
	}
}

// Active returns the open conversation for key, if any.
func (d *Dispatcher) Active(key Key) (Conversation, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	conv, ok := d.active[key]
	if !ok {
		return Conversation{}, false
	}
	return *conv, true
}

func (d *Dispatcher) say(ctx context.Context, conv *Conversation, reply chat.Reply) {
	if err := d.sender.Send(ctx, conv.Key.ChannelID, reply); err != nil {
		d.log.ErrorContext(ctx, "failed to send reply",
			applog.FieldChannelID, conv.Key.ChannelID,
			applog.FieldCommand, string(conv.Command),
			applog.FieldError, err)
	}
}

func (d *Dispatcher) ask(ctx context.Context, conv *Conversation, prompt string, next step) {
	d.say(ctx, conv, chat.Reply{Text: prompt})
	conv.await(next)
}

// fail logs a persistence error and aborts the conversation with a visible reply.
func (d *Dispatcher) fail(ctx context.Context, conv *Conversation, err error, userText string) {
	d.log.ErrorContext(ctx, "ledger operation failed",
		applog.FieldChannelID, conv.Key.ChannelID,
		applog.FieldUserID, conv.Key.UserID,
		applog.FieldCommand, string(conv.Command),
		applog.FieldState, conv.State.String(),
		applog.FieldError, err)
	d.say(ctx, conv, chat.Reply{Text: userText})
	conv.abort()
}
