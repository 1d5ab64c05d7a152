package conversation

import (
	"context"
	"fmt"

	"github.com/susu3304/cajachica/internal/chat"
	"github.com/susu3304/cajachica/internal/format"
	applog "github.com/susu3304/cajachica/internal/log"
	"github.com/susu3304/cajachica/internal/router"
)

// start runs the first step of a freshly matched command.
func (d *Dispatcher) start(ctx context.Context, conv *Conversation, msg chat.Message) {
	switch conv.Command {
	case router.CommandReset:
		d.ask(ctx, conv, promptReset, stepAmount)
	case router.CommandSubtract:
		d.ask(ctx, conv, promptSubtract, stepAmount)
	case router.CommandAdd:
		d.ask(ctx, conv, promptAdd, stepAmount)
	case router.CommandList:
		d.handleList(ctx, conv, msg)
	case router.CommandStatus:
		d.handleStatus(ctx, conv, msg)
	default:
		d.log.WarnContext(ctx, "no handler for command", applog.FieldCommand, string(conv.Command))
		conv.abort()
	}
}

// advance feeds an answer to a conversation waiting on input.
func (d *Dispatcher) advance(ctx context.Context, conv *Conversation, msg chat.Message) {
	if conv.State != StateAwaitingInput {
		return
	}
	conv.State = StateProcessing

	if conv.step == stepDescription {
		d.handleDescription(ctx, conv, msg.Text)
		return
	}

	amount, ok := format.ExtractNumber(msg.Text)
	if !ok {
		d.say(ctx, conv, chat.Reply{Text: msgNoNumber})
		conv.abort()
		return
	}

	switch conv.Command {
	case router.CommandReset:
		if err := d.ledger.Reset(ctx, amount); err != nil {
			d.fail(ctx, conv, err, msgWriteFailed)
			return
		}
		conv.State = StateReplying
		d.say(ctx, conv, chat.Reply{Text: fmt.Sprintf(msgResetDone, format.Display(amount))})
		conv.finish()

	case router.CommandAdd:
		total, err := d.ledger.Deposit(ctx, amount)
		if err != nil {
			d.fail(ctx, conv, err, msgWriteFailed)
			return
		}
		conv.State = StateReplying
		d.say(ctx, conv, chat.Reply{Text: fmt.Sprintf(msgAddDone, format.Display(amount), format.Display(total))})
		conv.finish()

	case router.CommandSubtract:
		total, err := d.ledger.Withdraw(ctx, amount)
		if err != nil {
			d.fail(ctx, conv, err, msgWriteFailed)
			return
		}
		conv.amount = amount
		d.ask(ctx, conv, fmt.Sprintf(msgSubtractDone, format.Display(amount), format.Display(total)), stepDescription)

	default:
		conv.abort()
	}
}

func (d *Dispatcher) handleDescription(ctx context.Context, conv *Conversation, description string) {
	tx, err := d.ledger.RecordExpense(ctx, conv.amount, description)
	if err != nil {
		d.fail(ctx, conv, err, msgExpenseNotLogged)
		return
	}
	d.log.InfoContext(ctx, "expense recorded",
		applog.FieldTransaction, tx.ID,
		applog.FieldAmount, tx.Amount.String())

	conv.State = StateReplying
	d.say(ctx, conv, chat.Reply{Text: expenseReply(description)})
	conv.finish()
}

func (d *Dispatcher) handleList(ctx context.Context, conv *Conversation, msg chat.Message) {
	txs, err := d.ledger.Transactions(ctx)
	if err != nil {
		d.fail(ctx, conv, err, msgReadFailed)
		return
	}

	attachments := make([]chat.Attachment, 0, len(txs))
	for _, tx := range txs {
		color := colorPositive
		if tx.Amount.IsNegative() {
			color = colorNegative
		}
		attachments = append(attachments, chat.Attachment{
			Title:  format.Plain(tx.Amount) + " => " + tx.Description,
			Color:  color,
			Fields: []chat.Field{{Label: "Date", Value: format.Date(tx.CreatedAt)}},
		})
	}

	conv.State = StateReplying
	d.say(ctx, conv, chat.Reply{Text: msgReport, ReplyTo: msg.ID, Attachments: attachments})
	conv.finish()
}

func (d *Dispatcher) handleStatus(ctx context.Context, conv *Conversation, msg chat.Message) {
	total, err := d.ledger.Total(ctx)
	if err != nil {
		d.fail(ctx, conv, err, msgReadFailed)
		return
	}
	conv.State = StateReplying
	d.say(ctx, conv, chat.Reply{Text: fmt.Sprintf(msgStatus, format.Display(total)), ReplyTo: msg.ID})
	conv.finish()
}
