package log

// Field names shared across components.
const (
	FieldComponent   = "component"
	FieldError       = "error"
	FieldChannelID   = "channel_id"
	FieldUserID      = "user_id"
	FieldCommand     = "command"
	FieldState       = "state"
	FieldAmount      = "amount"
	FieldTotal       = "total"
	FieldTransaction = "transaction_id"
	FieldBackend     = "backend"
	FieldMethod      = "method"
	FieldPath        = "path"
	FieldStatusCode  = "status_code"
)

const (
	ComponentApp          = "app"
	ComponentBot          = "bot"
	ComponentConversation = "conversation"
	ComponentLedger       = "ledger"
	ComponentStorage      = "storage"
	ComponentHTTP         = "http"
)
