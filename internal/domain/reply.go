package domain

import "time"

// SenderBot tags every reply produced by the matcher as bot-originated.
const SenderBot = "bot"

// Reply is the envelope returned to the chat client for every bot turn.
// It is transient and never persisted as-is.
type Reply struct {
	Message   string
	Sender    string
	Escalate  bool
	ChatID    string
	Timestamp time.Time
}

// NewBotReply builds a Reply threaded to the originating conversation.
// The chat id is passed through opaquely; nothing dereferences it here.
func NewBotReply(message, chatID string, escalate bool, at time.Time) *Reply {
	return &Reply{
		Message:   message,
		Sender:    SenderBot,
		Escalate:  escalate,
		ChatID:    chatID,
		Timestamp: at,
	}
}
