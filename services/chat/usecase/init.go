package usecase

import (
	"github.com/tumpangan/tumpangan/services/auth"
	"github.com/tumpangan/tumpangan/services/chat"
	"github.com/tumpangan/tumpangan/services/chat/registry"
)

// ChatUC implements the chat usecase
type ChatUC struct {
	registry *registry.Registry
	sender   chat.MessageSender
	chatRepo chat.ChatRepo
	pushGW   chat.PushGW
	clock    auth.Clock
}

// NewChatUC creates a new chat usecase. A nil clock defaults to wall-clock time.
func NewChatUC(
	reg *registry.Registry,
	sender chat.MessageSender,
	chatRepo chat.ChatRepo,
	pushGW chat.PushGW,
	clock auth.Clock,
) *ChatUC {
	if clock == nil {
		clock = auth.RealClock()
	}
	return &ChatUC{
		registry: reg,
		sender:   sender,
		chatRepo: chatRepo,
		pushGW:   pushGW,
		clock:    clock,
	}
}
