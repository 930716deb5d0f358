package handlers

import (
	"github.com/rs/zerolog"

	"todopro-server/internal/domain/chat"
	"todopro-server/internal/domain/task"
	"todopro-server/internal/domain/user"
)

// Provider wires all HTTP handlers for dependency injection.
type Provider struct {
	Auth *AuthHandler
	Task *TaskHandler
	Chat *ChatHandler
}

// NewProvider constructs the handler provider with domain services.
func NewProvider(userService user.Service, taskService task.Service, chatService chat.Service, log zerolog.Logger) *Provider {
	return &Provider{
		Auth: NewAuthHandler(userService, log),
		Task: NewTaskHandler(taskService, log),
		Chat: NewChatHandler(chatService, log),
	}
}
