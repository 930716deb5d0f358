package chat

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"todopro-server/internal/domain/conversation"
	"todopro-server/internal/domain/tool"
	"todopro-server/internal/utils/platformerrors"
)

const maxMessageLength = 500

const (
	defaultConversationLimit = 20
	maxConversationLimit     = 100
)

// SendParams carries a chat turn from the user.
type SendParams struct {
	Message        string
	ConversationID *uint
}

// SendResult is the outcome of one chat turn.
type SendResult struct {
	ConversationID uint
	Response       string
	ToolCalls      []tool.Invocation
}

// Service defines the interface for chat business logic.
type Service interface {
	Send(ctx context.Context, userID string, params SendParams) (*SendResult, error)
	ListConversations(ctx context.Context, userID string, limit, offset int) ([]conversation.Summary, error)
	GetConversation(ctx context.Context, userID string, id uint) (*conversation.Conversation, []conversation.Message, error)
	DeleteConversation(ctx context.Context, userID string, id uint) error
}

// DefaultService implements the Service interface.
type DefaultService struct {
	conversations conversation.Repository
	messages      conversation.MessageRepository
	registry      *tool.Registry
	completer     Completer
	log           zerolog.Logger
}

// NewService creates a new chat service.
func NewService(
	conversations conversation.Repository,
	messages conversation.MessageRepository,
	registry *tool.Registry,
	completer Completer,
	log zerolog.Logger,
) Service {
	return &DefaultService{
		conversations: conversations,
		messages:      messages,
		registry:      registry,
		completer:     completer,
		log:           log.With().Str("domain", "chat").Logger(),
	}
}

// Send runs one chat turn: it records the user message, asks the model for a
// reply with the tool schemas attached, executes any requested tools on
// behalf of the user, and records the assistant reply. When the model call
// fails the user message stays persisted and the turn surfaces an external
// error.
func (s *DefaultService) Send(ctx context.Context, userID string, params SendParams) (*SendResult, error) {
	message := strings.TrimSpace(params.Message)
	if message == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "message is required", nil,
			"1e5f6a7b-8c9d-4e0f-8a1b-3c4d5e6f7a8b")
	}
	if len(message) > maxMessageLength {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "message must be at most 500 characters", nil,
			"2f6a7b8c-9d0e-4f1a-9b2c-4d5e6f7a8b9c")
	}

	conv, err := s.resolveConversation(ctx, userID, params.ConversationID)
	if err != nil {
		return nil, err
	}

	userMessage := &conversation.Message{
		ConversationID: conv.ID,
		UserID:         userID,
		Role:           conversation.RoleUser,
		Content:        message,
	}
	if err := s.messages.Create(ctx, userMessage); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to save message")
	}
	s.touch(ctx, conv.ID)

	history, err := s.messages.ListByConversationID(ctx, conv.ID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to load history")
	}

	assistant, err := s.completer.Complete(ctx, buildModelMessages(history), tool.Definitions())
	if err != nil {
		s.log.Error().Err(err).Uint("conversation_id", conv.ID).Msg("model call failed")
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeExternal, "AI service is currently unavailable", err,
			"3a7b8c9d-0e1f-4a2b-8c3d-5e6f7a8b9c0d")
	}

	responseText := assistant.Content
	var invocations []tool.Invocation
	for _, call := range assistant.ToolCalls {
		inv := s.registry.Execute(ctx, userID, call.Function.Name, call.Function.Arguments)
		invocations = append(invocations, inv)
		// The reply of the last executed tool wins.
		responseText = replyFor(inv)
	}

	assistantMessage := &conversation.Message{
		ConversationID: conv.ID,
		UserID:         userID,
		Role:           conversation.RoleAssistant,
		Content:        responseText,
	}
	if err := s.messages.Create(ctx, assistantMessage); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to save reply")
	}
	s.touch(ctx, conv.ID)

	return &SendResult{
		ConversationID: conv.ID,
		Response:       responseText,
		ToolCalls:      invocations,
	}, nil
}

// ListConversations returns the user's threads, most recently updated first.
func (s *DefaultService) ListConversations(ctx context.Context, userID string, limit, offset int) ([]conversation.Summary, error) {
	if limit <= 0 {
		limit = defaultConversationLimit
	}
	if limit > maxConversationLimit {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "limit must be at most 100", nil,
			"4b8c9d0e-1f2a-4b3c-9d4e-6f7a8b9c0d1e")
	}
	if offset < 0 {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "offset must not be negative", nil,
			"5c9d0e1f-2a3b-4c4d-8e5f-7a8b9c0d1e2f")
	}
	return s.conversations.ListByUser(ctx, userID, limit, offset)
}

// GetConversation returns the thread and its messages in creation order.
func (s *DefaultService) GetConversation(ctx context.Context, userID string, id uint) (*conversation.Conversation, []conversation.Message, error) {
	conv, err := s.conversations.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, nil, err
	}
	messages, err := s.messages.ListByConversationID(ctx, conv.ID)
	if err != nil {
		return nil, nil, err
	}
	return conv, messages, nil
}

// DeleteConversation removes the thread and its messages.
func (s *DefaultService) DeleteConversation(ctx context.Context, userID string, id uint) error {
	return s.conversations.Delete(ctx, id, userID)
}

// touch bumps the conversation's updated_at alongside a message write so
// newest-updated-first listings stay in order.
func (s *DefaultService) touch(ctx context.Context, id uint) {
	if err := s.conversations.Touch(ctx, id); err != nil {
		s.log.Warn().Err(err).Uint("conversation_id", id).Msg("failed to touch conversation")
	}
}

// resolveConversation reuses the referenced thread when it belongs to the
// user, and lazily creates a fresh one otherwise.
func (s *DefaultService) resolveConversation(ctx context.Context, userID string, id *uint) (*conversation.Conversation, error) {
	if id != nil {
		conv, err := s.conversations.FindByIDAndUser(ctx, *id, userID)
		if err == nil {
			return conv, nil
		}
		if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
			return nil, err
		}
	}

	conv := &conversation.Conversation{UserID: userID}
	if err := s.conversations.Create(ctx, conv); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to create conversation")
	}
	return conv, nil
}

func buildModelMessages(history []conversation.Message) []openai.ChatCompletionMessage {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	for _, m := range history {
		role := openai.ChatMessageRoleUser
		if m.Role == conversation.RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: m.Content,
		})
	}
	return messages
}
