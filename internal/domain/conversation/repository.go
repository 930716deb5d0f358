package conversation

import "context"

// Repository exposes CRUD operations for conversation threads.
type Repository interface {
	Create(ctx context.Context, conversation *Conversation) error
	FindByIDAndUser(ctx context.Context, id uint, userID string) (*Conversation, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Summary, error)
	Touch(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint, userID string) error
}

// MessageRepository persists individual conversation messages.
type MessageRepository interface {
	Create(ctx context.Context, message *Message) error
	ListByConversationID(ctx context.Context, conversationID uint) ([]Message, error)
}
