package conversation

import (
	"context"

	"gorm.io/gorm"

	domain "todopro-server/internal/domain/conversation"
	"todopro-server/internal/infrastructure/database/entities"
	"todopro-server/internal/utils/platformerrors"
)

// MessageRepository persists individual conversation messages.
type MessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository builds a message repository.
func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create inserts the message record.
func (r *MessageRepository) Create(ctx context.Context, msg *domain.Message) error {
	entity := entities.NewSchemaMessage(msg)

	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create message",
			err,
			"7a1b2c3d-4e5f-4a6b-8c7d-9e0f1a2b3c4e",
		)
	}

	msg.ID = entity.ID
	msg.CreatedAt = entity.CreatedAt
	return nil
}

// ListByConversationID returns the conversation's messages in creation order.
func (r *MessageRepository) ListByConversationID(ctx context.Context, conversationID uint) ([]domain.Message, error) {
	var records []entities.Message
	if err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("id ASC").
		Find(&records).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list messages",
			err,
			"8b2c3d4e-5f6a-4b7c-9d8e-0f1a2b3c4d5f",
		)
	}

	messages := make([]domain.Message, 0, len(records))
	for i := range records {
		messages = append(messages, *records[i].EtoD())
	}
	return messages, nil
}
