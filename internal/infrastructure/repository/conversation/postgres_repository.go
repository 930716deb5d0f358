package conversation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	domain "todopro-server/internal/domain/conversation"
	"todopro-server/internal/infrastructure/database/entities"
	"todopro-server/internal/utils/platformerrors"
)

// Repository persists conversation threads.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a conversation repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts the conversation record.
func (r *Repository) Create(ctx context.Context, conv *domain.Conversation) error {
	entity := entities.NewSchemaConversation(conv)

	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create conversation",
			err,
			"0f4a5b6c-7d8e-4f9a-9b0c-2d3e4f5a6b7c",
		)
	}

	conv.ID = entity.ID
	conv.CreatedAt = entity.CreatedAt
	conv.UpdatedAt = entity.UpdatedAt
	return nil
}

// FindByIDAndUser fetches a conversation scoped to its owner.
func (r *Repository) FindByIDAndUser(ctx context.Context, id uint, userID string) (*domain.Conversation, error) {
	var entity entities.Conversation
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeNotFound,
				fmt.Sprintf("conversation not found: %d", id),
				nil,
				"1a5b6c7d-8e9f-4a0b-8c1d-3e4f5a6b7c8d",
			)
		}
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to fetch conversation",
			err,
			"2b6c7d8e-9f0a-4b1c-9d2e-4f5a6b7c8d9e",
		)
	}

	return entity.EtoD(), nil
}

// ListByUser returns the user's conversations with their message counts,
// most recently updated first.
func (r *Repository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]domain.Summary, error) {
	var rows []struct {
		ID           uint
		MessageCount int64
		CreatedAt    time.Time
		UpdatedAt    time.Time
	}

	err := r.db.WithContext(ctx).
		Model(&entities.Conversation{}).
		Select("conversations.id, COUNT(messages.id) AS message_count, conversations.created_at, conversations.updated_at").
		Joins("LEFT JOIN messages ON messages.conversation_id = conversations.id").
		Where("conversations.user_id = ?", userID).
		Group("conversations.id").
		Order("conversations.updated_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list conversations",
			err,
			"3c7d8e9f-0a1b-4c2d-8e3f-5a6b7c8d9e0f",
		)
	}

	summaries := make([]domain.Summary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, domain.Summary{
			ID:           row.ID,
			MessageCount: row.MessageCount,
			CreatedAt:    row.CreatedAt,
			UpdatedAt:    row.UpdatedAt,
		})
	}
	return summaries, nil
}

// Touch bumps the conversation's updated_at timestamp.
func (r *Repository) Touch(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).
		Model(&entities.Conversation{}).
		Where("id = ?", id).
		Update("updated_at", time.Now()).Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to touch conversation",
			err,
			"4d8e9f0a-1b2c-4d3e-9f4a-6b7c8d9e0f1a",
		)
	}
	return nil
}

// Delete removes the conversation and cascades to its messages.
func (r *Repository) Delete(ctx context.Context, id uint, userID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entities.Conversation{})
	if result.Error != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to delete conversation",
			result.Error,
			"5e9f0a1b-2c3d-4e4f-8a5b-7c8d9e0f1a2b",
		)
	}
	if result.RowsAffected == 0 {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeNotFound,
			fmt.Sprintf("conversation not found: %d", id),
			nil,
			"6f0a1b2c-3d4e-4f5a-9b6c-8d9e0f1a2b3c",
		)
	}
	return nil
}
