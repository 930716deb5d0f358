package task

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "todopro-server/internal/domain/task"
	"todopro-server/internal/infrastructure/database/entities"
	"todopro-server/internal/utils/platformerrors"
)

const notFoundMessage = "Task not found or does not belong to user"

// Repository persists todo tasks.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a task repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts the task record.
func (r *Repository) Create(ctx context.Context, t *domain.Task) error {
	entity := entities.NewSchemaTask(t)

	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create task",
			err,
			"2d6e7f8a-9b0c-4d1e-9f2a-4b5c6d7e8f9a",
		)
	}

	t.ID = entity.ID
	t.CreatedAt = entity.CreatedAt
	t.UpdatedAt = entity.UpdatedAt
	return nil
}

// ListByUser returns the user's tasks in insertion order.
func (r *Repository) ListByUser(ctx context.Context, userID string, filter domain.Filter) ([]domain.Task, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Limit(filter.Limit).
		Offset(filter.Offset)

	switch filter.Status {
	case domain.StatusPending:
		query = query.Where("completed = ?", false)
	case domain.StatusCompleted:
		query = query.Where("completed = ?", true)
	}

	var records []entities.Task
	if err := query.Find(&records).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list tasks",
			err,
			"3e7f8a9b-0c1d-4e2f-8a3b-5c6d7e8f9a0b",
		)
	}

	tasks := make([]domain.Task, 0, len(records))
	for i := range records {
		tasks = append(tasks, *records[i].EtoD())
	}
	return tasks, nil
}

// FindByIDAndUser fetches a task scoped to its owner.
func (r *Repository) FindByIDAndUser(ctx context.Context, id uint, userID string) (*domain.Task, error) {
	var entity entities.Task
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeNotFound,
				notFoundMessage,
				nil,
				"4f8a9b0c-1d2e-4f3a-9b4c-6d7e8f9a0b1c",
			)
		}
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to fetch task",
			err,
			"5a9b0c1d-2e3f-4a4b-8c5d-7e8f9a0b1c2d",
		)
	}

	return entity.EtoD(), nil
}

// Update saves the task's mutable fields and refreshes updated_at.
func (r *Repository) Update(ctx context.Context, t *domain.Task) error {
	entity := entities.NewSchemaTask(t)

	result := r.db.WithContext(ctx).
		Model(&entities.Task{}).
		Where("id = ? AND user_id = ?", t.ID, t.UserID).
		Updates(map[string]any{
			"title":       entity.Title,
			"description": entity.Description,
			"completed":   entity.Completed,
		})
	if result.Error != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to update task",
			result.Error,
			"6b0c1d2e-3f4a-4b5c-9d6e-8f9a0b1c2d3e",
		)
	}
	if result.RowsAffected == 0 {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeNotFound,
			notFoundMessage,
			nil,
			"7c1d2e3f-4a5b-4c6d-8e7f-9a0b1c2d3e4f",
		)
	}

	var saved entities.Task
	if err := r.db.WithContext(ctx).First(&saved, t.ID).Error; err == nil {
		t.CreatedAt = saved.CreatedAt
		t.UpdatedAt = saved.UpdatedAt
	}
	return nil
}

// Delete removes the task scoped to its owner.
func (r *Repository) Delete(ctx context.Context, id uint, userID string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entities.Task{})
	if result.Error != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to delete task",
			result.Error,
			"8d2e3f4a-5b6c-4d7e-9f8a-0b1c2d3e4f5a",
		)
	}
	if result.RowsAffected == 0 {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeNotFound,
			notFoundMessage,
			nil,
			"9e3f4a5b-6c7d-4e8f-8a9b-1c2d3e4f5a6b",
		)
	}
	return nil
}
