package task

import (
	"context"
	"strings"

	"todopro-server/internal/utils/platformerrors"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 1000
)

// CreateParams contains the data needed to create a task.
type CreateParams struct {
	Title       string
	Description *string
}

// UpdateParams carries a partial update. Nil fields are left untouched.
type UpdateParams struct {
	Title       *string
	Description *string
	Completed   *bool
}

// Service defines the interface for task business logic.
type Service interface {
	Create(ctx context.Context, userID string, params CreateParams) (*Task, error)
	List(ctx context.Context, userID string, filter Filter) ([]Task, error)
	Get(ctx context.Context, userID string, id uint) (*Task, error)
	Update(ctx context.Context, userID string, id uint, params UpdateParams) (*Task, error)
	Complete(ctx context.Context, userID string, id uint) (*Task, error)
	ToggleCompletion(ctx context.Context, userID string, id uint) (*Task, error)
	Delete(ctx context.Context, userID string, id uint) error
}

// DefaultService implements the Service interface.
type DefaultService struct {
	repo Repository
}

// NewService creates a new task service.
func NewService(repo Repository) Service {
	return &DefaultService{repo: repo}
}

// Create validates and persists a new task.
func (s *DefaultService) Create(ctx context.Context, userID string, params CreateParams) (*Task, error) {
	title := strings.TrimSpace(params.Title)
	if err := validateTitle(ctx, title); err != nil {
		return nil, err
	}
	if err := validateDescription(ctx, params.Description); err != nil {
		return nil, err
	}

	t := &Task{
		UserID:      userID,
		Title:       title,
		Description: params.Description,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to create task")
	}
	return t, nil
}

// List returns the user's tasks in insertion order.
func (s *DefaultService) List(ctx context.Context, userID string, filter Filter) ([]Task, error) {
	if !filter.Normalize() {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "invalid list filter", nil,
			"7a1b2c3d-4e5f-4a6b-8c7d-9e0f1a2b3c4d")
	}
	return s.repo.ListByUser(ctx, userID, filter)
}

// Get fetches a single task owned by the user.
func (s *DefaultService) Get(ctx context.Context, userID string, id uint) (*Task, error) {
	return s.repo.FindByIDAndUser(ctx, id, userID)
}

// Update applies a partial update to a task owned by the user.
func (s *DefaultService) Update(ctx context.Context, userID string, id uint, params UpdateParams) (*Task, error) {
	t, err := s.repo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if params.Title != nil {
		title := strings.TrimSpace(*params.Title)
		if err := validateTitle(ctx, title); err != nil {
			return nil, err
		}
		t.Title = title
	}
	if params.Description != nil {
		if err := validateDescription(ctx, params.Description); err != nil {
			return nil, err
		}
		t.Description = params.Description
	}
	if params.Completed != nil {
		t.Completed = *params.Completed
	}

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to update task")
	}
	return t, nil
}

// Complete marks a task as done.
func (s *DefaultService) Complete(ctx context.Context, userID string, id uint) (*Task, error) {
	completed := true
	return s.Update(ctx, userID, id, UpdateParams{Completed: &completed})
}

// ToggleCompletion flips the completion flag.
func (s *DefaultService) ToggleCompletion(ctx context.Context, userID string, id uint) (*Task, error) {
	t, err := s.repo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	t.Completed = !t.Completed
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to toggle task")
	}
	return t, nil
}

// Delete removes a task owned by the user.
func (s *DefaultService) Delete(ctx context.Context, userID string, id uint) error {
	return s.repo.Delete(ctx, id, userID)
}

func validateTitle(ctx context.Context, title string) error {
	if title == "" {
		return platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "title is required", nil,
			"8b2c3d4e-5f6a-4b7c-9d8e-0f1a2b3c4d5e")
	}
	if len(title) > maxTitleLength {
		return platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "title must be at most 200 characters", nil,
			"9c3d4e5f-6a7b-4c8d-8e9f-1a2b3c4d5e6f")
	}
	return nil
}

func validateDescription(ctx context.Context, description *string) error {
	if description != nil && len(*description) > maxDescriptionLength {
		return platformerrors.NewError(ctx, platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation, "description must be at most 1000 characters", nil,
			"0d4e5f6a-7b8c-4d9e-9f0a-2b3c4d5e6f7a")
	}
	return nil
}
