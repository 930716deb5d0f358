package task

import "context"

// Repository exposes persistence operations for tasks. Every lookup is
// scoped to the owning user so a foreign task id behaves like a missing one.
type Repository interface {
	Create(ctx context.Context, task *Task) error
	ListByUser(ctx context.Context, userID string, filter Filter) ([]Task, error)
	FindByIDAndUser(ctx context.Context, id uint, userID string) (*Task, error)
	Update(ctx context.Context, task *Task) error
	Delete(ctx context.Context, id uint, userID string) error
}
