package entities

import (
	"time"

	"todopro-server/internal/domain/task"
)

// Task represents the database schema for todo items
type Task struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	UserID      string  `gorm:"type:varchar(64);index:idx_task_user_completed;not null"`
	Title       string  `gorm:"type:varchar(200);not null"`
	Description *string `gorm:"type:varchar(1000)"`
	Completed   bool    `gorm:"index:idx_task_user_completed;not null;default:false"`
}

// TableName specifies the table name for Task.
func (Task) TableName() string {
	return "tasks"
}

// NewSchemaTask maps the domain task to its database schema.
func NewSchemaTask(t *task.Task) *Task {
	return &Task{
		ID:          t.ID,
		UserID:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
	}
}

// EtoD converts the entity to its domain representation.
func (e *Task) EtoD() *task.Task {
	return &task.Task{
		ID:          e.ID,
		UserID:      e.UserID,
		Title:       e.Title,
		Description: e.Description,
		Completed:   e.Completed,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
