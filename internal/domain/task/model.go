package task

import "time"

// Task represents a single todo item owned by a user.
type Task struct {
	ID          uint      `json:"id"`
	UserID      string    `json:"-"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// StatusFilter narrows task listings by completion state.
type StatusFilter string

const (
	StatusAll       StatusFilter = "all"
	StatusPending   StatusFilter = "pending"
	StatusCompleted StatusFilter = "completed"
)

// Valid reports whether the filter value is one of the known states.
func (s StatusFilter) Valid() bool {
	return s == StatusAll || s == StatusPending || s == StatusCompleted
}

// Filter bounds a task listing.
type Filter struct {
	Status StatusFilter
	Limit  int
	Offset int
}

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

// LimitAll disables the listing cap. Only trusted callers pass it; HTTP
// queries are bounded at the binding layer.
const LimitAll = -1

// Normalize fills defaults and reports whether the filter is usable.
func (f *Filter) Normalize() bool {
	if f.Status == "" {
		f.Status = StatusAll
	}
	if !f.Status.Valid() {
		return false
	}
	if f.Limit == 0 {
		f.Limit = defaultListLimit
	}
	if f.Limit != LimitAll && (f.Limit < 1 || f.Limit > maxListLimit) {
		return false
	}
	if f.Offset < 0 {
		return false
	}
	return true
}
