package requests

// CreateTaskRequest creates a new task.
type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required,max=200"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
}

// UpdateTaskRequest applies a partial update; omitted fields are untouched.
type UpdateTaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Completed   *bool   `json:"completed"`
}

// ListTasksQuery bounds a task listing.
type ListTasksQuery struct {
	Status string `form:"status,default=all" binding:"omitempty,oneof=all pending completed"`
	Limit  int    `form:"limit,default=50" binding:"omitempty,min=1,max=100"`
	Offset int    `form:"offset,default=0" binding:"omitempty,min=0"`
}
