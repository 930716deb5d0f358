package tool

import "encoding/json"

// AddTaskArgs are the decoded arguments for add_task.
type AddTaskArgs struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
}

// ListTasksArgs are the decoded arguments for list_tasks.
type ListTasksArgs struct {
	Status string `json:"status,omitempty"`
}

// CompleteTaskArgs are the decoded arguments for complete_task.
type CompleteTaskArgs struct {
	TaskID    uint  `json:"task_id"`
	Completed *bool `json:"completed,omitempty"`
}

// DeleteTaskArgs are the decoded arguments for delete_task.
type DeleteTaskArgs struct {
	TaskID uint `json:"task_id"`
}

// UpdateTaskArgs are the decoded arguments for update_task.
type UpdateTaskArgs struct {
	TaskID      uint    `json:"task_id"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ParseArguments decodes the raw JSON argument payload into the typed struct
// for the named tool. A malformed payload degrades to zero valued arguments
// instead of failing; tool level validation then produces the user facing
// error. Unknown tool names return nil.
func ParseArguments(name, raw string) any {
	switch name {
	case NameAddTask:
		return decodeInto[AddTaskArgs](raw)
	case NameListTasks:
		return decodeInto[ListTasksArgs](raw)
	case NameCompleteTask:
		return decodeInto[CompleteTaskArgs](raw)
	case NameDeleteTask:
		return decodeInto[DeleteTaskArgs](raw)
	case NameUpdateTask:
		return decodeInto[UpdateTaskArgs](raw)
	default:
		return nil
	}
}

func decodeInto[T any](raw string) T {
	var args T
	if raw == "" {
		return args
	}
	if err := json.Unmarshal([]byte(raw), &args); err != nil {
		var zero T
		return zero
	}
	return args
}
