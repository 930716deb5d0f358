package tool

import (
	"context"
	"errors"
	"fmt"
	"time"

	"todopro-server/internal/domain/task"
	"todopro-server/internal/utils/platformerrors"
)

// Result is the uniform tool execution envelope. Successful results carry
// tool specific fields next to "success": true; failures carry "error".
type Result map[string]any

// Success reports whether the execution succeeded.
func (r Result) Success() bool {
	ok, _ := r["success"].(bool)
	return ok
}

// ErrorMessage returns the failure reason, if any.
func (r Result) ErrorMessage() string {
	msg, _ := r["error"].(string)
	return msg
}

// TaskSummary is the task shape embedded in list_tasks results.
type TaskSummary struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   bool    `json:"completed"`
	CreatedAt   string  `json:"created_at"`
}

// Invocation records a single executed tool call.
type Invocation struct {
	ToolName  string `json:"tool_name"`
	Arguments any    `json:"arguments"`
	Result    Result `json:"result"`
}

// Registry dispatches tool calls against the task service. The owning user
// is always supplied by the caller, never taken from model output.
type Registry struct {
	tasks task.Service
}

// NewRegistry constructs a tool registry.
func NewRegistry(tasks task.Service) *Registry {
	return &Registry{tasks: tasks}
}

// Execute runs the named tool with the raw JSON arguments on behalf of the
// user. Failures are reported inside the result envelope, never as errors.
func (reg *Registry) Execute(ctx context.Context, userID, name, rawArgs string) Invocation {
	args := ParseArguments(name, rawArgs)
	if args == nil {
		return Invocation{
			ToolName:  name,
			Arguments: map[string]any{},
			Result:    errorResult(fmt.Sprintf("Unknown tool: %s", name)),
		}
	}

	inv := Invocation{ToolName: name, Arguments: args}
	switch a := args.(type) {
	case AddTaskArgs:
		inv.Result = reg.addTask(ctx, userID, a)
	case ListTasksArgs:
		inv.Result = reg.listTasks(ctx, userID, a)
	case CompleteTaskArgs:
		inv.Result = reg.completeTask(ctx, userID, a)
	case DeleteTaskArgs:
		inv.Result = reg.deleteTask(ctx, userID, a)
	case UpdateTaskArgs:
		inv.Result = reg.updateTask(ctx, userID, a)
	}
	return inv
}

func (reg *Registry) addTask(ctx context.Context, userID string, args AddTaskArgs) Result {
	if len(args.Title) > 200 {
		return errorResult("Task title must be 200 characters or less")
	}

	created, err := reg.tasks.Create(ctx, userID, task.CreateParams{
		Title:       args.Title,
		Description: args.Description,
	})
	if err != nil {
		return errorForTask(err, 0)
	}
	return Result{
		"success":     true,
		"task_id":     created.ID,
		"title":       created.Title,
		"description": created.Description,
		"completed":   created.Completed,
	}
}

func (reg *Registry) listTasks(ctx context.Context, userID string, args ListTasksArgs) Result {
	// The assistant always reports the full list, never a page of it.
	filter := task.Filter{Status: task.StatusFilter(args.Status), Limit: task.LimitAll}
	tasks, err := reg.tasks.List(ctx, userID, filter)
	if err != nil {
		return errorForTask(err, 0)
	}

	summaries := make([]TaskSummary, 0, len(tasks))
	for _, t := range tasks {
		summaries = append(summaries, TaskSummary{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Completed:   t.Completed,
			CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		})
	}
	return Result{
		"success": true,
		"count":   len(summaries),
		"tasks":   summaries,
	}
}

func (reg *Registry) completeTask(ctx context.Context, userID string, args CompleteTaskArgs) Result {
	var (
		updated *task.Task
		err     error
	)
	if args.Completed == nil || *args.Completed {
		updated, err = reg.tasks.Complete(ctx, userID, args.TaskID)
	} else {
		completed := false
		updated, err = reg.tasks.Update(ctx, userID, args.TaskID, task.UpdateParams{Completed: &completed})
	}
	if err != nil {
		return errorForTask(err, args.TaskID)
	}
	return Result{
		"success":   true,
		"task_id":   updated.ID,
		"title":     updated.Title,
		"completed": updated.Completed,
	}
}

func (reg *Registry) deleteTask(ctx context.Context, userID string, args DeleteTaskArgs) Result {
	existing, err := reg.tasks.Get(ctx, userID, args.TaskID)
	if err != nil {
		return errorForTask(err, args.TaskID)
	}

	if err := reg.tasks.Delete(ctx, userID, args.TaskID); err != nil {
		return errorForTask(err, args.TaskID)
	}
	return Result{
		"success": true,
		"task_id": existing.ID,
		"title":   existing.Title,
	}
}

func (reg *Registry) updateTask(ctx context.Context, userID string, args UpdateTaskArgs) Result {
	if args.Title != nil && len(*args.Title) > 200 {
		return errorResult("Task title must be 200 characters or less")
	}

	updated, err := reg.tasks.Update(ctx, userID, args.TaskID, task.UpdateParams{
		Title:       args.Title,
		Description: args.Description,
	})
	if err != nil {
		return errorForTask(err, args.TaskID)
	}
	return Result{
		"success":     true,
		"task_id":     updated.ID,
		"title":       updated.Title,
		"description": updated.Description,
	}
}

func errorResult(message string) Result {
	return Result{"success": false, "error": message}
}

func errorForTask(err error, taskID uint) Result {
	if platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
		return errorResult(fmt.Sprintf("Task with ID %d not found or doesn't belong to you", taskID))
	}

	var platformErr *platformerrors.PlatformError
	if errors.As(err, &platformErr) {
		return errorResult(platformErr.Message)
	}
	return errorResult(err.Error())
}
