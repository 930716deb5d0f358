package tool_test

import (
	"context"
	"testing"

	"todopro-server/internal/domain/task"
	"todopro-server/internal/domain/tool"
	"todopro-server/internal/utils/platformerrors"
)

// MockTaskService is a func-field mock of task.Service.
type MockTaskService struct {
	CreateFunc           func(ctx context.Context, userID string, params task.CreateParams) (*task.Task, error)
	ListFunc             func(ctx context.Context, userID string, filter task.Filter) ([]task.Task, error)
	GetFunc              func(ctx context.Context, userID string, id uint) (*task.Task, error)
	UpdateFunc           func(ctx context.Context, userID string, id uint, params task.UpdateParams) (*task.Task, error)
	CompleteFunc         func(ctx context.Context, userID string, id uint) (*task.Task, error)
	ToggleCompletionFunc func(ctx context.Context, userID string, id uint) (*task.Task, error)
	DeleteFunc           func(ctx context.Context, userID string, id uint) error
}

func (m *MockTaskService) Create(ctx context.Context, userID string, params task.CreateParams) (*task.Task, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, userID, params)
	}
	return nil, nil
}

func (m *MockTaskService) List(ctx context.Context, userID string, filter task.Filter) ([]task.Task, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID, filter)
	}
	return nil, nil
}

func (m *MockTaskService) Get(ctx context.Context, userID string, id uint) (*task.Task, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, userID, id)
	}
	return nil, nil
}

func (m *MockTaskService) Update(ctx context.Context, userID string, id uint, params task.UpdateParams) (*task.Task, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, userID, id, params)
	}
	return nil, nil
}

func (m *MockTaskService) Complete(ctx context.Context, userID string, id uint) (*task.Task, error) {
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, userID, id)
	}
	return nil, nil
}

func (m *MockTaskService) ToggleCompletion(ctx context.Context, userID string, id uint) (*task.Task, error) {
	if m.ToggleCompletionFunc != nil {
		return m.ToggleCompletionFunc(ctx, userID, id)
	}
	return nil, nil
}

func (m *MockTaskService) Delete(ctx context.Context, userID string, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, id)
	}
	return nil
}

func notFoundErr(ctx context.Context) error {
	return platformerrors.NewError(ctx, platformerrors.LayerRepository,
		platformerrors.ErrorTypeNotFound, "Task not found or does not belong to user", nil, "test-not-found")
}

func TestRegistry_Execute_AddTask(t *testing.T) {
	var seenUserID string
	tasks := &MockTaskService{
		CreateFunc: func(ctx context.Context, userID string, params task.CreateParams) (*task.Task, error) {
			seenUserID = userID
			return &task.Task{ID: 1, UserID: userID, Title: params.Title, Description: params.Description}, nil
		},
	}
	reg := tool.NewRegistry(tasks)

	inv := reg.Execute(context.Background(), "user-1", "add_task", `{"title":"Buy milk"}`)

	if inv.ToolName != "add_task" {
		t.Errorf("ToolName = %q, want add_task", inv.ToolName)
	}
	if !inv.Result.Success() {
		t.Fatalf("Result = %v, want success", inv.Result)
	}
	if inv.Result["title"] != "Buy milk" {
		t.Errorf("title = %v, want Buy milk", inv.Result["title"])
	}
	if seenUserID != "user-1" {
		t.Errorf("owner = %q, want the caller's user id", seenUserID)
	}
}

func TestRegistry_Execute_ListTasks(t *testing.T) {
	tasks := &MockTaskService{
		ListFunc: func(ctx context.Context, userID string, filter task.Filter) ([]task.Task, error) {
			return []task.Task{
				{ID: 1, Title: "First", Completed: true},
				{ID: 2, Title: "Second"},
			}, nil
		},
	}
	reg := tool.NewRegistry(tasks)

	inv := reg.Execute(context.Background(), "user-1", "list_tasks", `{"status":"all"}`)

	if !inv.Result.Success() {
		t.Fatalf("Result = %v, want success", inv.Result)
	}
	if inv.Result["count"] != 2 {
		t.Errorf("count = %v, want 2", inv.Result["count"])
	}
	summaries, ok := inv.Result["tasks"].([]tool.TaskSummary)
	if !ok {
		t.Fatalf("tasks has unexpected type %T", inv.Result["tasks"])
	}
	if len(summaries) != 2 || summaries[0].Title != "First" {
		t.Errorf("tasks = %v, want both summaries in order", summaries)
	}
}

func TestRegistry_Execute_CompleteTask(t *testing.T) {
	var seenID uint
	tasks := &MockTaskService{
		CompleteFunc: func(ctx context.Context, userID string, id uint) (*task.Task, error) {
			seenID = id
			return &task.Task{ID: id, Title: "Task", Completed: true}, nil
		},
	}
	reg := tool.NewRegistry(tasks)

	inv := reg.Execute(context.Background(), "user-1", "complete_task", `{"task_id":3}`)

	if !inv.Result.Success() {
		t.Fatalf("Result = %v, want success", inv.Result)
	}
	if seenID != 3 {
		t.Errorf("Complete called with id %d, want 3", seenID)
	}
	if inv.Result["completed"] != true {
		t.Errorf("completed = %v, want true", inv.Result["completed"])
	}
}

func TestRegistry_Execute_CompleteTask_NotFound(t *testing.T) {
	tasks := &MockTaskService{
		CompleteFunc: func(ctx context.Context, userID string, id uint) (*task.Task, error) {
			return nil, notFoundErr(ctx)
		},
	}
	reg := tool.NewRegistry(tasks)

	inv := reg.Execute(context.Background(), "user-1", "complete_task", `{"task_id":42}`)

	if inv.Result.Success() {
		t.Fatal("expected a failed result")
	}
	want := "Task with ID 42 not found or doesn't belong to you"
	if got := inv.Result.ErrorMessage(); got != want {
		t.Errorf("error = %q, want %q", got, want)
	}
}

func TestRegistry_Execute_ListTasks_Unbounded(t *testing.T) {
	var seenLimit int
	tasks := &MockTaskService{
		ListFunc: func(ctx context.Context, userID string, filter task.Filter) ([]task.Task, error) {
			seenLimit = filter.Limit
			return nil, nil
		},
	}
	reg := tool.NewRegistry(tasks)

	inv := reg.Execute(context.Background(), "user-1", "list_tasks", `{}`)

	if !inv.Result.Success() {
		t.Fatalf("Result = %v, want success", inv.Result)
	}
	if seenLimit != task.LimitAll {
		t.Errorf("limit = %d, want LimitAll so long lists are never truncated", seenLimit)
	}
}

func TestRegistry_Execute_CompleteTask_ExplicitIncomplete(t *testing.T) {
	var seenCompleted *bool
	tasks := &MockTaskService{
		UpdateFunc: func(ctx context.Context, userID string, id uint, params task.UpdateParams) (*task.Task, error) {
			seenCompleted = params.Completed
			return &task.Task{ID: id, Title: "Task", Completed: *params.Completed}, nil
		},
	}
	reg := tool.NewRegistry(tasks)

	inv := reg.Execute(context.Background(), "user-1", "complete_task", `{"task_id":1,"completed":false}`)

	if !inv.Result.Success() {
		t.Fatalf("Result = %v, want success", inv.Result)
	}
	if seenCompleted == nil || *seenCompleted {
		t.Error("completed=false should be forwarded instead of defaulting to true")
	}
}

func TestRegistry_Execute_DeleteTask(t *testing.T) {
	deleted := false
	tasks := &MockTaskService{
		GetFunc: func(ctx context.Context, userID string, id uint) (*task.Task, error) {
			return &task.Task{ID: id, Title: "Doomed"}, nil
		},
		DeleteFunc: func(ctx context.Context, userID string, id uint) error {
			deleted = true
			return nil
		},
	}
	reg := tool.NewRegistry(tasks)

	inv := reg.Execute(context.Background(), "user-1", "delete_task", `{"task_id":9}`)

	if !inv.Result.Success() {
		t.Fatalf("Result = %v, want success", inv.Result)
	}
	if !deleted {
		t.Error("delete_task should call the task service")
	}
	if inv.Result["title"] != "Doomed" {
		t.Errorf("title = %v, want the deleted task's title", inv.Result["title"])
	}
}

func TestRegistry_Execute_UnknownTool(t *testing.T) {
	reg := tool.NewRegistry(&MockTaskService{})

	inv := reg.Execute(context.Background(), "user-1", "send_email", `{}`)

	if inv.Result.Success() {
		t.Fatal("expected a failed result")
	}
	if got := inv.Result.ErrorMessage(); got != "Unknown tool: send_email" {
		t.Errorf("error = %q, want the unknown tool message", got)
	}
}

func TestRegistry_Execute_MalformedArguments(t *testing.T) {
	tasks := &MockTaskService{
		CreateFunc: func(ctx context.Context, userID string, params task.CreateParams) (*task.Task, error) {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain,
				platformerrors.ErrorTypeValidation, "title is required", nil, "test-validation")
		},
	}
	reg := tool.NewRegistry(tasks)

	// Broken JSON degrades to zero valued arguments, so add_task fails on
	// the empty title instead of crashing the turn.
	inv := reg.Execute(context.Background(), "user-1", "add_task", `{"title": broken`)

	if inv.Result.Success() {
		t.Fatal("expected a failed result")
	}
	if got := inv.Result.ErrorMessage(); got != "title is required" {
		t.Errorf("error = %q, want the validation message", got)
	}
}

func TestParseArguments(t *testing.T) {
	tests := []struct {
		name     string
		toolName string
		raw      string
		check    func(t *testing.T, args any)
	}{
		{
			name:     "add_task full payload",
			toolName: "add_task",
			raw:      `{"title":"T","description":"D"}`,
			check: func(t *testing.T, args any) {
				a, ok := args.(tool.AddTaskArgs)
				if !ok {
					t.Fatalf("args has type %T", args)
				}
				if a.Title != "T" || a.Description == nil || *a.Description != "D" {
					t.Errorf("args = %+v", a)
				}
			},
		},
		{
			name:     "empty payload",
			toolName: "list_tasks",
			raw:      "",
			check: func(t *testing.T, args any) {
				a, ok := args.(tool.ListTasksArgs)
				if !ok {
					t.Fatalf("args has type %T", args)
				}
				if a.Status != "" {
					t.Errorf("Status = %q, want zero value", a.Status)
				}
			},
		},
		{
			name:     "malformed payload degrades to zero value",
			toolName: "update_task",
			raw:      `{{`,
			check: func(t *testing.T, args any) {
				a, ok := args.(tool.UpdateTaskArgs)
				if !ok {
					t.Fatalf("args has type %T", args)
				}
				if a.TaskID != 0 || a.Title != nil {
					t.Errorf("args = %+v, want zero value", a)
				}
			},
		},
		{
			name:     "unknown tool returns nil",
			toolName: "nope",
			raw:      `{}`,
			check: func(t *testing.T, args any) {
				if args != nil {
					t.Errorf("args = %v, want nil", args)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, tool.ParseArguments(tt.toolName, tt.raw))
		})
	}
}

func TestDefinitions_CoverEveryTool(t *testing.T) {
	defs := tool.Definitions()
	names := tool.Names()

	if len(defs) != len(names) {
		t.Fatalf("Definitions() has %d entries, want %d", len(defs), len(names))
	}

	byName := make(map[string]bool, len(defs))
	for _, def := range defs {
		byName[def.Function.Name] = true
	}
	for _, name := range names {
		if !byName[name] {
			t.Errorf("missing schema for %s", name)
		}
	}
}
