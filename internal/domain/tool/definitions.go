package tool

import (
	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

// Tool names exposed to the model.
const (
	NameAddTask      = "add_task"
	NameListTasks    = "list_tasks"
	NameCompleteTask = "complete_task"
	NameDeleteTask   = "delete_task"
	NameUpdateTask   = "update_task"
)

// Names returns all available tool names.
func Names() []string {
	return []string{NameAddTask, NameListTasks, NameCompleteTask, NameDeleteTask, NameUpdateTask}
}

// Definitions returns the function schemas advertised to the model.
func Definitions() []openai.Tool {
	return []openai.Tool{
		{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        NameAddTask,
				Description: "Create a new todo task. Use when user wants to add, create, or remember something.",
				Parameters: jsonschema.Definition{
					Type: jsonschema.Object,
					Properties: map[string]jsonschema.Definition{
						"title": {
							Type:        jsonschema.String,
							Description: "The title of the task (max 200 characters)",
						},
						"description": {
							Type:        jsonschema.String,
							Description: "Optional description or notes for the task",
						},
					},
					Required: []string{"title"},
				},
			},
		},
		{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        NameListTasks,
				Description: "List all tasks or filter by status. Use when user wants to see, show, or view tasks.",
				Parameters: jsonschema.Definition{
					Type: jsonschema.Object,
					Properties: map[string]jsonschema.Definition{
						"status": {
							Type:        jsonschema.String,
							Enum:        []string{"all", "pending", "completed"},
							Description: "Filter tasks by status: 'all', 'pending', or 'completed'",
						},
					},
				},
			},
		},
		{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        NameCompleteTask,
				Description: "Mark a task as completed or incomplete. Use when user says done, finished, completed, or wants to mark incomplete/uncomplete.",
				Parameters: jsonschema.Definition{
					Type: jsonschema.Object,
					Properties: map[string]jsonschema.Definition{
						"task_id": {
							Type:        jsonschema.Integer,
							Description: "The ID of the task to mark as complete or incomplete",
						},
						"completed": {
							Type:        jsonschema.Boolean,
							Description: "True to mark as complete, False to mark as incomplete. Defaults to True.",
						},
					},
					Required: []string{"task_id"},
				},
			},
		},
		{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        NameDeleteTask,
				Description: "Delete a task. Use when user wants to remove, delete, or cancel a task.",
				Parameters: jsonschema.Definition{
					Type: jsonschema.Object,
					Properties: map[string]jsonschema.Definition{
						"task_id": {
							Type:        jsonschema.Integer,
							Description: "The ID of the task to delete",
						},
					},
					Required: []string{"task_id"},
				},
			},
		},
		{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        NameUpdateTask,
				Description: "Update task title or description. Use when user wants to change or modify a task.",
				Parameters: jsonschema.Definition{
					Type: jsonschema.Object,
					Properties: map[string]jsonschema.Definition{
						"task_id": {
							Type:        jsonschema.Integer,
							Description: "The ID of the task to update",
						},
						"title": {
							Type:        jsonschema.String,
							Description: "New title for the task (optional)",
						},
						"description": {
							Type:        jsonschema.String,
							Description: "New description for the task (optional)",
						},
					},
					Required: []string{"task_id"},
				},
			},
		},
	}
}
