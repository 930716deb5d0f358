package chat

import (
	"fmt"
	"strings"

	"todopro-server/internal/domain/tool"
)

// replyFor turns an executed tool call into the templated assistant reply.
func replyFor(inv tool.Invocation) string {
	if !inv.Result.Success() {
		return fmt.Sprintf("Sorry, I couldn't complete that action: %s", inv.Result.ErrorMessage())
	}

	switch inv.ToolName {
	case tool.NameAddTask:
		return fmt.Sprintf("I've created a new task '%v' for you.", inv.Result["title"])
	case tool.NameListTasks:
		tasks, _ := inv.Result["tasks"].([]tool.TaskSummary)
		if len(tasks) == 0 {
			return "You don't have any tasks yet. Would you like to add one?"
		}
		lines := make([]string, 0, len(tasks))
		for _, t := range tasks {
			box := "[ ]"
			if t.Completed {
				box = "[✓]"
			}
			lines = append(lines, fmt.Sprintf("%d. %s %s", t.ID, box, t.Title))
		}
		return "Here are your tasks:\n" + strings.Join(lines, "\n")
	case tool.NameCompleteTask:
		return fmt.Sprintf("Great! I've marked task %v as complete.", inv.Result["task_id"])
	case tool.NameDeleteTask:
		return fmt.Sprintf("I've deleted the task '%v'.", inv.Result["title"])
	case tool.NameUpdateTask:
		return fmt.Sprintf("I've updated the task to '%v'.", inv.Result["title"])
	default:
		return ""
	}
}
