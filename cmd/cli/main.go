// Command cli is a standalone interactive todo application backed by the
// in-memory store. It shares the task model with the HTTP service but needs
// no database or network.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"todopro-server/internal/memstore"
)

const maxTitleLength = 200

func main() {
	store := memstore.New()
	reader := bufio.NewScanner(os.Stdin)

	for {
		printMenu()
		choice, ok := readLine(reader)
		if !ok {
			fmt.Println("\nThank you for using Todo Application. Goodbye!")
			return
		}

		switch choice {
		case "1":
			addTask(store, reader)
		case "2":
			viewTasks(store)
		case "3":
			updateTask(store, reader)
		case "4":
			deleteTask(store, reader)
		case "5":
			setCompletion(store, reader, true)
		case "6":
			setCompletion(store, reader, false)
		case "7":
			fmt.Println("Thank you for using Todo Application. Goodbye!")
			return
		default:
			fmt.Printf("Error: invalid option %q, choose a number between 1 and 7\n", choice)
		}
	}
}

func printMenu() {
	fmt.Println()
	fmt.Println("1. Add Task")
	fmt.Println("2. View Tasks")
	fmt.Println("3. Update Task")
	fmt.Println("4. Delete Task")
	fmt.Println("5. Mark Task as Complete")
	fmt.Println("6. Mark Task as Incomplete")
	fmt.Println("7. Exit")
	fmt.Print("Choose an option (1-7): ")
}

func readLine(reader *bufio.Scanner) (string, bool) {
	if !reader.Scan() {
		return "", false
	}
	return strings.TrimSpace(reader.Text()), true
}

func prompt(reader *bufio.Scanner, label string) (string, bool) {
	fmt.Print(label)
	return readLine(reader)
}

func promptTaskID(reader *bufio.Scanner, label string) (uint, bool) {
	raw, ok := prompt(reader, label)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		fmt.Println("Error: Task ID must be a valid integer")
		return 0, false
	}
	return uint(id), true
}

func addTask(store *memstore.Store, reader *bufio.Scanner) {
	fmt.Println("--- Add New Task ---")

	var title string
	for {
		raw, ok := prompt(reader, "Enter task title: ")
		if !ok {
			return
		}
		switch {
		case raw == "":
			fmt.Println("Error: Task title cannot be empty")
		case len(raw) > maxTitleLength:
			fmt.Printf("Error: Task title must be between 1 and %d characters\n", maxTitleLength)
		default:
			title = raw
		}
		if title != "" {
			break
		}
	}

	raw, ok := prompt(reader, "Enter task description (optional): ")
	if !ok {
		return
	}
	var description *string
	if raw != "" {
		description = &raw
	}

	t := store.Add(title, description)
	fmt.Printf("Task added successfully with ID #%d\n", t.ID)
}

func viewTasks(store *memstore.Store) {
	tasks := store.All()
	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return
	}

	fmt.Printf("%-4s %-30s %-30s %-9s %-16s %-16s\n", "ID", "Title", "Description", "Status", "Created", "Updated")
	for _, t := range tasks {
		description := "None"
		if t.Description != nil {
			description = *t.Description
		}
		status := "Pending"
		if t.Completed {
			status = "Completed"
		}
		fmt.Printf("%-4d %-30s %-30s %-9s %-16s %-16s\n",
			t.ID, t.Title, description, status,
			t.CreatedAt.Format("2006-01-02 15:04"),
			t.UpdatedAt.Format("2006-01-02 15:04"))
	}
}

func updateTask(store *memstore.Store, reader *bufio.Scanner) {
	id, ok := promptTaskID(reader, "Enter task ID to update: ")
	if !ok {
		return
	}
	if _, exists := store.Get(id); !exists {
		fmt.Printf("Error: Task with ID %d does not exist\n", id)
		return
	}

	rawTitle, ok := prompt(reader, "Enter new title (leave blank to keep current): ")
	if !ok {
		return
	}
	var title *string
	if rawTitle != "" {
		if len(rawTitle) > maxTitleLength {
			fmt.Printf("Error: Task title must be between 1 and %d characters\n", maxTitleLength)
			return
		}
		title = &rawTitle
	}

	rawDescription, ok := prompt(reader, "Enter new description (leave blank to keep current): ")
	if !ok {
		return
	}
	var description *string
	if rawDescription != "" {
		description = &rawDescription
	}

	if t, updated := store.Update(id, title, description); updated {
		fmt.Printf("Task #%d updated successfully.\n", t.ID)
	} else {
		fmt.Printf("Error: Failed to update task with ID %d\n", id)
	}
}

func deleteTask(store *memstore.Store, reader *bufio.Scanner) {
	id, ok := promptTaskID(reader, "Enter task ID to delete: ")
	if !ok {
		return
	}
	if _, exists := store.Get(id); !exists {
		fmt.Printf("Error: Task with ID %d does not exist\n", id)
		return
	}

	answer, ok := prompt(reader, fmt.Sprintf("Are you sure you want to delete task #%d? (y/n): ", id))
	if !ok {
		return
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		if store.Delete(id) {
			fmt.Printf("Task #%d deleted successfully.\n", id)
		} else {
			fmt.Printf("Error: Failed to delete task with ID %d\n", id)
		}
	case "n", "no":
		fmt.Println("Delete operation cancelled.")
	default:
		fmt.Println("Error: Please answer y or n")
	}
}

func setCompletion(store *memstore.Store, reader *bufio.Scanner, completed bool) {
	verb := "complete"
	if !completed {
		verb = "incomplete"
	}
	id, ok := promptTaskID(reader, fmt.Sprintf("Enter task ID to mark as %s: ", verb))
	if !ok {
		return
	}

	t, exists := store.Get(id)
	if !exists {
		fmt.Printf("Error: Task with ID %d does not exist\n", id)
		return
	}
	if t.Completed == completed {
		if completed {
			fmt.Println("Error: Task is already completed.")
		} else {
			fmt.Println("Error: Task is already pending.")
		}
		return
	}

	updated, _ := store.SetCompleted(id, completed)
	if completed {
		fmt.Printf("Task #%d marked as completed.\n", updated.ID)
	} else {
		fmt.Printf("Task #%d marked as pending.\n", updated.ID)
	}
}
