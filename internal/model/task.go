package model

import "fmt"

// Task is the domain model for a todo entry.
// Field order is the on-disk key order.
type Task struct {
	ID          int    `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Done        bool   `json:"done" yaml:"done"`
}

func (t Task) String() string {
	return fmt.Sprintf("Task{id: %d, title: %q, description: %q, done: %t}", t.ID, t.Title, t.Description, t.Done)
}
