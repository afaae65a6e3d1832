package models

import "time"

// TodoItem is a task on the marina to-do list.
type TodoItem struct {
	ID          int64     `json:"id"`
	Task        string    `json:"task"`
	IsCompleted bool      `json:"is_completed"`
	CreatedAt   time.Time `json:"created_at"`
}
