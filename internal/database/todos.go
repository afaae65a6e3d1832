package database

import (
	"context"
	"database/sql"
	"fmt"

	"marina/internal/models"
)

// ListTodos returns todo items, newest first.
func (db *DB) ListTodos(ctx context.Context) ([]models.TodoItem, error) {
	rows, err := db.QueryContext(ctx, `SELECT id, task, is_completed, created_at
		FROM todos ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query todos: %w", err)
	}
	defer rows.Close()

	var out []models.TodoItem
	for rows.Next() {
		var item models.TodoItem
		if err := rows.Scan(&item.ID, &item.Task, &item.IsCompleted, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan todo: %w", err)
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// CreateTodo inserts a new task and returns it with id and timestamp set.
func (db *DB) CreateTodo(ctx context.Context, task string) (*models.TodoItem, error) {
	result, err := db.ExecContext(ctx, `INSERT INTO todos (task) VALUES (?)`, task)
	if err != nil {
		return nil, fmt.Errorf("insert todo: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	var item models.TodoItem
	row := db.QueryRowContext(ctx, `SELECT id, task, is_completed, created_at FROM todos WHERE id = ?`, id)
	if err := row.Scan(&item.ID, &item.Task, &item.IsCompleted, &item.CreatedAt); err != nil {
		return nil, fmt.Errorf("read back todo %d: %w", id, err)
	}
	return &item, nil
}

// SetTodoCompleted flips a task's completion flag.
func (db *DB) SetTodoCompleted(ctx context.Context, id int64, completed bool) error {
	result, err := db.ExecContext(ctx, `UPDATE todos SET is_completed = ? WHERE id = ?`, completed, id)
	if err != nil {
		return fmt.Errorf("update todo %d: %w", id, err)
	}
	return requireAffected(result)
}

// DeleteTodo removes a task by id.
func (db *DB) DeleteTodo(ctx context.Context, id int64) error {
	result, err := db.ExecContext(ctx, `DELETE FROM todos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete todo %d: %w", id, err)
	}
	return requireAffected(result)
}

func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
