package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/adrnf/catet/internal/todo"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateTodo(ctx context.Context, t *todo.Todo) error {
	query := `
		INSERT INTO todos (user_id, text)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query, t.UserID, t.Text).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating todo: %w", err)
	}

	return nil
}

func (s *Store) ListTodos(ctx context.Context, userID string) ([]*todo.Todo, error) {
	query := `
		SELECT id, user_id, text, created_at
		FROM todos
		WHERE user_id = $1
		ORDER BY id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing todos: %w", err)
	}
	defer rows.Close()

	var todos []*todo.Todo

	for rows.Next() {
		var t todo.Todo
		if err := rows.Scan(&t.ID, &t.UserID, &t.Text, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning todo: %w", err)
		}

		todos = append(todos, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating todo rows: %w", err)
	}

	return todos, nil
}

func (s *Store) UpdateTodo(ctx context.Context, id int64, userID, text string) error {
	query := `
		UPDATE todos
		SET text = $1
		WHERE id = $2 AND user_id = $3
	`

	res, err := s.db.ExecContext(ctx, query, text, id, userID)
	if err != nil {
		return fmt.Errorf("updating todo: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating todo: %w", err)
	}

	if affected == 0 {
		return todo.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteTodo(ctx context.Context, id int64, userID string) error {
	query := `
		DELETE FROM todos
		WHERE id = $1 AND user_id = $2
	`

	res, err := s.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("deleting todo: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting todo: %w", err)
	}

	if affected == 0 {
		return todo.ErrNotFound
	}

	return nil
}
