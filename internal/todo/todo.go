package todo

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a todo does not exist or is owned by another user.
var ErrNotFound = errors.New("todo not found")

// Todo is a single to-do item owned by one Discord user.
type Todo struct {
	ID        int64
	UserID    string
	Text      string
	CreatedAt time.Time
}
