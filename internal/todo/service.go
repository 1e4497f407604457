package todo

import (
	"context"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=todo
type Repository interface {
	CreateTodo(ctx context.Context, t *Todo) error
	ListTodos(ctx context.Context, userID string) ([]*Todo, error)
	UpdateTodo(ctx context.Context, id int64, userID, text string) error
	DeleteTodo(ctx context.Context, id int64, userID string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, userID, text string) (*Todo, error) {
	t := &Todo{
		UserID: userID,
		Text:   text,
	}
	if err := s.repo.CreateTodo(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

// List returns the user's todos ordered by id ascending.
func (s *Service) List(ctx context.Context, userID string) ([]*Todo, error) {
	return s.repo.ListTodos(ctx, userID)
}

func (s *Service) Update(ctx context.Context, id int64, userID, text string) error {
	return s.repo.UpdateTodo(ctx, id, userID, text)
}

// Delete removes the todo row entirely. Todos are not soft-deleted.
func (s *Service) Delete(ctx context.Context, id int64, userID string) error {
	return s.repo.DeleteTodo(ctx, id, userID)
}
