// Command seed runs a create/list/update/delete round trip against the todos
// table. It is a smoke test for database connectivity and the store layer.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/adrnf/catet/internal/config"
	"github.com/adrnf/catet/internal/database"
	"github.com/adrnf/catet/internal/todo"
	todoStore "github.com/adrnf/catet/internal/todo/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()

	if err := database.Migrate(ctx, db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	svc := todo.NewService(todoStore.New(db))

	const seedUser = "seed-user"

	created, err := svc.Create(ctx, seedUser, "Hello todo")
	if err != nil {
		slog.Error("failed to create todo", "error", err)
		os.Exit(1)
	}

	slog.Info("new todo created", "id", created.ID)

	todos, err := svc.List(ctx, seedUser)
	if err != nil {
		slog.Error("failed to list todos", "error", err)
		os.Exit(1)
	}

	slog.Info("listed todos", "count", len(todos))

	if err := svc.Update(ctx, created.ID, seedUser, "Updated todo"); err != nil {
		slog.Error("failed to update todo", "error", err)
		os.Exit(1)
	}

	slog.Info("todo updated", "id", created.ID)

	if err := svc.Delete(ctx, created.ID, seedUser); err != nil {
		slog.Error("failed to delete todo", "error", err)
		os.Exit(1)
	}

	slog.Info("todo deleted", "id", created.ID)
}
