package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/adrnf/catet/internal/config"
	"github.com/adrnf/catet/internal/database"
	"github.com/adrnf/catet/internal/discord"
	catetHttp "github.com/adrnf/catet/internal/http"
	"github.com/adrnf/catet/internal/http/health"
	"github.com/adrnf/catet/internal/ledger"
	ledgerStore "github.com/adrnf/catet/internal/ledger/store"
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := database.Migrate(ctx, db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	var (
		todoService     = todo.NewService(todoStore.New(db))
		expenseService  = ledger.NewService(ledgerStore.New(db, "expenses"))
		cashflowService = ledger.NewService(ledgerStore.New(db, "cashflows"))
	)

	bot, err := discord.New(cfg, todoService, expenseService, cashflowService)
	if err != nil {
		slog.Error("failed to create bot", "error", err)
		os.Exit(1)
	}

	if err := bot.Start(ctx); err != nil {
		slog.Error("failed to start bot", "error", err)
		os.Exit(1)
	}
	defer bot.Close()

	healthH := health.NewHandler(db, cfg.App.Name, time.Now())
	router := catetHttp.New(healthH)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		slog.Info("health server listening", "addr", srv.Addr)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("health server failed", "error", err)
		}
	}()

	slog.Info("bot running", "app", cfg.App.Name)

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("health server shutdown failed", "error", err)
	}
}
