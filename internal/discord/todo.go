package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/adrnf/catet/internal/paginate"
	"github.com/adrnf/catet/internal/todo"
)

type TodoCommand struct {
	svc      *todo.Service
	registry *paginate.Registry
	timeout  time.Duration
}

func NewTodoCommand(svc *todo.Service, registry *paginate.Registry, timeout time.Duration) *TodoCommand {
	return &TodoCommand{svc: svc, registry: registry, timeout: timeout}
}

func (c *TodoCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "todo",
		Description: "Manage your todos",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "add",
				Description: "Add a new todo",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "text",
						Description: "What to do?",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "list",
				Description: "Show your todos",
				Options: []*discordgo.ApplicationCommandOption{
					perPageOption("todos"),
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "update",
				Description: "Update a todo",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "id",
						Description: "Todo ID",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "text",
						Description: "New todo",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "delete",
				Description: "Delete a todo",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "id",
						Description: "Todo ID",
						Required:    true,
					},
				},
			},
		},
	}
}

func (c *TodoCommand) Handle(ctx context.Context, s *discordgo.Session, ic *discordgo.InteractionCreate) error {
	userID := actorID(ic)
	sub := ic.ApplicationCommandData().Options[0]
	opts := options(sub.Options)

	switch sub.Name {
	case "add":
		text := opts["text"].StringValue()

		created, err := c.svc.Create(ctx, userID, text)
		if err != nil {
			slog.Error("failed to add todo", "user", userID, "error", err)
			return respond(s, ic, "❌ Failed to add todo. Please try again.")
		}

		return respond(s, ic, fmt.Sprintf("✅ Added todo **#%d**: %s", created.ID, text))

	case "list":
		todos, err := c.svc.List(ctx, userID)
		if err != nil {
			slog.Error("failed to fetch todos", "user", userID, "error", err)
			return respond(s, ic, "❌ Failed to fetch todos. Please try again.")
		}

		session := paginate.New(paginate.Config[*todo.Todo]{
			Items:     todos,
			PageSize:  opts.perPage(),
			Title:     "📝 Your Todos",
			UserID:    userID,
			Prefix:    "todo",
			Renderer:  todoRenderer{},
			Messenger: newMessenger(s, ic),
			Registry:  c.registry,
			Timeout:   c.timeout,
		})

		return session.Start(ctx)

	case "update":
		id := opts["id"].IntValue()
		text := opts["text"].StringValue()

		err := c.svc.Update(ctx, id, userID, text)
		switch {
		case errors.Is(err, todo.ErrNotFound):
			return respond(s, ic, "❌ Todo not found.")
		case err != nil:
			slog.Error("failed to update todo", "user", userID, "id", id, "error", err)
			return respond(s, ic, "❌ Failed to update todo. Please try again.")
		}

		return respond(s, ic, fmt.Sprintf("✏️ Updated todo **#%d**.", id))

	case "delete":
		id := opts["id"].IntValue()

		err := c.svc.Delete(ctx, id, userID)
		switch {
		case errors.Is(err, todo.ErrNotFound):
			return respond(s, ic, "❌ Todo not found.")
		case err != nil:
			slog.Error("failed to delete todo", "user", userID, "id", id, "error", err)
			return respond(s, ic, "❌ Failed to delete todo. Please try again.")
		}

		return respond(s, ic, fmt.Sprintf("🗑️ Deleted todo **#%d**.", id))
	}

	return nil
}
