// Package discord wires the slash commands, interaction dispatch, and
// pagination sessions to a Discord gateway connection.
package discord

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/adrnf/catet/internal/config"
	"github.com/adrnf/catet/internal/ledger"
	"github.com/adrnf/catet/internal/paginate"
	"github.com/adrnf/catet/internal/todo"
)

// Version is reported by /app stats.
const Version = "1.1.0"

// Handler is one top-level slash command.
type Handler interface {
	Definition() *discordgo.ApplicationCommand
	Handle(ctx context.Context, s *discordgo.Session, ic *discordgo.InteractionCreate) error
}

type Bot struct {
	cfg      *config.Config
	session  *discordgo.Session
	registry *paginate.Registry
	handlers map[string]Handler

	startedAt time.Time

	// ctx bounds every pagination session; cancelled on shutdown.
	ctx context.Context
}

func New(cfg *config.Config, todos *todo.Service, expenses, cashflows *ledger.Service) (*Bot, error) {
	session, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		return nil, fmt.Errorf("creating discord session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuilds

	b := &Bot{
		cfg:       cfg,
		session:   session,
		registry:  paginate.NewRegistry(),
		handlers:  make(map[string]Handler),
		startedAt: time.Now(),
	}

	commands := []Handler{
		NewTodoCommand(todos, b.registry, cfg.Pagination.Timeout),
		NewExpenseCommand(expenses, b.registry, cfg.Pagination.Timeout),
		NewCashflowCommand(cashflows, b.registry, cfg.Pagination.Timeout),
		NewClearCommand(),
		NewPingCommand(),
		NewUserCommand(),
		NewAppCommand(b.startedAt),
	}

	for _, cmd := range commands {
		b.handlers[cmd.Definition().Name] = cmd
	}

	session.AddHandler(b.onReady)
	session.AddHandler(b.onInteraction)

	return b, nil
}

// Start opens the gateway connection and bulk-overwrites the guild's slash
// commands with the bot's current set.
func (b *Bot) Start(ctx context.Context) error {
	b.ctx = ctx

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("opening gateway: %w", err)
	}

	defs := make([]*discordgo.ApplicationCommand, 0, len(b.handlers))
	for _, h := range b.handlers {
		defs = append(defs, h.Definition())
	}

	if _, err := b.session.ApplicationCommandBulkOverwrite(b.cfg.Discord.AppID, b.cfg.Discord.GuildID, defs); err != nil {
		return fmt.Errorf("registering guild commands: %w", err)
	}

	slog.Info("slash commands registered", "guild", b.cfg.Discord.GuildID, "count", len(defs))

	return nil
}

func (b *Bot) Close() error {
	return b.session.Close()
}

func (b *Bot) onReady(s *discordgo.Session, _ *discordgo.Ready) {
	slog.Info("logged in", "user", s.State.User.Username+"#"+s.State.User.Discriminator)
}

// onInteraction is the single entry point for both slash commands and button
// clicks. Nothing propagates past it: a handler error is logged and reported
// to the invoking user with a generic message.
func (b *Bot) onInteraction(s *discordgo.Session, ic *discordgo.InteractionCreate) {
	switch ic.Type {
	case discordgo.InteractionApplicationCommand:
		name := ic.ApplicationCommandData().Name

		h, ok := b.handlers[name]
		if !ok {
			return
		}

		if err := h.Handle(b.ctx, s, ic); err != nil {
			slog.Error("command failed", "command", name, "error", err)

			if err := respondEphemeral(s, ic, "There was an error executing this command."); err != nil {
				slog.Error("could not report command failure", "command", name, "error", err)
			}
		}
	case discordgo.InteractionMessageComponent:
		if !b.registry.Dispatch(ic) {
			// Click on a message whose session already expired.
			slog.Debug("component event with no live session",
				"custom_id", ic.MessageComponentData().CustomID)
		}
	}
}
