package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/shopspring/decimal"

	"github.com/adrnf/catet/internal/ledger"
	"github.com/adrnf/catet/internal/paginate"
)

// entryCommand implements both /expense and /cashflow. The two commands run
// identical state machines over different tables; only naming, titles, and
// currency policy differ.
type entryCommand struct {
	svc      *ledger.Service
	registry *paginate.Registry
	timeout  time.Duration

	name       string // command name and control-id prefix
	label      string // capitalized singular for user-facing messages
	noun       string // plural
	listTitle  string
	todayTitle string
	money      MoneyFormatter
}

func NewExpenseCommand(svc *ledger.Service, registry *paginate.Registry, timeout time.Duration) *entryCommand {
	return &entryCommand{
		svc:        svc,
		registry:   registry,
		timeout:    timeout,
		name:       "expense",
		label:      "Expense",
		noun:       "expenses",
		listTitle:  "💰 Your Expenses",
		todayTitle: "📅 Today's Expenses",
		money:      usd,
	}
}

func NewCashflowCommand(svc *ledger.Service, registry *paginate.Registry, timeout time.Duration) *entryCommand {
	return &entryCommand{
		svc:        svc,
		registry:   registry,
		timeout:    timeout,
		name:       "cashflow",
		label:      "Cashflow",
		noun:       "cashflows",
		listTitle:  "💰 Your Cashflows",
		todayTitle: "📅 Today's Cashflows",
		money:      idr,
	}
}

func typeChoices() []*discordgo.ApplicationCommandOptionChoice {
	return []*discordgo.ApplicationCommandOptionChoice{
		{Name: "Expense", Value: int(ledger.TypeExpense)},
		{Name: "Income", Value: int(ledger.TypeIncome)},
	}
}

func (c *entryCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.name,
		Description: "Manage your " + c.noun,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "add",
				Description: "Add a new " + c.name,
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "name",
						Description: c.label + " name/description",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionNumber,
						Name:        "amount",
						Description: c.label + " amount",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "account",
						Description: "Account used for transaction",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "type",
						Description: "Transaction type (0 = expense, 1 = income)",
						Required:    true,
						Choices:     typeChoices(),
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "date",
						Description: "Transaction date (YYYY-MM-DD HH:MM, default: now)",
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "list",
				Description: "Show your " + c.noun,
				Options: []*discordgo.ApplicationCommandOption{
					perPageOption(c.noun),
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "today",
				Description: "Show today's " + c.noun,
				Options: []*discordgo.ApplicationCommandOption{
					perPageOption(c.noun),
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "edit",
				Description: "Edit a " + c.name,
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "id",
						Description: c.label + " ID",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "name",
						Description: "New " + c.name + " name/description",
					},
					{
						Type:        discordgo.ApplicationCommandOptionNumber,
						Name:        "amount",
						Description: "New " + c.name + " amount",
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "account",
						Description: "New account",
					},
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "type",
						Description: "New transaction type",
						Choices:     typeChoices(),
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "delete",
				Description: "Delete a " + c.name + " (soft delete)",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "id",
						Description: c.label + " ID",
						Required:    true,
					},
				},
			},
		},
	}
}

func (c *entryCommand) Handle(ctx context.Context, s *discordgo.Session, ic *discordgo.InteractionCreate) error {
	userID := actorID(ic)
	sub := ic.ApplicationCommandData().Options[0]
	opts := options(sub.Options)

	switch sub.Name {
	case "add":
		return c.add(ctx, s, ic, userID, opts)
	case "list":
		return c.browse(ctx, s, ic, userID, opts, c.listTitle, nil)
	case "today":
		now := time.Now()
		return c.browse(ctx, s, ic, userID, opts, c.todayTitle, &now)
	case "edit":
		return c.edit(ctx, s, ic, userID, opts)
	case "delete":
		return c.delete(ctx, s, ic, userID, opts)
	}

	return nil
}

func (c *entryCommand) add(ctx context.Context, s *discordgo.Session, ic *discordgo.InteractionCreate, userID string, opts optionSet) error {
	occurredAt := time.Now()

	if opt, ok := opts["date"]; ok {
		parsed, err := parseDate(opt.StringValue())
		if err != nil {
			return respond(s, ic, "❌ Invalid date format. Use YYYY-MM-DD HH:MM format.")
		}

		occurredAt = parsed
	}

	params := ledger.CreateParams{
		UserID:     userID,
		Name:       opts["name"].StringValue(),
		Amount:     decimal.NewFromFloat(opts["amount"].FloatValue()),
		Account:    opts["account"].StringValue(),
		Type:       ledger.TxType(opts["type"].IntValue()),
		OccurredAt: occurredAt,
	}

	created, err := c.svc.Create(ctx, params)
	if err != nil {
		slog.Error("failed to add entry", "command", c.name, "user", userID, "error", err)
		return respond(s, ic, fmt.Sprintf("❌ Failed to add %s. Please try again.", c.name))
	}

	return respond(s, ic, fmt.Sprintf("✅ Added %s **#%d**: %s\n%s %s from %s",
		created.Type, created.ID, created.Name,
		typeIcon(created.Type), c.money.Format(created.Amount), created.Account))
}

func (c *entryCommand) browse(ctx context.Context, s *discordgo.Session, ic *discordgo.InteractionCreate, userID string, opts optionSet, title string, today *time.Time) error {
	var (
		entries []*ledger.Entry
		err     error
	)

	if today != nil {
		entries, err = c.svc.ListToday(ctx, userID, *today)
	} else {
		entries, err = c.svc.List(ctx, userID, ledger.ListFilter{})
	}

	if err != nil {
		slog.Error("failed to fetch entries", "command", c.name, "user", userID, "error", err)
		return respond(s, ic, fmt.Sprintf("❌ Failed to fetch %s. Please try again.", c.noun))
	}

	session := paginate.New(paginate.Config[*ledger.Entry]{
		Items:     entries,
		PageSize:  opts.perPage(),
		Title:     title,
		UserID:    userID,
		Prefix:    c.name,
		Renderer:  entryRenderer{noun: c.noun, money: c.money},
		Messenger: newMessenger(s, ic),
		Registry:  c.registry,
		Timeout:   c.timeout,
	})

	return session.Start(ctx)
}

// entryPatch builds a sparse patch from the provided edit options.
func entryPatch(opts optionSet) ledger.Patch {
	var patch ledger.Patch

	if opt, ok := opts["name"]; ok {
		name := opt.StringValue()
		patch.Name = &name
	}

	if opt, ok := opts["amount"]; ok {
		amount := decimal.NewFromFloat(opt.FloatValue())
		patch.Amount = &amount
	}

	if opt, ok := opts["account"]; ok {
		account := opt.StringValue()
		patch.Account = &account
	}

	if opt, ok := opts["type"]; ok {
		typ := ledger.TxType(opt.IntValue())
		patch.Type = &typ
	}

	return patch
}

func (c *entryCommand) edit(ctx context.Context, s *discordgo.Session, ic *discordgo.InteractionCreate, userID string, opts optionSet) error {
	id := opts["id"].IntValue()

	err := c.svc.Update(ctx, id, userID, entryPatch(opts))
	switch {
	case errors.Is(err, ledger.ErrEmptyPatch):
		return respond(s, ic, "❌ Please provide at least one field to update.")
	case errors.Is(err, ledger.ErrNotFound):
		return respond(s, ic, fmt.Sprintf("❌ %s not found or already deleted.", c.label))
	case err != nil:
		slog.Error("failed to update entry", "command", c.name, "user", userID, "id", id, "error", err)
		return respond(s, ic, fmt.Sprintf("❌ Failed to update %s. Please try again.", c.name))
	}

	return respond(s, ic, fmt.Sprintf("✏️ Updated %s **#%d**.", c.name, id))
}

func (c *entryCommand) delete(ctx context.Context, s *discordgo.Session, ic *discordgo.InteractionCreate, userID string, opts optionSet) error {
	id := opts["id"].IntValue()

	err := c.svc.SoftDelete(ctx, id, userID)
	switch {
	case errors.Is(err, ledger.ErrNotFound):
		return respond(s, ic, fmt.Sprintf("❌ %s not found or already deleted.", c.label))
	case err != nil:
		slog.Error("failed to delete entry", "command", c.name, "user", userID, "id", id, "error", err)
		return respond(s, ic, fmt.Sprintf("❌ Failed to delete %s. Please try again.", c.name))
	}

	return respond(s, ic, fmt.Sprintf("🗑️ Deleted %s **#%d**.", c.name, id))
}
