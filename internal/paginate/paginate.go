// Package paginate implements the interactive embed pagination used by the
// list commands. A Session presents a fixed snapshot of records in
// fixed-size pages, lets the invoking user step through them with buttons,
// and disables itself after an idle window.
package paginate

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
)

const (
	// DefaultPageSize is used when the command's per-page option is omitted.
	DefaultPageSize = 5

	// DefaultTimeout is the interactive window. It is armed once when the
	// session starts and is deliberately not renewed by activity.
	DefaultTimeout = 60 * time.Second

	embedColor = 0x0099ff

	eventBuffer = 8
)

// Renderer is the per-domain display strategy.
type Renderer[T any] interface {
	// Empty is the static reply sent when there is nothing to page through.
	Empty() string
	// Format renders one record as its embed line group.
	Format(item T) string
	// Noun is the plural noun used in footers and placeholders.
	Noun() string
}

// Messenger is the slice of the chat platform a session needs. The production
// implementation wraps a discordgo session; tests substitute a fake.
type Messenger interface {
	// Respond sends a plain text reply to the invoking command.
	Respond(content string) error
	// RespondEmbed sends an embed reply and returns the created message.
	RespondEmbed(embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) (*discordgo.Message, error)
	// Update edits the bound message in place as the response to a button event.
	Update(event *discordgo.Interaction, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) error
	// Ephemeral replies to a button event with a message only its actor sees.
	Ephemeral(event *discordgo.Interaction, content string) error
	// Edit rewrites the bound message outside of any interaction.
	Edit(channelID, messageID string, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) error
}

type Config[T any] struct {
	Items     []T
	PageSize  int // must be positive; range enforcement belongs to the command options
	Title     string
	UserID    string // the only user allowed to drive page changes
	Prefix    string // control id prefix, e.g. "todo" -> todo_prev / todo_page_info / todo_next
	Renderer  Renderer[T]
	Messenger Messenger
	Registry  *Registry
	Timeout   time.Duration // defaults to DefaultTimeout
	Logger    *slog.Logger
}

// Session is one pagination instance bound to a single message and a single
// authorized user. Items are snapshotted at construction and never refreshed.
type Session[T any] struct {
	id        uuid.UUID
	items     []T
	pageSize  int
	page      int
	title     string
	userID    string
	prefix    string
	renderer  Renderer[T]
	messenger Messenger
	registry  *Registry
	timeout   time.Duration
	log       *slog.Logger
}

func New[T any](cfg Config[T]) *Session[T] {
	if cfg.PageSize <= 0 {
		panic("paginate: page size must be positive")
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &Session[T]{
		id:        uuid.New(),
		items:     cfg.Items,
		pageSize:  cfg.PageSize,
		title:     cfg.Title,
		userID:    cfg.UserID,
		prefix:    cfg.Prefix,
		renderer:  cfg.Renderer,
		messenger: cfg.Messenger,
		registry:  cfg.Registry,
		timeout:   cfg.Timeout,
		log:       cfg.Logger,
	}
}

// TotalPages is zero when the session holds no items.
func (s *Session[T]) TotalPages() int {
	return (len(s.items) + s.pageSize - 1) / s.pageSize
}

// Start renders the first page. With nothing to show it sends a single static
// reply; with exactly one page it sends the embed without controls. Only when
// there is more than one page does it attach buttons, bind the message in the
// registry, and hand the session to its own goroutine until the window closes.
func (s *Session[T]) Start(ctx context.Context) error {
	if len(s.items) == 0 {
		return s.messenger.Respond(s.renderer.Empty())
	}

	if s.TotalPages() == 1 {
		_, err := s.messenger.RespondEmbed(s.embed(), nil)
		return err
	}

	msg, err := s.messenger.RespondEmbed(s.embed(), s.buttons(false))
	if err != nil {
		return err
	}

	events := make(chan *discordgo.InteractionCreate, eventBuffer)
	s.registry.bind(msg.ID, events)

	go s.run(ctx, msg, events)

	return nil
}

// run owns all mutable session state. Button events are consumed one at a
// time in arrival order, so page stepping needs no locking. The timer is
// armed exactly once; expiry performs the final disabled render.
func (s *Session[T]) run(ctx context.Context, msg *discordgo.Message, events <-chan *discordgo.InteractionCreate) {
	defer s.registry.unbind(msg.ID)

	timer := time.NewTimer(s.timeout)
	defer timer.Stop()

	for {
		select {
		case ic := <-events:
			s.collect(ic)
		case <-timer.C:
			// The message may have been deleted in the meantime. That is
			// expected; the session just ends without a visual change.
			if err := s.messenger.Edit(msg.ChannelID, msg.ID, s.embed(), s.buttons(true)); err != nil {
				s.log.Info("could not disable pagination buttons",
					"session", s.id, "prefix", s.prefix, "error", err)
			}

			return
		case <-ctx.Done():
			return
		}
	}
}

func (s *Session[T]) collect(ic *discordgo.InteractionCreate) {
	actor := interactionUser(ic)
	if actor == nil || actor.ID != s.userID {
		if err := s.messenger.Ephemeral(ic.Interaction, "❌ These buttons are not for you!"); err != nil {
			s.log.Info("could not send rejection", "session", s.id, "error", err)
		}

		return
	}

	s.step(ic.MessageComponentData().CustomID)

	if err := s.messenger.Update(ic.Interaction, s.embed(), s.buttons(false)); err != nil {
		s.log.Info("could not update pagination message", "session", s.id, "error", err)
	}
}

// step applies one control click, clamped at either end.
func (s *Session[T]) step(customID string) {
	switch customID {
	case s.prefix + "_prev":
		if s.page > 0 {
			s.page--
		}
	case s.prefix + "_next":
		if s.page < s.TotalPages()-1 {
			s.page++
		}
	}
}

func (s *Session[T]) pageSlice() []T {
	start := s.page * s.pageSize
	if start >= len(s.items) {
		return nil
	}

	end := min(start+s.pageSize, len(s.items))

	return s.items[start:end]
}

func (s *Session[T]) embed() *discordgo.MessageEmbed {
	page := s.pageSlice()

	var body string

	if len(page) == 0 {
		body = fmt.Sprintf("No %s found on this page.", s.renderer.Noun())
	} else {
		lines := make([]string, len(page))
		for i, item := range page {
			lines[i] = s.renderer.Format(item)
		}

		body = strings.Join(lines, "\n")
	}

	return &discordgo.MessageEmbed{
		Title:       s.title,
		Description: body,
		Color:       embedColor,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Page %d of %d • Total: %d %s",
				s.page+1, s.TotalPages(), len(s.items), s.renderer.Noun()),
		},
	}
}

func (s *Session[T]) buttons(expired bool) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					CustomID: s.prefix + "_prev",
					Label:    "⬅️ Previous",
					Style:    discordgo.PrimaryButton,
					Disabled: expired || s.page == 0,
				},
				discordgo.Button{
					CustomID: s.prefix + "_page_info",
					Label:    fmt.Sprintf("%d/%d", s.page+1, s.TotalPages()),
					Style:    discordgo.SecondaryButton,
					Disabled: true,
				},
				discordgo.Button{
					CustomID: s.prefix + "_next",
					Label:    "Next ➡️",
					Style:    discordgo.PrimaryButton,
					Disabled: expired || s.page == s.TotalPages()-1,
				},
			},
		},
	}
}

// interactionUser returns the acting user for guild and DM interactions alike.
func interactionUser(ic *discordgo.InteractionCreate) *discordgo.User {
	if ic.Member != nil {
		return ic.Member.User
	}

	return ic.User
}
