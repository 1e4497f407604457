package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

type ClearCommand struct{}

func NewClearCommand() *ClearCommand { return &ClearCommand{} }

func (c *ClearCommand) Definition() *discordgo.ApplicationCommand {
	permissions := int64(discordgo.PermissionManageMessages)

	return &discordgo.ApplicationCommand{
		Name:                     "clear",
		Description:              "Delete a number of recent messages.",
		DefaultMemberPermissions: &permissions,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "amount",
				Description: "Number of messages to delete (1–100)",
				Required:    true,
			},
		},
	}
}

func (c *ClearCommand) Handle(_ context.Context, s *discordgo.Session, ic *discordgo.InteractionCreate) error {
	amount := options(ic.ApplicationCommandData().Options)["amount"].IntValue()

	return bulkClear(s, ic, int(amount))
}

// bulkClear removes up to 100 recent messages from the invoking channel. It
// backs both /clear and /app chat clean.
func bulkClear(s *discordgo.Session, ic *discordgo.InteractionCreate, amount int) error {
	if amount < 1 || amount > 100 {
		return respondEphemeral(s, ic, "Please provide a number between 1 and 100.")
	}

	msgs, err := s.ChannelMessages(ic.ChannelID, amount, "", "", "")
	if err == nil {
		ids := make([]string, len(msgs))
		for i, m := range msgs {
			ids[i] = m.ID
		}

		err = s.ChannelMessagesBulkDelete(ic.ChannelID, ids)
	}

	if err != nil {
		slog.Error("bulk delete failed", "channel", ic.ChannelID, "error", err)
		return respondEphemeral(s, ic, "❌ Failed to delete messages. Do I have permission?")
	}

	return respondEphemeral(s, ic, fmt.Sprintf("🧹 Deleted %d messages.", len(msgs)))
}
