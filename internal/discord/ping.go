package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

type PingCommand struct{}

func NewPingCommand() *PingCommand { return &PingCommand{} }

func (c *PingCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "ping",
		Description: "Replies with Pong and latency.",
	}
}

func (c *PingCommand) Handle(_ context.Context, s *discordgo.Session, ic *discordgo.InteractionCreate) error {
	return pingReply(s, ic)
}

// pingReply sends a placeholder, then edits it with the measured round trip.
func pingReply(s *discordgo.Session, ic *discordgo.InteractionCreate) error {
	if err := respond(s, ic, "Pinging..."); err != nil {
		return err
	}

	sent, err := s.InteractionResponse(ic.Interaction)
	if err != nil {
		return fmt.Errorf("fetching ping response: %w", err)
	}

	created, err := discordgo.SnowflakeTimestamp(ic.ID)
	if err != nil {
		return fmt.Errorf("parsing interaction id: %w", err)
	}

	content := fmt.Sprintf("🏓 Pong! Latency is **%dms**", sent.Timestamp.Sub(created).Milliseconds())

	_, err = s.InteractionResponseEdit(ic.Interaction, &discordgo.WebhookEdit{Content: &content})

	return err
}
