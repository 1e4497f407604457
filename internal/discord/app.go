package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
)

type AppCommand struct {
	startedAt time.Time
}

func NewAppCommand(startedAt time.Time) *AppCommand {
	return &AppCommand{startedAt: startedAt}
}

func (c *AppCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "app",
		Description: "Replies with information about the bot.",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "ping",
				Description: "Show app ping.",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "stats",
				Description: "Show app stats.",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
				Name:        "chat",
				Description: "Chat related commands.",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionSubCommand,
						Name:        "clean",
						Description: "Clean an amount of messages",
						Options: []*discordgo.ApplicationCommandOption{
							{
								Type:        discordgo.ApplicationCommandOptionInteger,
								Name:        "amount",
								Description: "Amount of messages to clean",
								Required:    true,
							},
						},
					},
				},
			},
		},
	}
}

func (c *AppCommand) Handle(_ context.Context, s *discordgo.Session, ic *discordgo.InteractionCreate) error {
	top := ic.ApplicationCommandData().Options[0]

	if top.Type == discordgo.ApplicationCommandOptionSubCommandGroup && top.Name == "chat" {
		sub := top.Options[0]
		if sub.Name == "clean" {
			amount := options(sub.Options)["amount"].IntValue()
			return bulkClear(s, ic, int(amount))
		}

		return nil
	}

	switch top.Name {
	case "ping":
		return pingReply(s, ic)
	case "stats":
		return c.stats(s, ic)
	}

	return nil
}

func (c *AppCommand) stats(s *discordgo.Session, ic *discordgo.InteractionCreate) error {
	var users int
	for _, g := range s.State.Guilds {
		users += g.MemberCount
	}

	embed := &discordgo.MessageEmbed{
		Title:       "📊 Bot Stats",
		Color:       0x00aeff,
		Description: "Here's my stat",
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Uptime", Value: fmt.Sprintf("**%s**", formatUptime(time.Since(c.startedAt)))},
			{Name: "Users", Value: fmt.Sprintf("%d", users)},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text:    "Version " + Version,
			IconURL: s.State.User.AvatarURL(""),
		},
	}

	return s.InteractionRespond(ic.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
}

func formatUptime(d time.Duration) string {
	seconds := int(d.Seconds())
	minutes := seconds / 60
	hours := minutes / 60
	days := hours / 24

	return fmt.Sprintf("%dd %dh %dm %ds", days, hours%24, minutes%60, seconds%60)
}
