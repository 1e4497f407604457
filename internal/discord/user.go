package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

type UserCommand struct{}

func NewUserCommand() *UserCommand { return &UserCommand{} }

func (c *UserCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "user",
		Description: "Provides information about the user.",
	}
}

func (c *UserCommand) Handle(_ context.Context, s *discordgo.Session, ic *discordgo.InteractionCreate) error {
	return respond(s, ic, fmt.Sprintf("This command was used by %s.", actor(ic).Username))
}
