package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/adrnf/catet/internal/paginate"
)

type optionSet map[string]*discordgo.ApplicationCommandInteractionDataOption

func options(opts []*discordgo.ApplicationCommandInteractionDataOption) optionSet {
	m := make(optionSet, len(opts))
	for _, opt := range opts {
		m[opt.Name] = opt
	}

	return m
}

// perPage reads the optional per-page option; the declared option bounds
// keep it within [1,15].
func (o optionSet) perPage() int {
	if opt, ok := o["per-page"]; ok {
		return int(opt.IntValue())
	}

	return paginate.DefaultPageSize
}

func perPageOption(noun string) *discordgo.ApplicationCommandOption {
	minValue := float64(1)

	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        "per-page",
		Description: fmt.Sprintf("Number of %s per page (default: 5)", noun),
		MinValue:    &minValue,
		MaxValue:    15,
	}
}

// actor is the invoking user in both guild and DM interactions.
func actor(ic *discordgo.InteractionCreate) *discordgo.User {
	if ic.Member != nil {
		return ic.Member.User
	}

	return ic.User
}

func actorID(ic *discordgo.InteractionCreate) string {
	return actor(ic).ID
}
