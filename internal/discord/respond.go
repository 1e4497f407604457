package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// interactionMessenger adapts a discordgo session and the invoking command
// interaction to the paginate.Messenger contract.
type interactionMessenger struct {
	session *discordgo.Session
	event   *discordgo.Interaction
}

func newMessenger(s *discordgo.Session, ic *discordgo.InteractionCreate) *interactionMessenger {
	return &interactionMessenger{session: s, event: ic.Interaction}
}

func (m *interactionMessenger) Respond(content string) error {
	return m.session.InteractionRespond(m.event, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	})
}

func (m *interactionMessenger) RespondEmbed(embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) (*discordgo.Message, error) {
	err := m.session.InteractionRespond(m.event, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("sending embed reply: %w", err)
	}

	// The session needs the created message's id to bind button events.
	msg, err := m.session.InteractionResponse(m.event)
	if err != nil {
		return nil, fmt.Errorf("fetching interaction response: %w", err)
	}

	return msg, nil
}

func (m *interactionMessenger) Update(event *discordgo.Interaction, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) error {
	return m.session.InteractionRespond(event, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
		},
	})
}

func (m *interactionMessenger) Ephemeral(event *discordgo.Interaction, content string) error {
	return m.session.InteractionRespond(event, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

func (m *interactionMessenger) Edit(channelID, messageID string, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) error {
	_, err := m.session.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    channelID,
		ID:         messageID,
		Embeds:     &[]*discordgo.MessageEmbed{embed},
		Components: &components,
	})

	return err
}

func respond(s *discordgo.Session, ic *discordgo.InteractionCreate, content string) error {
	return s.InteractionRespond(ic.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	})
}

func respondEphemeral(s *discordgo.Session, ic *discordgo.InteractionCreate, content string) error {
	return s.InteractionRespond(ic.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}
