package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/pixeldrop/pixeldrop/internal/services/giveaway"
)

const welcomeMessage = "Hello! You're in! 🎉\n" +
	"Every round you'll get a scrambled preview of a prize image by DM. " +
	"Press the button to claim it — only the first three win!"

// StartCommand registers the user for the giveaway
type StartCommand struct {
	BaseCommand
	giveaway giveaway.Service
}

// NewStartCommand creates a new start command handler
func NewStartCommand(svc giveaway.Service) *StartCommand {
	return &StartCommand{
		BaseCommand: BaseCommand{
			Name:        "start",
			Description: "Register for the prize giveaway",
		},
		giveaway: svc,
	}
}

// Handle processes the start command
func (c *StartCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	user := interactionUser(i)

	out, err := c.giveaway.RegisterUser(context.Background(), &giveaway.RegisterUserInput{
		UserID:   user.ID,
		UserName: user.Username,
	})
	if err != nil {
		return RespondWithEphemeralMessage(s, i, "Something went wrong, please try again.")
	}

	if out.AlreadyRegistered {
		return RespondWithEphemeralMessage(s, i, "You're already registered!")
	}

	return RespondWithMessage(s, i, welcomeMessage)
}
