package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/pixeldrop/pixeldrop/internal/services/giveaway"
)

// RatingCommand shows the top winners
type RatingCommand struct {
	BaseCommand
	giveaway giveaway.Service
}

// NewRatingCommand creates a new rating command handler
func NewRatingCommand(svc giveaway.Service) *RatingCommand {
	return &RatingCommand{
		BaseCommand: BaseCommand{
			Name:        "rating",
			Description: "Show the top prize winners",
		},
		giveaway: svc,
	}
}

// Handle processes the rating command
func (c *RatingCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	out, err := c.giveaway.GetLeaderboard(context.Background(), &giveaway.GetLeaderboardInput{
		Limit: giveaway.DefaultLeaderboardLimit,
	})
	if err != nil {
		return RespondWithEphemeralMessage(s, i, "Something went wrong, please try again.")
	}

	standings := out.Leaderboard.Standings
	if len(standings) == 0 {
		return RespondWithMessage(s, i, "Nobody has won a prize yet.")
	}

	var sb strings.Builder
	for pos, standing := range standings {
		fmt.Fprintf(&sb, "%d. %s: %d prizes\n", pos+1, standing.UserName, standing.WinCount)
	}

	return RespondWithEmbed(s, i, "🏅 Top winners", sb.String())
}
