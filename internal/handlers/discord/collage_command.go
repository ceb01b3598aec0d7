package discord

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"github.com/bwmarrin/discordgo"
	"github.com/pixeldrop/pixeldrop/internal/assets"
	"github.com/pixeldrop/pixeldrop/internal/services/giveaway"
)

// CollageCommand sends the user a grid of all prizes: claimed ones at full
// quality, the rest still pixelated
type CollageCommand struct {
	BaseCommand
	giveaway giveaway.Service
	library  *assets.Library
}

// NewCollageCommand creates a new collage command handler
func NewCollageCommand(svc giveaway.Service, library *assets.Library) *CollageCommand {
	return &CollageCommand{
		BaseCommand: BaseCommand{
			Name:        "collage",
			Description: "See your prize collection as a collage",
		},
		giveaway: svc,
		library:  library,
	}
}

// Handle processes the collage command
func (c *CollageCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	user := interactionUser(i)

	out, err := c.giveaway.GetUserCollection(context.Background(), &giveaway.GetUserCollectionInput{
		UserID: user.ID,
	})
	if err != nil {
		return RespondWithEphemeralMessage(s, i, "Something went wrong, please try again.")
	}

	if len(out.AllImages) == 0 {
		return RespondWithEphemeralMessage(s, i, "No prizes have been added yet.")
	}

	// Stable tile order regardless of storage iteration order
	images := append([]string(nil), out.AllImages...)
	sort.Strings(images)

	won := make(map[string]bool, len(out.WonImages))
	for _, image := range out.WonImages {
		won[image] = true
	}

	collage, err := c.library.Collage(images, won)
	if err != nil {
		return RespondWithEphemeralMessage(s, i, "Could not build your collage, please try again.")
	}

	return RespondWithFile(s, i,
		fmt.Sprintf("Your collection: %d of %d prizes revealed.", len(out.WonImages), len(images)),
		&discordgo.File{
			Name:   fmt.Sprintf("collage_%s.png", user.ID),
			Reader: bytes.NewReader(collage),
		})
}
