package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/pixeldrop/pixeldrop/internal/assets"
	"github.com/pixeldrop/pixeldrop/internal/models"
	"github.com/pixeldrop/pixeldrop/internal/services/giveaway"
	"github.com/pixeldrop/pixeldrop/internal/services/round"
)

// ClaimButtonPrefix is the custom ID prefix binding a button to a prize.
// The suffix is the prize ID, so a pressed button yields (user, prize).
const ClaimButtonPrefix = "claim_prize_"

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	giveaway   giveaway.Service
	library    *assets.Library
	config     *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Giveaway service
	GiveawayService giveaway.Service

	// Asset library for prize images and previews
	Library *assets.Library
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.GiveawayService == nil {
		return nil, errors.New("giveaway service cannot be nil")
	}

	if cfg.Library == nil {
		return nil, errors.New("asset library cannot be nil")
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:    session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		giveaway:   cfg.GiveawayService,
		library:    cfg.Library,
		config:     cfg,
	}

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	handlers := []CommandHandler{
		NewStartCommand(b.giveaway),
		NewRatingCommand(b.giveaway),
		NewCollageCommand(b.giveaway, b.library),
	}

	for _, cmd := range handlers {
		if err := b.RegisterCommand(cmd); err != nil {
			return fmt.Errorf("failed to register %s command: %w", cmd.GetName(), err)
		}
	}

	slog.Info("bot is running")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	// Remove all commands
	appID := b.config.ApplicationID
	if appID == "" {
		appID = b.session.State.User.ID
	}

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			slog.Warn("failed to delete command",
				slog.String("command", cmdName),
				slog.String("error", err.Error()))
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	appID := b.config.ApplicationID
	if appID == "" {
		// Fall back to session user ID if application ID is not provided
		appID = b.session.State.User.ID
	}

	createdCmd, err := b.session.ApplicationCommandCreate(appID, b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	// Store the command handler and its ID
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	slog.Info("registered command", slog.String("command", cmd.GetName()))

	return nil
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		// Handle slash commands
		if h, ok := b.commands[i.ApplicationCommandData().Name]; ok {
			if err := h.Handle(s, i); err != nil {
				slog.Error("command failed",
					slog.String("command", i.ApplicationCommandData().Name),
					slog.String("error", err.Error()))
			}
		}
	case discordgo.InteractionMessageComponent:
		// Handle buttons and other components
		if err := b.handleComponentInteraction(s, i); err != nil {
			slog.Error("component interaction failed", slog.String("error", err.Error()))
		}
	}
}

// handleComponentInteraction handles button clicks
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID

	if strings.HasPrefix(customID, ClaimButtonPrefix) {
		return b.handleClaimButton(s, i, strings.TrimPrefix(customID, ClaimButtonPrefix))
	}

	return RespondWithEphemeralMessage(s, i, "That button no longer does anything.")
}

// handleClaimButton adjudicates a claim button press and reports the outcome
func (b *Bot) handleClaimButton(s *discordgo.Session, i *discordgo.InteractionCreate, rawPrizeID string) error {
	user := interactionUser(i)

	prizeID, err := strconv.ParseInt(rawPrizeID, 10, 64)
	if err != nil {
		return RespondWithEphemeralMessage(s, i, "That prize is no longer available.")
	}

	out, err := b.giveaway.Claim(context.Background(), &giveaway.ClaimInput{
		UserID:  user.ID,
		PrizeID: prizeID,
	})
	if err != nil {
		if errors.Is(err, giveaway.ErrPrizeNotFound) {
			return RespondWithEphemeralMessage(s, i, "That prize is no longer available.")
		}
		slog.Error("claim failed",
			slog.String("user_id", user.ID),
			slog.Int64("prize_id", prizeID),
			slog.String("error", err.Error()))
		return RespondWithEphemeralMessage(s, i, "Something went wrong, please try again.")
	}

	if !out.Granted {
		switch out.Reason {
		case models.RejectReasonAlreadyWon:
			return RespondWithEphemeralMessage(s, i, "You already claimed this prize.")
		default:
			return RespondWithEphemeralMessage(s, i, "Sorry, all copies of this prize are gone.")
		}
	}

	f, err := b.library.Original(out.Image)
	if err != nil {
		// The win is recorded either way; only the attachment is lost
		slog.Warn("prize asset missing",
			slog.Int64("prize_id", prizeID),
			slog.String("image", out.Image))
		return RespondWithEphemeralMessage(s, i, "The image went missing, but the win is yours! 😅")
	}
	defer f.Close()

	return RespondWithFile(s, i, "🎉 Congratulations, you won the prize!", &discordgo.File{
		Name:   out.Image,
		Reader: f,
	})
}

// DeliverPreview implements round.Notifier: DM the pixelated preview to one
// user with a claim button bound to the prize
func (b *Bot) DeliverPreview(ctx context.Context, input *round.DeliverPreviewInput) error {
	channel, err := b.session.UserChannelCreate(input.UserID, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to open DM channel: %w", err)
	}

	f, err := b.library.Hidden(input.Image)
	if err != nil {
		return fmt.Errorf("failed to open preview: %w", err)
	}
	defer f.Close()

	_, err = b.session.ChannelMessageSendComplex(channel.ID, &discordgo.MessageSend{
		Content: "A new prize dropped! First three to claim it win.",
		Files: []*discordgo.File{
			{
				Name:   input.Image,
				Reader: f,
			},
		},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    "I'll take it!",
						Style:    discordgo.PrimaryButton,
						CustomID: fmt.Sprintf("%s%d", ClaimButtonPrefix, input.PrizeID),
						Emoji: &discordgo.ComponentEmoji{
							Name: "🎁",
						},
					},
				},
			},
		},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to send preview: %w", err)
	}

	return nil
}
