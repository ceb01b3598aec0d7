package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/pixeldrop/pixeldrop/internal/assets"
	"github.com/pixeldrop/pixeldrop/internal/handlers/discord"
	prizeRepo "github.com/pixeldrop/pixeldrop/internal/repositories/prize"
	userRepo "github.com/pixeldrop/pixeldrop/internal/repositories/user"
	winRepo "github.com/pixeldrop/pixeldrop/internal/repositories/win"
	"github.com/pixeldrop/pixeldrop/internal/selector"
	"github.com/pixeldrop/pixeldrop/internal/services/giveaway"
	"github.com/pixeldrop/pixeldrop/internal/services/round"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load .env if present; real deployments set the environment directly
	_ = godotenv.Load()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	users, err := userRepo.NewRedis(&userRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create user repository: %v", err)
	}

	prizes, err := prizeRepo.NewRedis(&prizeRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create prize repository: %v", err)
	}

	wins, err := winRepo.NewRedis(&winRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create win repository: %v", err)
	}

	// Initialize the asset library and generate missing previews
	library, err := assets.New(&assets.Config{
		ImageDir:  getEnv("IMAGE_DIR", "img"),
		HiddenDir: getEnv("HIDDEN_IMAGE_DIR", "hidden_img"),
	})
	if err != nil {
		log.Fatalf("Failed to create asset library: %v", err)
	}

	if _, err := library.EnsureHidden(); err != nil {
		log.Fatalf("Failed to generate image previews: %v", err)
	}

	// Initialize the giveaway service
	giveawaySvc, err := giveaway.New(&giveaway.Config{
		UserRepo:  users,
		PrizeRepo: prizes,
		WinRepo:   wins,
	})
	if err != nil {
		log.Fatalf("Failed to create giveaway service: %v", err)
	}

	// Seed prizes from the image directory
	images, err := library.ListImages()
	if err != nil {
		log.Fatalf("Failed to list prize images: %v", err)
	}

	seeded, err := giveawaySvc.SeedPrizes(context.Background(), &giveaway.SeedPrizesInput{
		Images: images,
	})
	if err != nil {
		log.Fatalf("Failed to seed prizes: %v", err)
	}
	log.Printf("Seeded %d new prizes (%d images total)", seeded.Created, len(images))

	// Get Discord token from environment
	discordToken := getEnv("DISCORD_TOKEN", "")
	if discordToken == "" {
		log.Fatal("DISCORD_TOKEN environment variable is required")
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:           discordToken,
		ApplicationID:   getEnv("APPLICATION_ID", ""),
		GuildID:         getEnv("GUILD_ID", ""),
		GiveawayService: giveawaySvc,
		Library:         library,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Initialize the prize selector and round driver
	prizeSelector, err := selector.New(&selector.Config{
		PrizeRepo: prizes,
	})
	if err != nil {
		log.Fatalf("Failed to create prize selector: %v", err)
	}

	roundSvc, err := round.New(&round.Config{
		UserRepo:  users,
		PrizeRepo: prizes,
		Selector:  prizeSelector,
		Notifier:  bot,
		Interval:  getEnvDuration("ROUND_INTERVAL", time.Minute),
	})
	if err != nil {
		log.Fatalf("Failed to create round driver: %v", err)
	}

	driverCtx, stopDriver := context.WithCancel(context.Background())
	go roundSvc.Start(driverCtx)

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	stopDriver()

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	log.Println("Bot has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvDuration gets a duration environment variable or returns a default
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("Invalid %s: %v", key, err)
	}
	return d
}
