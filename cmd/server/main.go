package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/draftline/draftline/config"
	"github.com/draftline/draftline/internal/agents"
	"github.com/draftline/draftline/internal/database"
	"github.com/draftline/draftline/internal/engine"
	mcpserver "github.com/draftline/draftline/internal/mcp"
	slacknotify "github.com/draftline/draftline/internal/slack"
	"github.com/sirupsen/logrus"
)

const version = "1.0.0"

func main() {
	// Stdout belongs to the MCP transport; everything we log goes to stderr.
	log := logrus.New()
	log.SetOutput(os.Stderr)

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var store database.Store
	switch cfg.StorageBackend {
	case "postgres":
		pg, err := database.NewPostgresStore(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer pg.Close()
		store = pg
		log.Info("Storage: postgres")
	default:
		fs, err := database.NewFileStore(cfg.VaultPath)
		if err != nil {
			log.Fatalf("Failed to open vault: %v", err)
		}
		store = fs
		log.WithField("vault", fs.Root()).Info("Storage: file vault")
	}

	limits := config.DefaultLimits()

	var notifier engine.Notifier
	if cfg.SlackToken != "" {
		n, err := slacknotify.NewNotifier(cfg.SlackToken, cfg.SlackReviewChannel, log)
		if err != nil {
			log.Fatalf("Failed to set up Slack notifier: %v", err)
		}
		notifier = n
	}

	manager := engine.NewManager(engine.ManagerConfig{
		Store:        store,
		Limiter:      engine.NewRateLimiter(store, limits),
		Validator:    agents.NewValidator(limits),
		Hashtags:     agents.NewHashtagAdvisor(config.DefaultHashtagCategories(), limits.RecommendedHashtags),
		PostingTimes: agents.NewPostingTimeAdvisor(config.DefaultPostingSchedule()),
		Audit:        engine.NewAuditLogger(store, log),
		Notifier:     notifier,
		Logger:       log,
	})

	server := mcpserver.NewServer(mcpserver.Config{
		Manager: manager,
		Logger:  log,
		Version: version,
	})

	log.Info("LinkedIn draft server running on stdio")
	if err := server.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("Server error: %v", err)
	}

	log.Info("Shutting down")
}
