package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
	"go.uber.org/zap"

	"github.com/standupbot/slack-standup-bot/internal/config"
	"github.com/standupbot/slack-standup-bot/internal/database"
	"github.com/standupbot/slack-standup-bot/internal/domain/service"
	"github.com/standupbot/slack-standup-bot/internal/handlers"
	"github.com/standupbot/slack-standup-bot/internal/logger"
	"github.com/standupbot/slack-standup-bot/internal/messenger"
	"github.com/standupbot/slack-standup-bot/internal/summary"
	"github.com/standupbot/slack-standup-bot/migrator/sqlite"
)

func main() {
	envMissing := godotenv.Load() != nil

	cfg := config.Load()
	log := logger.New(cfg.Environment)
	defer log.Sync()

	if envMissing {
		log.Warn(".env file not found, using environment variables")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	log.Info("running migrations")
	if err := sqlite.Migrate(db.DB()); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	slackClient := slack.New(cfg.SlackBotToken)

	svc := service.NewInstance(
		database.NewInstance(db),
		messenger.New(slackClient),
		summary.NewManualGenerator(),
		log,
		service.WithMaxWorkers(cfg.MaxWorkers),
	)

	if err := svc.Standup.Init(ctx); err != nil {
		log.Fatal("failed to rebuild scheduler state", zap.Error(err))
	}
	svc.Standup.StartScheduler(ctx, cfg.TickInterval)

	handler := handlers.New(svc.Standup, cfg.SlackSigningSecret)

	mux := http.NewServeMux()
	mux.HandleFunc("/slack/commands", handler.HandleSlashCommand)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})

	server := &http.Server{Addr: ":" + cfg.Port, Handler: mux}
	go func() {
		<-ctx.Done()
		server.Shutdown(context.Background())
	}()

	log.Info("server starting", zap.String("port", cfg.Port))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
