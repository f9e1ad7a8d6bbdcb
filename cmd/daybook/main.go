package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/xlab/closer"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/chronist/daybook/internal/api"
	"github.com/chronist/daybook/internal/bot"
	history_service "github.com/chronist/daybook/internal/business/history"
	"github.com/chronist/daybook/internal/catalog"
	"github.com/chronist/daybook/internal/config"
	"github.com/chronist/daybook/internal/database"
	history_repo "github.com/chronist/daybook/internal/database/history"
	"github.com/chronist/daybook/internal/notifications"
	"github.com/chronist/daybook/internal/redis"
)

func main() {
	ctx := context.Background()

	logger, err := initLogger()
	if err != nil {
		log.Fatalf("unable to initialize logger: %v", err)
	}

	loc, err := time.LoadLocation(config.Timezone())
	if err != nil {
		logger.Fatalw("invalid timezone", "timezone", config.Timezone(), "err", err)
	}

	source, db, err := newCatalogSource(ctx)
	if err != nil {
		logger.Fatalw("unable to initialize catalog source", "err", err)
	}

	cat := catalog.New(logger, source)
	if err := cat.Reload(ctx); err != nil {
		logger.Errorw("initial catalog load failed, starting with an empty catalog", "err", err)
	}

	var cache history_service.Cache
	if config.RedisURL() != "" {
		cache = redis.NewRenderedCache(redis.NewRedisPool(logger))
	}

	historyService := history_service.NewService(logger, cat, cache, loc)

	if config.TelegramToken() == "" {
		logger.Fatalw("TELEGRAM_TOKEN must be set")
	}

	botAPI, err := bot.New(config.TelegramToken())
	if err != nil {
		logger.Fatalw("unable to initialize bot", "err", err)
	}

	messenger := bot.NewMessenger(botAPI)
	scheduler := notifications.NewScheduler(logger, loc)
	notifier := notifications.NewNotifier(logger, historyService, messenger, loc)

	dispatcher := bot.NewDispatcher(botAPI, logger, historyService, scheduler, notifier, messenger, loc)
	go dispatcher.Run(ctx)

	apiHandler := api.NewApi(logger, cat, db)

	errLogger, err := zap.NewStdLogAt(logger.Desugar(), zap.ErrorLevel)
	if err != nil {
		logger.Fatalw("error initiating server logger", "err", err)
	}

	server := &http.Server{
		Addr:     ":" + config.Port(),
		Handler:  apiHandler,
		ErrorLog: errLogger,
	}

	logger.Infow("Started server", "port", config.Port())
	logger.Fatalw("server error", "err", server.ListenAndServe())
}

// newCatalogSource also returns the database handle when one backs the
// catalog, so the healthcheck can ping it. It is nil for the file source.
func newCatalogSource(ctx context.Context) (catalog.Source, api.Pinger, error) {
	switch config.CatalogSource() {
	case "file":
		return catalog.NewFileSource(config.CatalogPath()), nil, nil
	case "postgres":
		db, err := database.NewPGX(ctx, config.PostgresURL())
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		return catalog.NewPostgresSource(db, history_repo.NewRepository()), db, nil
	default:
		return nil, nil, fmt.Errorf("unknown catalog source %q", config.CatalogSource())
	}
}

func initLogger() (*zap.SugaredLogger, error) {
	var logger *zap.Logger
	var err error

	if config.Production() {
		logger, err = zap.NewProduction()
	} else {
		conf := zap.NewDevelopmentConfig()
		conf.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		logger, err = conf.Build()
	}

	if err != nil {
		return nil, err
	}

	closer.Bind(func() {
		_ = logger.Sync()
	})

	return logger.Sugar(), nil
}
