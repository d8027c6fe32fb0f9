package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/finpulse/finpulse/internal/clients/gemini"
	"github.com/finpulse/finpulse/internal/clients/yahoo"
	"github.com/finpulse/finpulse/internal/common"
	"github.com/finpulse/finpulse/internal/interfaces"
	"github.com/finpulse/finpulse/internal/server"
	"github.com/finpulse/finpulse/internal/services/chat"
	"github.com/finpulse/finpulse/internal/services/market"
	"github.com/finpulse/finpulse/internal/storage/userdb"
)

func main() {
	configPath := os.Getenv("FINPULSE_CONFIG")

	var config *common.Config
	var err error
	if configPath != "" {
		config, err = common.LoadConfig(configPath)
	} else {
		config, err = common.LoadConfig()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := common.NewLoggerFromConfig(config.Logging)
	logger.Info().
		Str("version", common.GetVersion()).
		Str("environment", config.Environment).
		Msg("Starting finpulse server")

	users, err := userdb.NewStore(logger, config.Storage.Users.Path)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to open user store")
	}
	defer users.Close()

	marketData := yahoo.NewClient(
		yahoo.WithBaseURL(config.Clients.Yahoo.BaseURL),
		yahoo.WithRateLimit(config.Clients.Yahoo.RateLimit),
		yahoo.WithTimeout(config.Clients.Yahoo.GetTimeout()),
		yahoo.WithLogger(logger),
	)
	marketService := market.NewService(marketData, logger)

	var chatService interfaces.ChatService
	if config.Clients.Gemini.APIKey != "" {
		llm, err := gemini.NewClient(context.Background(), config.Clients.Gemini.APIKey,
			gemini.WithModel(config.Clients.Gemini.Model),
			gemini.WithLogger(logger),
		)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to create Gemini client")
		}
		chatService = chat.NewService(llm, logger)
	} else {
		logger.Warn().Msg("GEMINI_API_KEY not set, chat endpoints disabled")
	}

	srv := server.NewServer(config, logger, marketService, chatService, users)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	logger.Info().
		Str("url", fmt.Sprintf("http://localhost:%d", config.Server.Port)).
		Msg("Server ready")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info().Msg("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("HTTP server shutdown failed")
	}

	logger.Info().Msg("Server stopped")
}
