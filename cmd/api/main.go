package main

import (
	"context"
	zLog "github.com/rs/zerolog/log"
	"go-consult/internal/api"
	"go-consult/internal/config"
	"go-consult/pkg/llm"
	"go-consult/pkg/logger"
	"log"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	log.Println("starting server")
	cfg, err := config.Load()
	if err != nil {
		log.Panicf("failed to load config: %v", err)
	}

	if err := logger.NewGlobal(cfg.LogLevel, cfg.PrettyLog); err != nil {
		log.Panicf("failed to initialize logger: %v", err)
	}

	gateway := llm.New(cfg.OpenAIKey)
	if !gateway.Configured() {
		zLog.Warn().Msg("OPENAI_API_KEY is not set; agent calls will report the missing credential")
	}

	app := api.New(cfg, gateway)

	go func() {
		if err := app.Start(); err != nil {
			zLog.Panic().Err(err).Msg("server crash")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	stop()
	zLog.Info().Msg("shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(ctx); err != nil {
		zLog.Panic().Err(err).Msg("server forced to shutdown")
	}

	zLog.Info().Msg("server exiting")
}
