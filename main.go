package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sheikhrachel/gol-fixpoint/model"
	"github.com/sheikhrachel/gol-fixpoint/utils"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	log.Logger = logger

	config, err := loadConfig(getEnv(utils.EnvConfigPath, utils.DefaultConfigPath), os.Getenv, logger)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	seeds, err := loadSeeds(config)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load seeds")
	}

	// Handle Ctrl+C gracefully; oscillating seeds never settle on their own
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool()
	}

	for _, s := range seeds {
		if _, err := runSeed(ctx, s, config, pool, os.Stdout, logger); err != nil {
			log.Error().Err(err).Str("seed", s.name).Msg("run stopped before a fixed point")
			if ctx.Err() != nil {
				stop()
				os.Exit(1)
			}
		}
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
