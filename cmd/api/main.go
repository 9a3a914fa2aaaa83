package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"tunz-api/core"
)

func main() {
	_ = godotenv.Load()

	cfg, err := core.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	ctx := context.Background()

	logger, logCloser, err := core.SetupLogging(cfg, "api.log")
	if err != nil {
		log.Fatalf("failed to setup logging: %v", err)
	}
	defer logCloser.Close()

	db, err := core.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer db.Close()

	if err := core.EnsureSchema(ctx, db); err != nil {
		logger.Fatal().Err(err).Msg("failed to ensure schema")
	}

	redisClient, err := core.NewRedisClient(cfg.RedisURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect redis")
	}
	defer redisClient.Close()

	userRepo := core.NewPgUserRepository(db)
	hasher := core.NewBcryptHasher(cfg.BcryptCost)
	tokens := core.NewTokenService(cfg.JWTSecret, cfg.TokenTTL, cfg.TokenLeeway)
	songCache := core.NewSongCache(redisClient, cfg.CacheTTL)
	songs := core.NewSongService(core.NewPgSongRepository(db), songCache)

	router := core.NewRouter(cfg, logger, core.Deps{
		Auth:   core.NewRepositoryAuthService(userRepo, hasher),
		Tokens: tokens,
		Songs:  songs,
	})

	addr := fmt.Sprintf(":%s", cfg.Port)
	logger.Info().Str("addr", addr).Msg("starting api server")
	if err := router.Run(addr); err != nil {
		logger.Fatal().Err(err).Msg("server failed")
	}
}
