package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/raushankrgupta/ayush-ai/api"
	"github.com/raushankrgupta/ayush-ai/config"
	"github.com/raushankrgupta/ayush-ai/store"
	"github.com/raushankrgupta/ayush-ai/utils"
	"github.com/raushankrgupta/ayush-ai/wellness"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger, err := utils.NewLogger(utils.LogConfig{Level: cfg.LogLevel, Dev: cfg.LogDev, File: cfg.LogFile})
	if err != nil {
		log.Fatalf("Failed to initialise logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	startCtx, cancel := context.WithTimeout(ctx, store.Timeout)
	db, err := store.Connect(startCtx, cfg.MongoURI, cfg.MongoDB, logger)
	if err != nil {
		cancel()
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	if err := db.EnsureIndexes(startCtx); err != nil {
		logger.Warn("Failed to ensure indexes", zap.Error(err))
	}
	cancel()

	// The generator stays a nil interface when Gemini is not configured so
	// that every consumer falls back locally.
	var gen wellness.Generator
	gemini, err := utils.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		logger.Warn("Gemini disabled, using local templates", zap.Error(err))
	} else {
		defer gemini.Close()
		gen = gemini
	}

	tokens, err := utils.NewTokenIssuer(cfg.JWTSecret)
	if err != nil {
		logger.Fatal("Invalid token configuration", zap.Error(err))
	}

	archive, err := utils.NewS3Archive(ctx, cfg.AWSRegion, cfg.AWSBucketName)
	if err != nil {
		logger.Warn("Report archive disabled", zap.Error(err))
		archive = &utils.S3Archive{}
	}

	opts := api.Options{
		Store:         db,
		Engine:        wellness.NewEngine(wellness.NewComposer(gen, logger)),
		Planner:       wellness.NewPlanner(gen, logger),
		Chat:          gen,
		Mailer:        utils.NewSendGridMailer(cfg.SendGridAPIKey, cfg.MailFromName, cfg.MailFromEmail, logger),
		Archiver:      archive,
		Tokens:        tokens,
		OAuth:         api.GoogleOAuthConfig(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL),
		Logger:        logger,
		AllowedOrigin: cfg.AllowedOrigin,
	}

	if cfg.RateLimit != "" {
		limiter, err := utils.NewRateLimiter(ctx, cfg.RateLimit, cfg.RedisURL, logger)
		if err != nil {
			logger.Fatal("Failed to configure rate limiter", zap.Error(err))
		}
		defer limiter.Close()
		opts.RateLimit = limiter.Handler
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.NewHandler(opts).Routes(),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      90 * time.Second,
	}

	go func() {
		logger.Info("Server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}
	if err := db.Close(shutdownCtx); err != nil {
		logger.Error("Failed to close MongoDB", zap.Error(err))
	}
}
