package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/04yashgautam/adverai/internal/config"
	"github.com/04yashgautam/adverai/internal/httpx"
	"github.com/04yashgautam/adverai/internal/llm"
	"github.com/04yashgautam/adverai/internal/query"
	"github.com/04yashgautam/adverai/internal/store"
	"github.com/04yashgautam/adverai/internal/utils"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	// The store handle is optional at startup: if Mongo never comes up the
	// server still runs and /query answers with a structured error.
	var st query.Store
	if cfg.MongoURI != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		var mc *store.Mongo
		err := utils.NewBackoff(500*time.Millisecond, 3).Do(ctx, func(i int) error {
			c, err := store.Connect(ctx, cfg.MongoURI)
			if err != nil {
				logger.Warn("mongo connect failed", slog.Int("attempt", i), slog.String("err", err.Error()))
				return err
			}
			mc = store.NewMongo(c, cfg.MongoDB, cfg.MongoColl)
			return nil
		})
		cancel()
		if err != nil {
			logger.Error("mongo unavailable, serving without store", slog.String("err", err.Error()))
		} else {
			st = mc
		}
	} else {
		logger.Warn("MONGO_URI not set, serving without store")
	}

	cl := llm.NewClient(llm.NewHTTPClient(cfg.HTTPTimeout), cfg.OpenRouterKey, cfg.OpenRouterURL)
	orch := llm.NewOrchestrator(cl, cfg.Models, cfg.MaxTokens, logger)
	svc := query.NewService(orch, st, logger, cfg)

	r := httpx.NewRouter(logger, svc)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("starting server", slog.String("port", cfg.Port))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", slog.String("err", err.Error()))
		os.Exit(1)
	}
}
