package main

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"Filmoteka/internal/config"
	"Filmoteka/internal/handlers"
	"Filmoteka/internal/middleware"
	"Filmoteka/internal/repo"
	"Filmoteka/internal/service"
	"Filmoteka/internal/storage"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	ctx := context.Background()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	posterStore, err := storage.NewS3Store(ctx, cfg)
	if err != nil {
		sugar.Fatalw("failed to initialize poster storage", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	movieRepo := repo.NewMovieRepository(gormDB)

	userService := service.NewUserService(userRepo)
	movieService := service.NewMovieService(movieRepo, posterStore, sugar)

	h := handlers.NewHandler(userService, movieService, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"S3Bucket", cfg.S3Bucket,
		"PosterMaxSizeMB", cfg.PosterMaxSizeMB,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
