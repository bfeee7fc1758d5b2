package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	"github.com/talenthub-dev/job-board/backend/internal/config"
	"github.com/talenthub-dev/job-board/backend/internal/repository"
	"github.com/talenthub-dev/job-board/backend/internal/seed"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("unable to load configuration", "error", err)
		return
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("unable to create database pool", "error", err)
		return
	}
	defer dbpool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("unable to connect to database", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	seed.SeedSampleData(repo, cfg.Seed.User.Password)
	logger.Info("seeding finished")
}
