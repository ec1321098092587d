package main

import (
	"context"
	"flag"
	"os"
	"time"

	"cinescope/proj/internal/config"
	"cinescope/proj/internal/lib/logger"
	"cinescope/proj/internal/storage/postgres"

	"github.com/joho/godotenv"
)

const version = "1.0.0"

func main() {
	cfgPath := flag.String("config", "config/local.yml", "path to config file")
	flag.Parse()
	_ = godotenv.Load()
	cfg := config.MustLoad(*cfgPath)
	log := logger.SetupLogger(cfg.Debug)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	storage, err := postgres.New(ctx, cfg.DB.Dsn, cfg.DB.MaxConns, cfg.DB.MaxConnIdleTime)
	if err != nil {
		panic(err)
	}
	defer storage.Conn.Close()
	log.Info("database connection established")
	if err := postgres.RunMigrations(ctx, cfg.DB.Dsn); err != nil {
		panic(err)
	}
	log.Info("migrations applied")
	app := NewApplication(cfg, log, storage)
	if err := app.serve(); err != nil {
		app.log.Error("shutting down the server", "reason", err.Error())
		os.Exit(1)
	}
}
