package main

import (
	"log/slog"

	"cinescope/proj/internal/config"
	"cinescope/proj/internal/services"
	"cinescope/proj/internal/storage/postgres"

	govalidator "github.com/go-playground/validator/v10"
)

type Application struct {
	cfg       *config.Config
	log       *slog.Logger
	Http      *Http
	services  *services.Services
	validator *govalidator.Validate
}

func NewApplication(cfg *config.Config, log *slog.Logger, storage *postgres.Storage) *Application {
	return &Application{
		cfg:       cfg,
		log:       log,
		Http:      &Http{log: log, cfg: cfg},
		services:  services.New(log, cfg, storage),
		validator: govalidator.New(govalidator.WithRequiredStructEnabled()),
	}
}
