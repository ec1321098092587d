package services

import (
	"log/slog"

	"cinescope/proj/internal/clients/tmdb"
	"cinescope/proj/internal/config"
	"cinescope/proj/internal/services/auth"
	"cinescope/proj/internal/services/catalog"
	"cinescope/proj/internal/services/users"
	"cinescope/proj/internal/services/watchlists"
	"cinescope/proj/internal/storage/postgres"
	dbmodels "cinescope/proj/internal/storage/postgres/models"
)

type Services struct {
	Auth       *auth.AuthService
	Users      *users.UserService
	Watchlists *watchlists.WatchlistService
	Catalog    *catalog.CatalogService
}

func New(log *slog.Logger, cfg *config.Config, storage *postgres.Storage) *Services {
	m := dbmodels.New(storage)
	tmdbClient := tmdb.New(log, cfg.TMDB.BaseURL, cfg.TMDB.APIKey, cfg.TMDB.Timeout)
	tokens := auth.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.TTL)
	return &Services{
		Auth:       auth.New(log, m.Users, tokens),
		Users:      users.New(log, m.Users),
		Watchlists: watchlists.New(log, m.Movies, m.Lists, tmdbClient),
		Catalog:    catalog.New(log, tmdbClient),
	}
}
