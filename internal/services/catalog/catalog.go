// Package catalog is the pass-through read surface over the external movie
// catalog. No caching, no retries: upstream failures go straight back to the
// caller.
package catalog

import (
	"context"
	"log/slog"

	"cinescope/proj/internal/clients/tmdb"
)

type CatalogClient interface {
	Popular(ctx context.Context, page int) ([]tmdb.Movie, error)
	Search(ctx context.Context, query string, page int) ([]tmdb.Movie, error)
	Details(ctx context.Context, id int64) (*tmdb.Movie, error)
}

type CatalogService struct {
	log    *slog.Logger
	client CatalogClient
}

func New(log *slog.Logger, client CatalogClient) *CatalogService {
	return &CatalogService{
		log:    log,
		client: client,
	}
}

func (s *CatalogService) Popular(ctx context.Context, page int) ([]tmdb.Movie, error) {
	const op = "catalog.CatalogService.Popular"
	movies, err := s.client.Popular(ctx, page)
	if err != nil {
		s.log.With("op", op).Error(err.Error())
		return nil, err
	}
	return movies, nil
}

func (s *CatalogService) Search(ctx context.Context, query string, page int) ([]tmdb.Movie, error) {
	const op = "catalog.CatalogService.Search"
	movies, err := s.client.Search(ctx, query, page)
	if err != nil {
		s.log.With("op", op, "query", query).Error(err.Error())
		return nil, err
	}
	return movies, nil
}

func (s *CatalogService) Details(ctx context.Context, id int64) (*tmdb.Movie, error) {
	const op = "catalog.CatalogService.Details"
	movie, err := s.client.Details(ctx, id)
	if err != nil {
		s.log.With("op", op, "id", id).Error(err.Error())
		return nil, err
	}
	return movie, nil
}
