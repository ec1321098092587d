// Package watchlists implements the shared mutation flow behind favorites,
// currently-watching and recently-watched: resolve the title against the
// local mirror (creating it from the catalog on first reference), then apply
// a set-level add or remove.
package watchlists

import (
	"context"
	"errors"
	"log/slog"

	"cinescope/proj/internal/clients/tmdb"
	"cinescope/proj/internal/domain/models"
	"cinescope/proj/internal/storage"
)

type MoviesStorage interface {
	GetByTMDBID(ctx context.Context, tmdbID int64) (*models.Movie, error)
	Upsert(ctx context.Context, movie *models.Movie) (*models.Movie, error)
}

type ListsStorage interface {
	Add(ctx context.Context, userID string, movieID int64, list models.WatchList) error
	Remove(ctx context.Context, userID string, tmdbID int64, list models.WatchList) error
	Movies(ctx context.Context, userID string, list models.WatchList) ([]models.Movie, error)
}

type CatalogProvider interface {
	Details(ctx context.Context, id int64) (*tmdb.Movie, error)
}

type WatchlistService struct {
	log     *slog.Logger
	movies  MoviesStorage
	lists   ListsStorage
	catalog CatalogProvider
}

func New(log *slog.Logger, movies MoviesStorage, lists ListsStorage, catalog CatalogProvider) *WatchlistService {
	return &WatchlistService{
		log:     log,
		movies:  movies,
		lists:   lists,
		catalog: catalog,
	}
}

// resolveMirror finds the local mirror for an external id, fetching the title
// from the catalog and creating it on first reference. Creation is an upsert,
// so two concurrent first references converge on the same row.
func (s *WatchlistService) resolveMirror(ctx context.Context, tmdbID int64) (*models.Movie, error) {
	movie, err := s.movies.GetByTMDBID(ctx, tmdbID)
	if err == nil {
		return movie, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}
	fetched, err := s.catalog.Details(ctx, tmdbID)
	if err != nil {
		return nil, err
	}
	return s.movies.Upsert(ctx, fetched.Mirror())
}

// Add puts the title into the user's list and returns the updated list.
// Adding to recently-watched also drops the title from currently-watching:
// the transition is one-way, watching to watched. There is no rollback if a
// later step fails after the mirror row was created.
func (s *WatchlistService) Add(ctx context.Context, userID string, tmdbID int64, list models.WatchList) ([]models.Movie, error) {
	const op = "watchlists.WatchlistService.Add"
	log := s.log.With("op", op, "user_id", userID, "tmdb_id", tmdbID, "list", list)
	movie, err := s.resolveMirror(ctx, tmdbID)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	if err := s.lists.Add(ctx, userID, movie.ID, list); err != nil {
		log.Error(err.Error())
		return nil, err
	}
	if list == models.ListRecentlyWatched {
		if err := s.lists.Remove(ctx, userID, tmdbID, models.ListCurrentlyWatching); err != nil {
			log.Error(err.Error())
			return nil, err
		}
	}
	return s.lists.Movies(ctx, userID, list)
}

// Remove drops the title from the user's list and returns the updated list.
// Removing a title that is not in the list is a no-op.
func (s *WatchlistService) Remove(ctx context.Context, userID string, tmdbID int64, list models.WatchList) ([]models.Movie, error) {
	const op = "watchlists.WatchlistService.Remove"
	log := s.log.With("op", op, "user_id", userID, "tmdb_id", tmdbID, "list", list)
	if err := s.lists.Remove(ctx, userID, tmdbID, list); err != nil {
		log.Error(err.Error())
		return nil, err
	}
	return s.lists.Movies(ctx, userID, list)
}

// Get returns the user's list with mirror records expanded to full
// attributes.
func (s *WatchlistService) Get(ctx context.Context, userID string, list models.WatchList) ([]models.Movie, error) {
	const op = "watchlists.WatchlistService.Get"
	log := s.log.With("op", op, "user_id", userID, "list", list)
	movies, err := s.lists.Movies(ctx, userID, list)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	return movies, nil
}
