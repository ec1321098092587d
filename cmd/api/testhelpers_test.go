package main

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"cinescope/proj/internal/clients/tmdb"
	"cinescope/proj/internal/config"
	"cinescope/proj/internal/domain/models"
	"cinescope/proj/internal/services"
	"cinescope/proj/internal/services/auth"
	"cinescope/proj/internal/services/catalog"
	"cinescope/proj/internal/services/users"
	"cinescope/proj/internal/services/watchlists"
	"cinescope/proj/internal/storage"

	govalidator "github.com/go-playground/validator/v10"
)

const testSecret = "test-secret"

type listKey struct {
	userID string
	list   models.WatchList
}

// fakeStore is an in-memory stand-in for both the postgres models and the
// catalog client, so handler tests can exercise full request flows.
type fakeStore struct {
	mu           sync.Mutex
	usersByID    map[string]*models.User
	usersByEmail map[string]*models.User
	moviesByTMDB map[int64]*models.Movie
	moviesByID   map[int64]*models.Movie
	nextMovieID  int64
	lists        map[listKey][]int64

	catalogMovies map[int64]*tmdb.Movie
	catalogErr    error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		usersByID:     make(map[string]*models.User),
		usersByEmail:  make(map[string]*models.User),
		moviesByTMDB:  make(map[int64]*models.Movie),
		moviesByID:    make(map[int64]*models.Movie),
		lists:         make(map[listKey][]int64),
		catalogMovies: make(map[int64]*tmdb.Movie),
	}
}

func (f *fakeStore) Insert(_ context.Context, user *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.usersByEmail[user.Email]; ok {
		return nil, storage.ErrConflict
	}
	stored := *user
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.usersByEmail[user.Email] = &stored
	f.usersByID[user.ID] = &stored
	return &stored, nil
}

func (f *fakeStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.usersByEmail[email]
	if !ok {
		return nil, storage.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeStore) GetByID(_ context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.usersByID[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeStore) Update(_ context.Context, user *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.usersByID[user.ID]; !ok {
		return nil, storage.ErrNotFound
	}
	stored := *user
	stored.UpdatedAt = time.Now()
	f.usersByID[user.ID] = &stored
	f.usersByEmail[user.Email] = &stored
	return &stored, nil
}

func (f *fakeStore) GetByTMDBID(_ context.Context, tmdbID int64) (*models.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	movie, ok := f.moviesByTMDB[tmdbID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	copied := *movie
	return &copied, nil
}

func (f *fakeStore) Upsert(_ context.Context, movie *models.Movie) (*models.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if existing, ok := f.moviesByTMDB[movie.TMDBID]; ok {
		copied := *existing
		return &copied, nil
	}
	f.nextMovieID++
	stored := *movie
	stored.ID = f.nextMovieID
	f.moviesByTMDB[movie.TMDBID] = &stored
	f.moviesByID[stored.ID] = &stored
	copied := stored
	return &copied, nil
}

func (f *fakeStore) Add(_ context.Context, userID string, movieID int64, list models.WatchList) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := listKey{userID, list}
	for _, id := range f.lists[key] {
		if id == movieID {
			return nil
		}
	}
	f.lists[key] = append(f.lists[key], movieID)
	return nil
}

func (f *fakeStore) Remove(_ context.Context, userID string, tmdbID int64, list models.WatchList) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	movie, ok := f.moviesByTMDB[tmdbID]
	if !ok {
		return nil
	}
	key := listKey{userID, list}
	entries := f.lists[key]
	for i, id := range entries {
		if id == movie.ID {
			f.lists[key] = append(entries[:i], entries[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeStore) Movies(_ context.Context, userID string, list models.WatchList) ([]models.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := listKey{userID, list}
	result := make([]models.Movie, 0, len(f.lists[key]))
	for _, id := range f.lists[key] {
		result = append(result, *f.moviesByID[id])
	}
	return result, nil
}

func (f *fakeStore) Popular(_ context.Context, _ int) ([]tmdb.Movie, error) {
	if f.catalogErr != nil {
		return nil, f.catalogErr
	}
	result := make([]tmdb.Movie, 0, len(f.catalogMovies))
	for _, movie := range f.catalogMovies {
		result = append(result, *movie)
	}
	return result, nil
}

func (f *fakeStore) Search(_ context.Context, query string, _ int) ([]tmdb.Movie, error) {
	return f.Popular(context.Background(), 0)
}

func (f *fakeStore) Details(_ context.Context, id int64) (*tmdb.Movie, error) {
	if f.catalogErr != nil {
		return nil, f.catalogErr
	}
	movie, ok := f.catalogMovies[id]
	if !ok {
		return nil, &tmdb.APIError{StatusCode: 404, Message: "The resource you requested could not be found."}
	}
	copied := *movie
	return &copied, nil
}

func NewTestApplication(t *testing.T) (*Application, *fakeStore) {
	t.Helper()
	store := newFakeStore()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.CORS.AllowedOrigin = "http://localhost:3000"
	tokens := auth.NewTokenIssuer(testSecret, time.Hour)
	svcs := &services.Services{
		Auth:       auth.New(log, store, tokens),
		Users:      users.New(log, store),
		Watchlists: watchlists.New(log, store, store, store),
		Catalog:    catalog.New(log, store),
	}
	return &Application{
		cfg:       cfg,
		log:       log,
		Http:      &Http{log: log, cfg: cfg},
		services:  svcs,
		validator: govalidator.New(govalidator.WithRequiredStructEnabled()),
	}, store
}
