package models

import (
	"context"

	"cinescope/proj/internal/domain/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ListModel struct {
	DB *pgxpool.Pool
}

// Add puts the movie into the user's list. Repeat adds are no-ops: membership
// is keyed on (user_id, movie_id, list).
func (m *ListModel) Add(ctx context.Context, userID string, movieID int64, list models.WatchList) error {
	_, err := m.DB.Exec(
		ctx,
		`INSERT INTO user_movie_lists (user_id, movie_id, list) VALUES ($1, $2, $3)
		ON CONFLICT (user_id, movie_id, list) DO NOTHING`,
		userID,
		movieID,
		string(list),
	)
	return err
}

// Remove drops the movie (addressed by its external id) from the user's list.
// Removing an absent reference, or one whose title was never mirrored, is not
// an error.
func (m *ListModel) Remove(ctx context.Context, userID string, tmdbID int64, list models.WatchList) error {
	_, err := m.DB.Exec(
		ctx,
		`DELETE FROM user_movie_lists
		WHERE user_id = $1 AND list = $2 AND movie_id = (SELECT id FROM movies WHERE tmdb_id = $3)`,
		userID,
		string(list),
		tmdbID,
	)
	return err
}

// Movies returns the user's list expanded to full mirror records, in insertion
// order.
func (m *ListModel) Movies(ctx context.Context, userID string, list models.WatchList) ([]models.Movie, error) {
	rows, _ := m.DB.Query(
		ctx,
		`SELECT m.* FROM movies m
		JOIN user_movie_lists l ON l.movie_id = m.id
		WHERE l.user_id = $1 AND l.list = $2
		ORDER BY l.added_at, m.id`,
		userID,
		string(list),
	)
	movies, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Movie])
	if err != nil {
		return nil, err
	}
	return movies, nil
}
