package models

import (
	"context"
	"errors"

	"cinescope/proj/internal/domain/models"
	"cinescope/proj/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MovieModel struct {
	DB *pgxpool.Pool
}

func (m *MovieModel) GetByTMDBID(ctx context.Context, tmdbID int64) (*models.Movie, error) {
	rows, _ := m.DB.Query(ctx, "SELECT * FROM movies WHERE tmdb_id = $1", tmdbID)
	movie, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Movie])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &movie, nil
}

// Upsert inserts a mirror row for the movie's external id, or returns the
// already-mirrored row if another request won the race. Mirror attributes are
// never overwritten after the first insert; the no-op DO UPDATE only exists so
// RETURNING yields the winning row.
func (m *MovieModel) Upsert(ctx context.Context, movie *models.Movie) (*models.Movie, error) {
	rows, _ := m.DB.Query(
		ctx,
		`INSERT INTO movies (tmdb_id, title, overview, poster_path, backdrop_path, release_date, vote_average)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (tmdb_id) DO UPDATE SET tmdb_id = excluded.tmdb_id
		RETURNING *`,
		movie.TMDBID,
		movie.Title,
		movie.Overview,
		movie.PosterPath,
		movie.BackdropPath,
		movie.ReleaseDate,
		movie.VoteAverage,
	)
	stored, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Movie])
	if err != nil {
		return nil, err
	}
	return &stored, nil
}
