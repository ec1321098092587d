package models

import (
	"context"
	"errors"

	"cinescope/proj/internal/domain/models"
	"cinescope/proj/internal/storage"
	"cinescope/proj/internal/storage/postgres"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserModel struct {
	DB *pgxpool.Pool
}

func (m *UserModel) Insert(ctx context.Context, user *models.User) (*models.User, error) {
	rows, _ := m.DB.Query(
		ctx,
		`INSERT INTO users (id, first_name, last_name, email, password_hash, country)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING *`,
		user.ID,
		user.FirstName,
		user.LastName,
		user.Email,
		user.PasswordHash,
		user.Country,
	)
	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		var pgxErr *pgconn.PgError
		if errors.As(err, &pgxErr) && pgxErr.Code == postgres.ErrConflictCode {
			return nil, storage.ErrConflict
		}
		return nil, err
	}
	return &created, nil
}

func (m *UserModel) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	rows, _ := m.DB.Query(ctx, "SELECT * FROM users WHERE email = $1", email)
	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (m *UserModel) GetByID(ctx context.Context, id string) (*models.User, error) {
	rows, _ := m.DB.Query(ctx, "SELECT * FROM users WHERE id = $1", id)
	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (m *UserModel) Update(ctx context.Context, user *models.User) (*models.User, error) {
	rows, _ := m.DB.Query(
		ctx,
		`UPDATE users SET first_name = $1, last_name = $2, country = $3, updated_at = now()
		WHERE id = $4 RETURNING *`,
		user.FirstName,
		user.LastName,
		user.Country,
		user.ID,
	)
	updated, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return &updated, nil
}
