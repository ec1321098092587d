package postgres

import (
	"context"
	"database/sql"
	"time"

	"cinescope/proj/internal/storage/postgres/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

const ErrConflictCode = "23505"

type Storage struct {
	Conn *pgxpool.Pool
}

func New(ctx context.Context, dsn string, maxConns int, maxConnIdleTime time.Duration) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	cfg.MaxConns = int32(maxConns)
	cfg.MaxConnIdleTime = maxConnIdleTime
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return &Storage{Conn: pool}, nil
}

// RunMigrations applies the embedded goose migrations. It opens a separate
// database/sql connection because goose does not speak pgxpool.
func RunMigrations(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}
