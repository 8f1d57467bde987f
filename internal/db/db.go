package db

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	_ "github.com/orgball2608/forum-tweet-bot/internal/migrations"
	"github.com/orgball2608/forum-tweet-bot/pkg/config"
	"github.com/orgball2608/forum-tweet-bot/pkg/errors"
	"github.com/pressly/goose/v3"
)

// migrationsDir is ignored for Go migrations but goose still requires one.
const migrationsDir = "."

// Postgres runs the registered Go migrations over a database/sql handle.
type Postgres struct {
	db *sql.DB
}

func NewConnect(cfg *config.Config) (*Postgres, error) {
	connect, err := sql.Open("postgres", cfg.GetDSN())
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}

	if err = connect.Ping(); err != nil {
		connect.Close()
		return nil, errors.Wrap(err, "failed to ping database")
	}

	if err = goose.SetDialect("postgres"); err != nil {
		connect.Close()
		return nil, errors.Wrap(err, "failed to set goose dialect")
	}

	return &Postgres{db: connect}, nil
}

func (pg *Postgres) Up(ctx context.Context) error {
	return goose.UpContext(ctx, pg.db, migrationsDir)
}

func (pg *Postgres) Down(ctx context.Context) error {
	return goose.DownContext(ctx, pg.db, migrationsDir)
}

func (pg *Postgres) Reset(ctx context.Context) error {
	return goose.ResetContext(ctx, pg.db, migrationsDir)
}

func (pg *Postgres) Status(ctx context.Context) error {
	return goose.StatusContext(ctx, pg.db, migrationsDir)
}

func (pg *Postgres) Version(ctx context.Context) (int64, error) {
	return goose.GetDBVersionContext(ctx, pg.db)
}

func (pg *Postgres) Close() error {
	return pg.db.Close()
}
