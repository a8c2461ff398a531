package sink

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"itch-vwap/internal/model"
)

// PostgresConfig holds DB connection details.
type PostgresConfig struct {
	Host     string `envconfig:"POSTGRES_HOST" default:"localhost"`
	Port     int    `envconfig:"POSTGRES_PORT" default:"5432"`
	Database string `envconfig:"POSTGRES_DB" default:"marketdata"`
	User     string `envconfig:"POSTGRES_USER" default:"marketdata"`
	Password string `envconfig:"POSTGRES_PASSWORD" default:"marketdata"`
	PoolMax  int    `envconfig:"PG_POOL_MAX" default:"4"`
}

const pgSchema = `
CREATE TABLE IF NOT EXISTS hourly_vwap (
	hour   INT,
	symbol TEXT,
	vwap   DOUBLE PRECISION,
	shares BIGINT,
	trades BIGINT,
	PRIMARY KEY (hour, symbol)
);`

const pgUpsert = `
INSERT INTO hourly_vwap(hour, symbol, vwap, shares, trades)
VALUES($1, $2, $3, $4, $5)
ON CONFLICT(hour, symbol) DO UPDATE
SET vwap=EXCLUDED.vwap, shares=EXCLUDED.shares, trades=EXCLUDED.trades;`

// Postgres persists closed hours into a Postgres table.
type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(ctx context.Context, cfg PostgresConfig) (*Postgres, error) {
	url := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?pool_max_conns=%d",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database, cfg.PoolMax)
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, err
	}
	if _, err := pool.Exec(ctx, pgSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Postgres{pool: pool}, nil
}

func (p *Postgres) Emit(hour int, rows []model.VWAPRow) error {
	ctx := context.Background()
	for _, r := range rows {
		if _, err := p.pool.Exec(ctx, pgUpsert, r.Hour, r.Symbol, r.VWAP, r.Shares, r.Trades); err != nil {
			return fmt.Errorf("upsert hour %d symbol %s: %w", r.Hour, r.Symbol, err)
		}
	}
	return nil
}

func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}
