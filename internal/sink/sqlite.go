package sink

import (
	"database/sql"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite"

	"itch-vwap/internal/model"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS hourly_vwap (
	hour   INTEGER,
	symbol TEXT,
	vwap   REAL,
	shares INTEGER,
	trades INTEGER,
	PRIMARY KEY (hour, symbol)
);`

const sqliteUpsert = `
INSERT INTO hourly_vwap(hour, symbol, vwap, shares, trades)
VALUES(?, ?, ?, ?, ?)
ON CONFLICT(hour, symbol) DO UPDATE
SET vwap=excluded.vwap, shares=excluded.shares, trades=excluded.trades;`

// SQLite persists closed hours into a local database file.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL;"); err != nil {
		slog.Warn("could not set WAL mode", "error", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Emit(hour int, rows []model.VWAPRow) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := tx.Exec(sqliteUpsert, r.Hour, r.Symbol, r.VWAP, r.Shares, r.Trades); err != nil {
			tx.Rollback()
			return fmt.Errorf("upsert hour %d symbol %s: %w", r.Hour, r.Symbol, err)
		}
	}
	return tx.Commit()
}

func (s *SQLite) Close() error { return s.db.Close() }
