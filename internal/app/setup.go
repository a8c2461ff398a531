package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"itch-vwap/internal/itch"
	"itch-vwap/internal/saver"
	"itch-vwap/internal/sink"
	"itch-vwap/internal/source"
)

// LoadSizes returns the message size table: the built-in NASDAQ ITCH 5.0
// table, or the YAML override when configured.
func LoadSizes(cfg *Config) (itch.SizeTable, error) {
	if cfg.MsgSizesFile == "" {
		return itch.NASDAQSizes(), nil
	}
	t, err := itch.LoadSizeTable(cfg.MsgSizesFile)
	if err != nil {
		return nil, err
	}
	slog.Info("size table loaded", "path", cfg.MsgSizesFile, "tags", len(t))
	return t, nil
}

// CreateSink assembles the configured ResultSink fan-out.
// Options: console, file, sqlite, postgres.
func CreateSink(ctx context.Context, cfg *Config) (sink.ResultSink, error) {
	var sinks sink.Multi
	for _, name := range cfg.SinkList() {
		switch name {
		case "console":
			sinks = append(sinks, sink.NewConsole())
		case "file":
			rs := saver.NewRowSaver(cfg.SaveFormat)
			if rs == nil {
				return nil, fmt.Errorf("unsupported SAVE_FORMAT %q (use: csv, json, parquet)", cfg.SaveFormat)
			}
			fs, err := sink.NewFile(cfg.DataDir, rs)
			if err != nil {
				return nil, err
			}
			sinks = append(sinks, fs)
		case "sqlite":
			s, err := sink.NewSQLite(cfg.SQLiteOrDefault())
			if err != nil {
				return nil, err
			}
			sinks = append(sinks, s)
		case "postgres":
			s, err := sink.NewPostgres(ctx, cfg.Postgres)
			if err != nil {
				return nil, err
			}
			sinks = append(sinks, s)
		default:
			return nil, fmt.Errorf("unsupported sink %q (use: console, file, sqlite, postgres)", name)
		}
	}
	if len(sinks) == 0 {
		return nil, errors.New("no sinks configured")
	}
	return sinks, nil
}

// OpenInput resolves the configured input (downloading it first when it is a
// URL) and opens it as a decompressed byte source. Returns the local path for
// reporting.
func OpenInput(cfg *Config) (io.ReadCloser, string, error) {
	input := cfg.Input
	if input == "" {
		return nil, "", errors.New("INPUT not set (feed archive path or URL)")
	}
	if source.IsURL(input) {
		local, err := source.Fetch(input, cfg.DataDir)
		if err != nil {
			return nil, "", err
		}
		input = local
	}
	rc, err := source.Open(input)
	if err != nil {
		return nil, "", err
	}
	return rc, input, nil
}
