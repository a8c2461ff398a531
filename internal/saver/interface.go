package saver

import (
	"strings"

	"itch-vwap/internal/model"
)

// RowSaver là abstraction cho lưu rows của một closed hour ra file.
// High-level (sink) inject implementation; pipeline chỉ phụ thuộc interface — DIP.
type RowSaver interface {
	Save(rows []model.VWAPRow, path string) error
	Extension() string
}

// NewRowSaver creates implementation by format (csv, json, parquet).
// Returns nil if format not supported.
func NewRowSaver(format string) RowSaver {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "csv":
		return CSVSaver{}
	case "json":
		return JSONSaver{}
	case "parquet":
		return ParquetSaver{}
	default:
		return nil
	}
}
