package saver

import (
	"github.com/parquet-go/parquet-go"

	"itch-vwap/internal/model"
)

// ParquetSaver writes rows as Parquet.
type ParquetSaver struct{}

func (ParquetSaver) Extension() string { return "parquet" }

func (ParquetSaver) Save(rows []model.VWAPRow, path string) error {
	return parquet.WriteFile(path, rows)
}
