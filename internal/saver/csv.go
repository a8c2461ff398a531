package saver

import (
	"encoding/csv"
	"os"
	"strconv"

	"itch-vwap/internal/model"
)

// CSVSaver writes rows as CSV (header: hour,symbol,vwap,shares,trades).
type CSVSaver struct{}

func (CSVSaver) Extension() string { return "csv" }

func (CSVSaver) Save(rows []model.VWAPRow, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"hour", "symbol", "vwap", "shares", "trades"}); err != nil {
		return err
	}
	for _, r := range rows {
		if err := w.Write([]string{
			strconv.Itoa(r.Hour),
			r.Symbol,
			strconv.FormatFloat(r.VWAP, 'f', 2, 64),
			strconv.FormatInt(r.Shares, 10),
			strconv.FormatInt(r.Trades, 10),
		}); err != nil {
			return err
		}
	}
	return w.Error()
}
