package sink

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"itch-vwap/internal/model"
	"itch-vwap/internal/saver"
)

// File writes one file per closed hour, named <HH>00.<ext> under dir
// (e.g. 0900.csv), using the injected RowSaver for the format.
type File struct {
	dir string
	rs  saver.RowSaver
}

func NewFile(dir string, rs saver.RowSaver) (*File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", dir, err)
	}
	return &File{dir: dir, rs: rs}, nil
}

func (f *File) Emit(hour int, rows []model.VWAPRow) error {
	path := filepath.Join(f.dir, fmt.Sprintf("%02d00.%s", hour, f.rs.Extension()))
	if err := f.rs.Save(rows, path); err != nil {
		return fmt.Errorf("save hour %d: %w", hour, err)
	}
	slog.Info("hour saved", "hour", hour, "rows", len(rows), "path", path)
	return nil
}

func (f *File) Close() error { return nil }
