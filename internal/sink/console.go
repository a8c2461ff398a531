package sink

import (
	"fmt"
	"io"
	"os"

	"itch-vwap/internal/model"
)

// Console prints each closed hour as a small table, the way the legacy parser
// echoed results while running.
type Console struct {
	W io.Writer
}

func NewConsole() *Console { return &Console{W: os.Stdout} }

func (c *Console) Emit(hour int, rows []model.VWAPRow) error {
	if _, err := fmt.Fprintf(c.W, "time: %d:00\n", hour); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(c.W, "%-8s %.2f\n", r.Symbol, r.VWAP); err != nil {
			return err
		}
	}
	return nil
}

func (c *Console) Close() error { return nil }
