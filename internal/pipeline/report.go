package pipeline

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

type runReport struct {
	Input      string `json:"input"`
	StartedAt  string `json:"started_at"`
	FinishedAt string `json:"finished_at"`
	Error      string `json:"error,omitempty"`
	Stats      *Stats `json:"stats"`
}

// WriteRunReport writes .lastrun.json into dir so an operator can see what
// the previous run did without scraping logs.
func WriteRunReport(dir, input string, started time.Time, stats *Stats, runErr error) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	rep := runReport{
		Input:      input,
		StartedAt:  started.UTC().Format(time.RFC3339),
		FinishedAt: time.Now().UTC().Format(time.RFC3339),
		Stats:      stats,
	}
	if runErr != nil {
		rep.Error = runErr.Error()
	}
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return err
	}
	p := filepath.Join(dir, ".lastrun.json")
	if err := os.WriteFile(p, data, 0644); err != nil {
		return err
	}
	slog.Info("run report saved", "path", p)
	return nil
}
