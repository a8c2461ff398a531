package source

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/go-resty/resty/v2"
)

const fetchTimeout = 30 * time.Minute // daily feed archives run to several GB

// Fetch downloads a feed archive into dir and returns the local path. An
// already-downloaded file is reused, so reruns over the same day are cheap.
func Fetch(rawURL, dir string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse input url: %w", err)
	}
	name := path.Base(u.Path)
	if name == "" || name == "/" || name == "." {
		name = "feed.bin"
	}
	local := filepath.Join(dir, name)
	if _, err := os.Stat(local); err == nil {
		slog.Info("input already downloaded", "path", local)
		return local, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	slog.Info("downloading input", "url", rawURL, "path", local)
	client := resty.New().SetTimeout(fetchTimeout)
	resp, err := client.R().SetOutput(local).Get(rawURL)
	if err != nil {
		return "", fmt.Errorf("download %s: %w", rawURL, err)
	}
	if resp.IsError() {
		os.Remove(local)
		return "", fmt.Errorf("download %s: status %s", rawURL, resp.Status())
	}
	return local, nil
}
