package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"

	"itch-vwap/internal/sink"
)

// Config holds application configuration from env.
type Config struct {
	Input            string `envconfig:"INPUT"`
	DataDir          string `envconfig:"DATA_DIR" default:"out"`
	SaveFormat       string `envconfig:"SAVE_FORMAT" default:"csv" validate:"oneof=csv json parquet"`
	Sinks            string `envconfig:"SINKS" default:"console,file" validate:"required"`
	MsgSizesFile     string `envconfig:"MSG_SIZES_FILE"`
	TradeTag         string `envconfig:"TRADE_TAG" default:"P" validate:"len=1"`
	EmitFinalPartial bool   `envconfig:"EMIT_FINAL_PARTIAL" default:"false"`
	LogLevel         string `envconfig:"LOG_LEVEL" default:"info"` // debug | info | warn | error
	MetricsPort      int    `envconfig:"METRICS_PORT" default:"0" validate:"gte=0,lte=65535"`
	SQLitePath       string `envconfig:"SQLITE_PATH"`
	Postgres         sink.PostgresConfig
}

// LoadConfig reads config from environment and validates it.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("read env config: %w", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

// SinkList returns the configured sink names, trimmed.
func (c *Config) SinkList() []string {
	parts := strings.Split(c.Sinks, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// TradeTagByte returns the trade-execution tag as a byte.
func (c *Config) TradeTagByte() byte { return c.TradeTag[0] }

// SQLiteOrDefault returns the sqlite sink path, defaulting under DataDir.
func (c *Config) SQLiteOrDefault() string {
	if c.SQLitePath != "" {
		return c.SQLitePath
	}
	return filepath.Join(c.DataDir, "vwap.db")
}
