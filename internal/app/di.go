package app

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"itch-vwap/internal/itch"
	"itch-vwap/internal/metrics"
	"itch-vwap/internal/pipeline"
	"itch-vwap/internal/sink"
)

// ProvideConfig loads config from environment (for Wire).
func ProvideConfig() (*Config, error) {
	return LoadConfig()
}

// ProvideSizes resolves the message size table (for Wire).
func ProvideSizes(cfg *Config) (itch.SizeTable, error) {
	return LoadSizes(cfg)
}

// ProvideMetrics registers the pipeline counters (for Wire).
func ProvideMetrics() (*metrics.Counters, *prometheus.Registry) {
	return metrics.New()
}

// ProvideSink assembles the configured sinks (for Wire).
// Caller must Close the sink when shutting down.
func ProvideSink(cfg *Config) (sink.ResultSink, error) {
	return CreateSink(context.Background(), cfg)
}

// ProvidePipeline wires the driver loop (for Wire).
func ProvidePipeline(cfg *Config, sizes itch.SizeTable, s sink.ResultSink, m *metrics.Counters) *pipeline.Pipeline {
	return pipeline.New(sizes, cfg.TradeTagByte(), s, m, cfg.EmitFinalPartial)
}
