package main

import (
	"github.com/prometheus/client_golang/prometheus"

	"itch-vwap/internal/app"
	"itch-vwap/internal/metrics"
	"itch-vwap/internal/pipeline"
	"itch-vwap/internal/sink"
)

// App holds application dependencies built by Wire.
type App struct {
	Config   *app.Config
	Sink     sink.ResultSink
	Counters *metrics.Counters
	Registry *prometheus.Registry
	Pipeline *pipeline.Pipeline
}
