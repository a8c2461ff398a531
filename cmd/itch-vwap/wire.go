//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"itch-vwap/internal/app"
)

// InitializeApp builds App via Wire.
// Caller must Close a.Sink when done.
func InitializeApp() (*App, error) {
	wire.Build(
		app.ProvideConfig,
		app.ProvideSizes,
		app.ProvideMetrics,
		app.ProvideSink,
		app.ProvidePipeline,
		wire.Struct(new(App), "Config", "Sink", "Counters", "Registry", "Pipeline"),
	)
	return nil, nil
}
