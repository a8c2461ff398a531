package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Counters bundles the pipeline's Prometheus counters. They are registered on
// a private registry so tests can construct them repeatedly.
type Counters struct {
	Messages   *prometheus.CounterVec
	Trades     prometheus.Counter
	BadSymbols prometheus.Counter
	Buckets    prometheus.Counter
	OutOfSeq   prometheus.Counter
}

// New registers pipeline counters on a fresh registry and returns both.
func New() (*Counters, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	p := &Counters{
		Messages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "itch_messages_total", Help: "Messages framed, by type tag",
		}, []string{"tag"}),
		Trades: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "itch_trades_total", Help: "Trade messages decoded",
		}),
		BadSymbols: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "itch_undecodable_symbols_total", Help: "Trades recorded under the undecodable-symbol sentinel",
		}),
		Buckets: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vwap_buckets_emitted_total", Help: "Hour buckets flushed to sinks",
		}),
		OutOfSeq: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vwap_out_of_sequence_total", Help: "Trades with an hour that was neither current nor next",
		}),
	}
	reg.MustRegister(p.Messages, p.Trades, p.BadSymbols, p.Buckets, p.OutOfSeq)
	return p, reg
}

// Serve exposes the registry on :port. No-op when port is 0.
func Serve(port int, reg *prometheus.Registry) {
	if port == 0 {
		return
	}
	go func() {
		_ = http.ListenAndServe(fmt.Sprintf(":%d", port), promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}()
}
