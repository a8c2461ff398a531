package pipeline

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"itch-vwap/internal/itch"
	"itch-vwap/internal/metrics"
	"itch-vwap/internal/model"
	"itch-vwap/internal/sink"
	"itch-vwap/internal/vwap"
)

// Stats summarizes one run over a feed stream.
type Stats struct {
	Bytes      int64            `json:"bytes"`
	Messages   int64            `json:"messages"`
	PerTag     map[string]int64 `json:"per_tag"`
	Trades     int64            `json:"trades"`
	BadSymbols int64            `json:"undecodable_symbols"`
	Buckets    int64            `json:"buckets_emitted"`
	OutOfSeq   int64            `json:"out_of_sequence"`
}

// Pipeline is the single-threaded driver loop: frame → decode trades →
// aggregate by hour → emit closed buckets to the sink. Strict arrival order,
// no concurrency; the aggregator depends on it.
type Pipeline struct {
	sizes            itch.SizeTable
	tradeTag         byte
	sink             sink.ResultSink
	m                *metrics.Counters
	emitFinalPartial bool
}

func New(sizes itch.SizeTable, tradeTag byte, s sink.ResultSink, m *metrics.Counters, emitFinalPartial bool) *Pipeline {
	return &Pipeline{sizes: sizes, tradeTag: tradeTag, sink: s, m: m, emitFinalPartial: emitFinalPartial}
}

// Run consumes the stream to exhaustion. Fatal framing or decode errors stop
// the run without emitting the hour in progress; the returned Stats reflect
// what was processed up to that point.
func (p *Pipeline) Run(r io.Reader) (*Stats, error) {
	f := itch.NewFramer(r, p.sizes)
	agg := vwap.New()
	stats := &Stats{PerTag: make(map[string]int64)}
	defer func() {
		stats.Bytes = f.Offset()
		stats.OutOfSeq = agg.OutOfSequence()
	}()

	var seenOutOfSeq int64
	for {
		msg, err := f.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return stats, err
		}
		stats.Messages++
		stats.PerTag[string(msg.Type)]++
		p.m.Messages.WithLabelValues(string(msg.Type)).Inc()

		if msg.Type != p.tradeTag {
			continue
		}
		trade, err := itch.DecodeTrade(msg.Body)
		if err != nil {
			return stats, fmt.Errorf("trade message ending at offset %d: %w", f.Offset(), err)
		}
		stats.Trades++
		p.m.Trades.Inc()
		if trade.Symbol == model.SymbolUndecodable {
			stats.BadSymbols++
			p.m.BadSymbols.Inc()
		}

		res := agg.Add(trade)
		if n := agg.OutOfSequence(); n > seenOutOfSeq {
			seenOutOfSeq = n
			p.m.OutOfSeq.Inc()
			slog.Warn("trade hour out of sequence, folded into open bucket",
				"trade_hour", trade.Hour(), "offset", f.Offset())
		}
		if res != nil {
			if err := p.emit(stats, res); err != nil {
				return stats, err
			}
		}
	}

	if p.emitFinalPartial {
		if res := agg.FlushOpen(); res != nil {
			if err := p.emit(stats, res); err != nil {
				return stats, err
			}
		}
	}
	return stats, nil
}

func (p *Pipeline) emit(stats *Stats, res *vwap.Result) error {
	if err := p.sink.Emit(res.Hour, res.Rows); err != nil {
		return fmt.Errorf("emit hour %d: %w", res.Hour, err)
	}
	stats.Buckets++
	p.m.Buckets.Inc()
	return nil
}

// Scan frames the whole stream without decoding, counting messages per tag.
// Used by the scan subcommand to verify size-table completeness for a feed.
func (p *Pipeline) Scan(r io.Reader) (*Stats, error) {
	f := itch.NewFramer(r, p.sizes)
	stats := &Stats{PerTag: make(map[string]int64)}
	defer func() { stats.Bytes = f.Offset() }()
	for {
		msg, err := f.Next()
		if errors.Is(err, io.EOF) {
			return stats, nil
		}
		if err != nil {
			return stats, err
		}
		stats.Messages++
		stats.PerTag[string(msg.Type)]++
		p.m.Messages.WithLabelValues(string(msg.Type)).Inc()
	}
}
