package vwap

import (
	"math"
	"sort"

	"itch-vwap/internal/model"
)

// accum is the running per-symbol sum for the open hour. Trades are folded in
// as they arrive; no per-trade records are retained.
type accum struct {
	shares   int64
	notional float64
	trades   int64
}

// Result is the output of one closed hour bucket.
type Result struct {
	Hour int
	Rows []model.VWAPRow
}

// Aggregator buckets trades by hour-of-day and computes per-symbol VWAP when
// the hour rolls over. Two states: no bucket open (before the first trade) and
// one bucket open at a given hour. Not safe for concurrent use; feed it from a
// single goroutine in timestamp order.
type Aggregator struct {
	open     bool
	hour     int
	accums   map[string]*accum
	outOfSeq int64
}

func New() *Aggregator {
	return &Aggregator{accums: make(map[string]*accum)}
}

// Add feeds one trade in arrival order. When the trade's hour is the next
// sequential hour (mod 24), the open bucket is closed and returned, and the
// trade opens the new bucket. A trade whose hour is neither the current nor
// the next hour is counted as out-of-sequence and folded into the open bucket,
// matching the arrival-order semantics of the feed; callers can inspect
// OutOfSequence to surface the anomaly.
func (a *Aggregator) Add(t model.Trade) *Result {
	h := t.Hour()
	if !a.open {
		a.open = true
		a.hour = h
		a.fold(t)
		return nil
	}
	switch {
	case h == a.hour:
		a.fold(t)
		return nil
	case h == (a.hour+1)%24:
		res := a.closeBucket()
		a.hour = h
		a.fold(t)
		return res
	default:
		a.outOfSeq++
		a.fold(t)
		return nil
	}
}

// FlushOpen closes the currently open bucket without a boundary trade, for
// end-of-stream handling. Returns nil when no bucket is open. Whether the
// final partial hour is emitted at all is the caller's decision.
func (a *Aggregator) FlushOpen() *Result {
	if !a.open {
		return nil
	}
	res := a.closeBucket()
	a.open = false
	return res
}

// OutOfSequence returns how many trades arrived with an hour that was neither
// the open bucket's hour nor its successor.
func (a *Aggregator) OutOfSequence() int64 { return a.outOfSeq }

func (a *Aggregator) fold(t model.Trade) {
	acc := a.accums[t.Symbol]
	if acc == nil {
		acc = &accum{}
		a.accums[t.Symbol] = acc
	}
	acc.shares += int64(t.Shares)
	acc.notional += t.Notional()
	acc.trades++
}

func (a *Aggregator) closeBucket() *Result {
	rows := make([]model.VWAPRow, 0, len(a.accums))
	for sym, acc := range a.accums {
		if acc.shares == 0 {
			// cannot happen for a bucket fed real trades, but never divide by it
			continue
		}
		rows = append(rows, model.VWAPRow{
			Hour:   a.hour,
			Symbol: sym,
			VWAP:   round2(acc.notional / float64(acc.shares)),
			Shares: acc.shares,
			Trades: acc.trades,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Symbol < rows[j].Symbol })
	a.accums = make(map[string]*accum)
	return &Result{Hour: a.hour, Rows: rows}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
