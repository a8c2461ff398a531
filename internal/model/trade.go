package model

import "time"

// SymbolUndecodable is recorded as the instrument when the 8-byte symbol
// field does not hold valid text. The trade still counts toward the hour.
const SymbolUndecodable = "N/A"

// Trade is one decoded non-cross trade execution.
// Timestamp is nanoseconds since midnight, as carried on the wire.
type Trade struct {
	Timestamp int64
	Symbol    string
	Shares    uint32
	Price     float64 // wire value / 10000
}

// Hour returns the hour-of-day (0..23) the trade belongs to.
func (t Trade) Hour() int {
	return int(time.Duration(t.Timestamp)/time.Hour) % 24
}

// Notional returns shares * price for VWAP accumulation.
func (t Trade) Notional() float64 {
	return float64(t.Shares) * t.Price
}

// VWAPRow is one output row for a closed hour.
// Dùng chung cho sink và serialization (console, csv, json, parquet, DB).
type VWAPRow struct {
	Hour   int     `json:"hour" parquet:"hour"`
	Symbol string  `json:"symbol" parquet:"symbol"`
	VWAP   float64 `json:"vwap" parquet:"vwap"`
	Shares int64   `json:"shares,omitempty" parquet:"shares,optional"`
	Trades int64   `json:"trades,omitempty" parquet:"trades,optional"`
}
