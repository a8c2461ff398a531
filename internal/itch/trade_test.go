package itch

import (
	"encoding/binary"
	"errors"
	"testing"

	"itch-vwap/internal/model"
)

// encodeTradeBody builds a 43-byte non-cross trade body for tests.
func encodeTradeBody(tsNanos uint64, symbol string, shares uint32, price4 uint32) []byte {
	body := make([]byte, TradeBodyLen)
	var ts [8]byte
	binary.BigEndian.PutUint64(ts[:], tsNanos)
	copy(body[4:10], ts[2:])
	binary.BigEndian.PutUint32(body[19:23], shares)
	sym := []byte(symbol)
	for len(sym) < 8 {
		sym = append(sym, ' ')
	}
	copy(body[23:31], sym)
	binary.BigEndian.PutUint32(body[31:35], price4)
	return body
}

func TestDecodeTradeRoundTrip(t *testing.T) {
	const nsPerHour = uint64(3600) * 1e9
	ts := 9*nsPerHour + 12345
	body := encodeTradeBody(ts, "AAPL", 100, 100000) // price 10.0000

	trade, err := DecodeTrade(body)
	if err != nil {
		t.Fatalf("DecodeTrade: %v", err)
	}
	if trade.Timestamp != int64(ts) {
		t.Errorf("timestamp = %d, want %d", trade.Timestamp, ts)
	}
	if trade.Hour() != 9 {
		t.Errorf("hour = %d, want 9", trade.Hour())
	}
	if trade.Symbol != "AAPL" {
		t.Errorf("symbol = %q, want AAPL", trade.Symbol)
	}
	if trade.Shares != 100 {
		t.Errorf("shares = %d, want 100", trade.Shares)
	}
	if trade.Price != 10.0 {
		t.Errorf("price = %v, want 10.0", trade.Price)
	}
}

func TestDecodeTradeHighTimestampBits(t *testing.T) {
	// 48-bit field at its max must zero-extend, not sign-extend.
	ts := uint64(1)<<48 - 1
	body := encodeTradeBody(ts, "MSFT", 1, 10000)
	trade, err := DecodeTrade(body)
	if err != nil {
		t.Fatalf("DecodeTrade: %v", err)
	}
	if trade.Timestamp != int64(ts) {
		t.Fatalf("timestamp = %d, want %d", trade.Timestamp, ts)
	}
}

func TestDecodeTradeUndecodableSymbol(t *testing.T) {
	body := encodeTradeBody(1000, "", 50, 25000)
	copy(body[23:31], []byte{0xFF, 0xFE, 0xFD, ' ', ' ', ' ', ' ', ' '})

	trade, err := DecodeTrade(body)
	if err != nil {
		t.Fatalf("undecodable symbol must not fail the decode: %v", err)
	}
	if trade.Symbol != model.SymbolUndecodable {
		t.Fatalf("symbol = %q, want %q", trade.Symbol, model.SymbolUndecodable)
	}
	if trade.Shares != 50 || trade.Price != 2.5 {
		t.Fatalf("numeric fields lost: shares=%d price=%v", trade.Shares, trade.Price)
	}
}

func TestDecodeTradeWrongLength(t *testing.T) {
	for _, n := range []int{0, 42, 44} {
		_, err := DecodeTrade(make([]byte, n))
		var malformed *MalformedTradeMessageError
		if !errors.As(err, &malformed) {
			t.Fatalf("len %d: want MalformedTradeMessageError, got %v", n, err)
		}
		if malformed.Got != n || malformed.Want != TradeBodyLen {
			t.Fatalf("len %d: got %+v", n, malformed)
		}
	}
}

func TestDecodeTradePriceScaling(t *testing.T) {
	// 4 implied decimals: 1234567 → 123.4567
	body := encodeTradeBody(0, "GOOG", 10, 1234567)
	trade, err := DecodeTrade(body)
	if err != nil {
		t.Fatalf("DecodeTrade: %v", err)
	}
	if trade.Price != 123.4567 {
		t.Fatalf("price = %v, want 123.4567", trade.Price)
	}
}
