package itch

import (
	"bytes"
	"encoding/binary"
	"unicode/utf8"

	"itch-vwap/internal/model"
)

// TradeTag is the ITCH 5.0 non-cross trade message type.
const TradeTag byte = 'P'

// TradeBodyLen is the fixed body length of a non-cross trade message.
const TradeBodyLen = 43

// Field offsets within the trade body (big-endian throughout):
// stock locate u16 + tracking number u16 (0:4, unused), timestamp 48-bit (4:10),
// order reference u64 (10:18, unused), buy/sell indicator (18, unused),
// shares u32 (19:23), stock symbol 8 chars space-padded (23:31),
// price u32 scaled 1/10000 (31:35), match number u64 (35:43, unused).
const (
	offTimestamp = 4
	offShares    = 19
	offSymbol    = 23
	offPrice     = 31
)

const priceScale = 10000

// DecodeTrade decodes a non-cross trade body into a Trade. The timestamp is
// the 48-bit nanoseconds-since-midnight field zero-extended to 64 bits. An
// undecodable symbol does not fail the decode: the trade is kept under
// model.SymbolUndecodable. A body of the wrong length fails with
// MalformedTradeMessageError.
func DecodeTrade(body []byte) (model.Trade, error) {
	if len(body) != TradeBodyLen {
		return model.Trade{}, &MalformedTradeMessageError{Want: TradeBodyLen, Got: len(body)}
	}
	var ts [8]byte
	copy(ts[2:], body[offTimestamp:offTimestamp+6])
	return model.Trade{
		Timestamp: int64(binary.BigEndian.Uint64(ts[:])),
		Symbol:    decodeSymbol(body[offSymbol : offSymbol+8]),
		Shares:    binary.BigEndian.Uint32(body[offShares : offShares+4]),
		Price:     float64(binary.BigEndian.Uint32(body[offPrice:offPrice+4])) / priceScale,
	}, nil
}

func decodeSymbol(b []byte) string {
	s := bytes.TrimSpace(b)
	if !utf8.Valid(s) {
		return model.SymbolUndecodable
	}
	return string(s)
}
