package itch

import (
	"bytes"
	"errors"
	"io"
	"os"
	"testing"
)

func testTable() SizeTable {
	return SizeTable{'P': 3, 'S': 1}
}

func TestFramerFramesMessagesInOrder(t *testing.T) {
	stream := []byte{'S', 0xAA, 'P', 1, 2, 3, 'S', 0xBB}
	f := NewFramer(bytes.NewReader(stream), testTable())

	msg, err := f.Next()
	if err != nil {
		t.Fatalf("first Next: %v", err)
	}
	if msg.Type != 'S' || !bytes.Equal(msg.Body, []byte{0xAA}) {
		t.Fatalf("first message = %c %v", msg.Type, msg.Body)
	}

	msg, err = f.Next()
	if err != nil {
		t.Fatalf("second Next: %v", err)
	}
	if msg.Type != 'P' || !bytes.Equal(msg.Body, []byte{1, 2, 3}) {
		t.Fatalf("second message = %c %v", msg.Type, msg.Body)
	}

	msg, err = f.Next()
	if err != nil {
		t.Fatalf("third Next: %v", err)
	}
	if msg.Type != 'S' || !bytes.Equal(msg.Body, []byte{0xBB}) {
		t.Fatalf("third message = %c %v", msg.Type, msg.Body)
	}

	if _, err := f.Next(); err != io.EOF {
		t.Fatalf("after last message want io.EOF, got %v", err)
	}
	if f.Offset() != int64(len(stream)) {
		t.Fatalf("offset = %d, want %d", f.Offset(), len(stream))
	}
}

func TestFramerEmptyStreamIsCleanEOF(t *testing.T) {
	f := NewFramer(bytes.NewReader(nil), testTable())
	if _, err := f.Next(); err != io.EOF {
		t.Fatalf("want io.EOF, got %v", err)
	}
}

func TestFramerUnknownTagIsFatal(t *testing.T) {
	stream := []byte{'S', 0xAA, 'Z', 1, 2, 'P', 1, 2, 3}
	f := NewFramer(bytes.NewReader(stream), testTable())

	if _, err := f.Next(); err != nil {
		t.Fatalf("first Next: %v", err)
	}
	_, err := f.Next()
	var unknown *UnknownMessageTypeError
	if !errors.As(err, &unknown) {
		t.Fatalf("want UnknownMessageTypeError, got %v", err)
	}
	if unknown.Tag != 'Z' || unknown.Offset != 2 {
		t.Fatalf("unknown tag %c at offset %d, want Z at 2", unknown.Tag, unknown.Offset)
	}
}

func TestFramerTruncatedBodyIsFatal(t *testing.T) {
	stream := []byte{'P', 1, 2} // declares 3 body bytes, delivers 2
	f := NewFramer(bytes.NewReader(stream), testTable())

	_, err := f.Next()
	var trunc *TruncatedStreamError
	if !errors.As(err, &trunc) {
		t.Fatalf("want TruncatedStreamError, got %v", err)
	}
	if trunc.Tag != 'P' || trunc.Offset != 0 || trunc.Want != 3 || trunc.Got != 2 {
		t.Fatalf("got %+v", trunc)
	}
}

func TestFramerTagWithZeroAvailableBody(t *testing.T) {
	stream := []byte{'P'}
	f := NewFramer(bytes.NewReader(stream), testTable())

	_, err := f.Next()
	var trunc *TruncatedStreamError
	if !errors.As(err, &trunc) {
		t.Fatalf("want TruncatedStreamError, got %v", err)
	}
	if trunc.Got != 0 {
		t.Fatalf("got %d body bytes, want 0", trunc.Got)
	}
}

func TestLoadSizeTable(t *testing.T) {
	path := t.TempDir() + "/sizes.yaml"
	if err := os.WriteFile(path, []byte("P: 43\nS: 11\n"), 0644); err != nil {
		t.Fatal(err)
	}
	tbl, err := LoadSizeTable(path)
	if err != nil {
		t.Fatalf("LoadSizeTable: %v", err)
	}
	if tbl['P'] != 43 || tbl['S'] != 11 {
		t.Fatalf("table = %v", tbl)
	}

	bad := t.TempDir() + "/bad.yaml"
	if err := os.WriteFile(bad, []byte("PX: 43\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSizeTable(bad); err == nil {
		t.Fatal("multi-character tag accepted")
	}
}

func BenchmarkFramerNext(b *testing.B) {
	sizes := NASDAQSizes()
	one := make([]byte, 1+sizes[TradeTag])
	one[0] = TradeTag
	var stream []byte
	for i := 0; i < 1000; i++ {
		stream = append(stream, one...)
	}
	b.SetBytes(int64(len(stream)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f := NewFramer(bytes.NewReader(stream), sizes)
		for {
			if _, err := f.Next(); err != nil {
				break
			}
		}
	}
}
