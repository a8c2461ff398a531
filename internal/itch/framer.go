package itch

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

const framerBufSize = 1 << 16

// RawMessage is one framed message: its type tag and exact-length body.
type RawMessage struct {
	Type byte
	Body []byte
}

// Framer splits a byte stream into tagged fixed-length messages using a
// SizeTable. The body buffer is reused: a RawMessage is only valid until the
// next call to Next.
type Framer struct {
	r      *bufio.Reader
	sizes  SizeTable
	buf    []byte
	offset int64
}

// NewFramer wraps r with buffering and frames it against sizes.
func NewFramer(r io.Reader, sizes SizeTable) *Framer {
	return &Framer{
		r:     bufio.NewReaderSize(r, framerBufSize),
		sizes: sizes,
		buf:   make([]byte, sizes.MaxBodyLen()),
	}
}

// Next returns the next message. io.EOF means the stream ended cleanly on a
// message boundary. Any other error is fatal for the stream: the framer must
// not be advanced again after it.
func (f *Framer) Next() (RawMessage, error) {
	tag, err := f.r.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return RawMessage{}, io.EOF
		}
		return RawMessage{}, fmt.Errorf("read tag at offset %d: %w", f.offset, err)
	}
	tagOffset := f.offset
	f.offset++

	size, ok := f.sizes[tag]
	if !ok {
		return RawMessage{}, &UnknownMessageTypeError{Tag: tag, Offset: tagOffset}
	}

	body := f.buf[:size]
	n, err := io.ReadFull(f.r, body)
	f.offset += int64(n)
	if err != nil {
		// io.EOF / io.ErrUnexpectedEOF both mean the body was cut short.
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return RawMessage{}, &TruncatedStreamError{Tag: tag, Offset: tagOffset, Want: size, Got: n}
		}
		return RawMessage{}, fmt.Errorf("read body of %q at offset %d: %w", tag, tagOffset, err)
	}
	return RawMessage{Type: tag, Body: body}, nil
}

// Offset returns the number of bytes consumed so far.
func (f *Framer) Offset() int64 { return f.offset }
