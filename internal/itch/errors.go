package itch

import "fmt"

// UnknownMessageTypeError reports a tag that is absent from the size table.
// Fatal: without a declared length there is no way to skip the body, and
// continuing would leave the cursor mid-message for every later read.
type UnknownMessageTypeError struct {
	Tag    byte
	Offset int64 // stream offset of the tag byte
}

func (e *UnknownMessageTypeError) Error() string {
	return fmt.Sprintf("unknown message type %q at offset %d", e.Tag, e.Offset)
}

// TruncatedStreamError reports a stream that ended inside a message body.
type TruncatedStreamError struct {
	Tag    byte
	Offset int64 // stream offset of the tag byte
	Want   int
	Got    int
}

func (e *TruncatedStreamError) Error() string {
	return fmt.Sprintf("truncated stream: message %q at offset %d declares %d body bytes, got %d",
		e.Tag, e.Offset, e.Want, e.Got)
}

// MalformedTradeMessageError reports a trade body whose length does not match
// the trade layout.
type MalformedTradeMessageError struct {
	Want int
	Got  int
}

func (e *MalformedTradeMessageError) Error() string {
	return fmt.Sprintf("malformed trade message: want %d body bytes, got %d", e.Want, e.Got)
}
