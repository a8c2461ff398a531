package sink

import (
	"itch-vwap/internal/model"
)

// ResultSink receives the ordered rows of each closed hour bucket.
// Emit is called once per closed hour, rows sorted by symbol.
type ResultSink interface {
	Emit(hour int, rows []model.VWAPRow) error
	Close() error
}

// Multi fans one Emit out to several sinks, failing on the first error.
type Multi []ResultSink

func (m Multi) Emit(hour int, rows []model.VWAPRow) error {
	for _, s := range m {
		if err := s.Emit(hour, rows); err != nil {
			return err
		}
	}
	return nil
}

func (m Multi) Close() error {
	var first error
	for _, s := range m {
		if err := s.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
