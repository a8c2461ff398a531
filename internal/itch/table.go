package itch

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SizeTable maps a one-byte message type tag to the fixed body length of that
// type (excluding the tag byte itself). The table must be complete for the
// feed version being parsed: the stream carries no delimiters, so a tag that
// is missing here cannot be skipped without losing frame alignment.
type SizeTable map[byte]int

// NASDAQSizes returns the ITCH 5.0 body lengths.
func NASDAQSizes() SizeTable {
	return SizeTable{
		'S': 11,
		'R': 38,
		'H': 24,
		'Y': 19,
		'L': 25,
		'V': 34,
		'W': 11,
		'K': 27,
		'A': 35,
		'F': 39,
		'E': 30,
		'C': 35,
		'X': 22,
		'D': 18,
		'U': 34,
		'P': 43,
		'Q': 39,
		'B': 18,
		'I': 49,
		'N': 19,
	}
}

// MaxBodyLen returns the largest body length in the table.
func (t SizeTable) MaxBodyLen() int {
	max := 0
	for _, n := range t {
		if n > max {
			max = n
		}
	}
	return max
}

// LoadSizeTable reads a tag → body-length table from a YAML file, e.g.
//
//	P: 43
//	S: 11
//
// Tags must be single characters and lengths positive.
func LoadSizeTable(path string) (SizeTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read size table %s: %w", path, err)
	}
	var raw map[string]int
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse size table %s: %w", path, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("size table %s is empty", path)
	}
	t := make(SizeTable, len(raw))
	for k, v := range raw {
		if len(k) != 1 {
			return nil, fmt.Errorf("size table %s: tag %q must be a single character", path, k)
		}
		if v <= 0 {
			return nil, fmt.Errorf("size table %s: tag %q has non-positive length %d", path, k, v)
		}
		t[k[0]] = v
	}
	return t, nil
}
