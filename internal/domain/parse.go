package domain

import (
	"errors"
	"fmt"
	"unicode"
)

// ErrFormat reports a puzzle string that cannot be read as 81 cells.
var ErrFormat = errors.New("malformed puzzle")

// ParseState reads an 81-character puzzle into a fresh candidate state.
// Whitespace is skipped; '0' and '.' mark empty cells, '1'..'9' are clues.
func ParseState(puzzle string) (*State, error) {
	s := NewState()
	idx := 0
	for _, r := range puzzle {
		if unicode.IsSpace(r) {
			continue
		}
		if idx >= 81 {
			// Keep counting so the error carries the full length.
			idx++
			continue
		}
		switch {
		case r == '0' || r == '.':
		case r >= '1' && r <= '9':
			s[idx] = Single(uint8(r - '0'))
		default:
			return nil, fmt.Errorf("%w: invalid character %q at cell %d", ErrFormat, r, idx)
		}
		idx++
	}
	if idx != 81 {
		return nil, fmt.Errorf("%w: need 81 cells, got %d", ErrFormat, idx)
	}
	return s, nil
}
