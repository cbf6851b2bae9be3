package domain

import "strings"

// State holds the candidate domains of all 81 cells.
type State [81]Domain

// NewState returns a state with every digit open in every cell.
func NewState() *State {
	var s State
	for i := range s {
		s[i] = Full
	}
	return &s
}

// Clone returns an independent copy.
func (s *State) Clone() *State {
	c := *s
	return &c
}

// Assigned reports whether every cell is down to a single candidate.
func (s *State) Assigned() bool {
	for _, d := range s {
		if d.Size() != 1 {
			return false
		}
	}
	return true
}

// Consistent reports whether no two assigned peers hold the same digit.
// Cells with more than one candidate are ignored.
func (s *State) Consistent() bool {
	for c := Cell(0); c < 81; c++ {
		v, ok := s[c].Value()
		if !ok {
			continue
		}
		for _, p := range Peers(c) {
			if p < c {
				continue
			}
			if pv, ok := s[p].Value(); ok && pv == v {
				return false
			}
		}
	}
	return true
}

// Solved reports whether the state is a complete, conflict-free grid.
func (s *State) Solved() bool { return s.Assigned() && s.Consistent() }

// ToGrid projects the assigned cells onto a plain grid. Undecided cells
// come out as zero.
func (s *State) ToGrid() Grid {
	var g Grid
	for c := Cell(0); c < 81; c++ {
		if v, ok := s[c].Value(); ok {
			g[c.Row()][c.Col()] = v
		}
	}
	return g
}

func (s *State) String() string { return s.ToGrid().String() }

// Pretty renders the assigned cells as a bordered grid for terminals.
func (s *State) Pretty() string { return s.ToGrid().Pretty() }

// Grid is a plain 9x9 value matrix, zero for empty.
type Grid [9][9]uint8

// String renders the grid as 81 digits in row-major order, with '0' for
// empty cells.
func (g Grid) String() string {
	var b strings.Builder
	b.Grow(81)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			b.WriteByte('0' + g[r][c])
		}
	}
	return b.String()
}

// Pretty renders the grid with box separators, one row per line.
func (g Grid) Pretty() string {
	var b strings.Builder
	for r := 0; r < 9; r++ {
		if r == 3 || r == 6 {
			b.WriteString("------+-------+------\n")
		}
		for c := 0; c < 9; c++ {
			if c == 3 || c == 6 {
				b.WriteString("| ")
			}
			if v := g[r][c]; v == 0 {
				b.WriteByte('.')
			} else {
				b.WriteByte('0' + v)
			}
			if c != 8 {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// CellCoord identifies a cell position on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Hint describes a suggested placement.
type Hint struct {
	Message string    `json:"message,omitempty"`
	Cell    CellCoord `json:"cell"`
	Value   uint8     `json:"value"`
}
