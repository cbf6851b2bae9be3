package domain

// Cell indexes the 81 board positions in row-major order.
type Cell int

// MakeCell builds a cell index from a row/column pair.
func MakeCell(row, col int) Cell { return Cell(row*9 + col) }

func (c Cell) Row() int { return int(c) / 9 }
func (c Cell) Col() int { return int(c) % 9 }

// Coord returns the cell's row/column pair.
func (c Cell) Coord() CellCoord { return CellCoord{Row: c.Row(), Col: c.Col()} }

// peers[c] holds the 20 cells that share a row, column, or box with c.
var peers [81][20]Cell

func init() {
	for c := Cell(0); c < 81; c++ {
		row, col := c.Row(), c.Col()
		seen := [81]bool{}
		seen[c] = true
		n := 0
		add := func(p Cell) {
			if !seen[p] {
				seen[p] = true
				peers[c][n] = p
				n++
			}
		}
		for i := 0; i < 9; i++ {
			add(MakeCell(row, i))
			add(MakeCell(i, col))
		}
		br, bc := row/3*3, col/3*3
		for dr := 0; dr < 3; dr++ {
			for dc := 0; dc < 3; dc++ {
				add(MakeCell(br+dr, bc+dc))
			}
		}
	}
}

// Peers returns the 20 peers of c. The returned slice is shared and must
// not be modified.
func Peers(c Cell) []Cell { return peers[c][:] }
