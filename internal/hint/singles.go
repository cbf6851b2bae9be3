package hint

import (
	"context"
	"fmt"

	"svw.info/sudoku-csp/internal/domain"
)

// Singles implements a minimal Hinter that suggests naked singles.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

// Hint returns the first empty cell whose candidates have collapsed to a
// single digit, scanning in row-major order.
func (h *Singles) Hint(ctx context.Context, g domain.Grid) (domain.Hint, bool, error) {
	for c := domain.Cell(0); c < 81; c++ {
		if g[c.Row()][c.Col()] != 0 {
			continue
		}
		v, ok := soleCandidate(g, c)
		if !ok {
			continue
		}
		return domain.Hint{
			Message: fmt.Sprintf("Single: only %d fits here", v),
			Cell:    c.Coord(),
			Value:   v,
		}, true, nil
	}
	return domain.Hint{}, false, nil
}

func soleCandidate(g domain.Grid, c domain.Cell) (uint8, bool) {
	d := domain.Full
	for _, p := range domain.Peers(c) {
		if v := g[p.Row()][p.Col()]; v != 0 {
			d = d.Remove(v)
		}
	}
	return d.Value()
}
