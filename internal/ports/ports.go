package ports

import (
	"context"
	"time"

	"svw.info/sudoku-csp/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Steps    int
	Duration time.Duration
}

// ProgressObserver receives periodic snapshots of a running search.
type ProgressObserver interface {
	Progress(steps int, g domain.Grid)
}

// Solver reads and solves puzzles given in 81-character string form.
// A nil grid with a nil error from Solve means the puzzle has no solution.
type Solver interface {
	Parse(ctx context.Context, puzzle string) (*domain.Grid, error)
	Solve(ctx context.Context, puzzle string) (*domain.Grid, Stats, error)
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	Validate(ctx context.Context, g domain.Grid) (ok bool, conflicts []domain.CellCoord, err error)
}

// Hinter returns the next forced placement, if one exists.
type Hinter interface {
	Hint(ctx context.Context, g domain.Grid) (domain.Hint, bool, error)
}
