// Package solver implements a constraint-propagation Sudoku solver:
// AC-3 over the peer graph at construction, then backtracking search
// with minimum-remaining-values selection and least-constraining-value
// ordering.
package solver

import (
	"context"
	"errors"
	"fmt"

	"svw.info/sudoku-csp/internal/domain"
	"svw.info/sudoku-csp/internal/ports"
)

// ErrInconsistent reports a puzzle refuted before any search began.
var ErrInconsistent = errors.New("inconsistent puzzle")

// Engine holds the propagated starting state of one puzzle. Solve may be
// called any number of times; the stored state is never mutated.
type Engine struct {
	start *domain.State
}

// New parses an 81-character puzzle and establishes arc consistency.
// It fails when the string is malformed, when propagation empties a
// candidate set, or when two clues clash inside a unit.
func New(puzzle string) (*Engine, error) {
	s, err := domain.ParseState(puzzle)
	if err != nil {
		return nil, err
	}
	if !propagate(s) {
		return nil, fmt.Errorf("%w: propagation emptied a candidate set", ErrInconsistent)
	}
	if !s.Consistent() {
		return nil, fmt.Errorf("%w: duplicate value in a unit", ErrInconsistent)
	}
	return &Engine{start: s}, nil
}

// State returns a copy of the propagated starting state.
func (e *Engine) State() *domain.State { return e.start.Clone() }

// CSP exposes Engine construction and search behind the Solver port.
type CSP struct{}

func NewCSP() *CSP { return &CSP{} }

func (c *CSP) Parse(ctx context.Context, puzzle string) (*domain.Grid, error) {
	eng, err := New(puzzle)
	if err != nil {
		return nil, err
	}
	g := eng.start.ToGrid()
	return &g, nil
}

func (c *CSP) Solve(ctx context.Context, puzzle string) (*domain.Grid, ports.Stats, error) {
	eng, err := New(puzzle)
	if err != nil {
		return nil, ports.Stats{}, err
	}
	out, stats, err := eng.Solve(ctx)
	if err != nil || out == nil {
		return nil, stats, err
	}
	g := out.ToGrid()
	return &g, stats, nil
}
