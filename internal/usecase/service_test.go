package usecase

import (
	"context"
	"testing"

	"svw.info/sudoku-csp/internal/domain"
	"svw.info/sudoku-csp/internal/hint"
	"svw.info/sudoku-csp/internal/solver"
	"svw.info/sudoku-csp/internal/validator"
)

func TestServiceNotConfigured(t *testing.T) {
	u := &Service{}
	ctx := context.Background()
	if _, err := u.Parse(ctx, ""); err == nil {
		t.Fatal("Parse with nil solver did not fail")
	}
	if _, _, err := u.Solve(ctx, ""); err == nil {
		t.Fatal("Solve with nil solver did not fail")
	}
	if _, _, err := u.Validate(ctx, domain.Grid{}); err == nil {
		t.Fatal("Validate with nil validator did not fail")
	}
	if _, _, err := u.Hint(ctx, domain.Grid{}); err == nil {
		t.Fatal("Hint with nil hinter did not fail")
	}
}

func TestServiceWired(t *testing.T) {
	u := NewService(solver.NewCSP(), validator.New(), hint.NewSingles())
	ctx := context.Background()
	const puzzle = "003020600900305001001806400008102900700000008006708200002609500800203009005010300"
	g, stats, err := u.Solve(ctx, puzzle)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if g == nil {
		t.Fatal("no solution for a solvable puzzle")
	}
	ok, conf, err := u.Validate(ctx, *g)
	if err != nil || !ok {
		t.Fatalf("solution failed validation: ok=%v conflicts=%v err=%v", ok, conf, err)
	}
	t.Logf("solved in %d steps, %v", stats.Steps, stats.Duration)
}
