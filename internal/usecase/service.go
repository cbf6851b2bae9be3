package usecase

import (
	"context"
	"errors"

	"svw.info/sudoku-csp/internal/domain"
	"svw.info/sudoku-csp/internal/ports"
)

type Service struct {
	Solver    ports.Solver
	Validator ports.Validator
	Hinter    ports.Hinter
}

func NewService(s ports.Solver, v ports.Validator, h ports.Hinter) *Service {
	return &Service{Solver: s, Validator: v, Hinter: h}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Parse(ctx context.Context, puzzle string) (*domain.Grid, error) {
	if u.Solver == nil {
		return nil, errNotConfigured
	}
	return u.Solver.Parse(ctx, puzzle)
}

func (u *Service) Solve(ctx context.Context, puzzle string) (*domain.Grid, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, puzzle)
}

func (u *Service) Validate(ctx context.Context, g domain.Grid) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, g)
}

func (u *Service) Hint(ctx context.Context, g domain.Grid) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, g)
}
