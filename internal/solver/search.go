package solver

import (
	"context"
	"sort"
	"time"

	"github.com/samber/lo"

	"svw.info/sudoku-csp/internal/domain"
	"svw.info/sudoku-csp/internal/ports"
)

const defaultInterval = 1000

// Option configures a single Solve call.
type Option func(*search)

// WithProgress reports the search state to obs every interval steps.
// Intervals below one are clamped to one.
func WithProgress(obs ports.ProgressObserver, interval int) Option {
	return func(s *search) {
		if interval < 1 {
			interval = 1
		}
		s.obs = obs
		s.interval = interval
	}
}

type search struct {
	obs      ports.ProgressObserver
	interval int
	steps    int
}

// Solve runs backtracking search from the propagated state. A nil state
// with a nil error means the puzzle has no solution. The same Engine
// always produces the same solution and the same step count.
func (e *Engine) Solve(ctx context.Context, opts ...Option) (*domain.State, ports.Stats, error) {
	begin := time.Now()
	srch := &search{interval: defaultInterval}
	for _, o := range opts {
		o(srch)
	}
	out, err := srch.backtrack(ctx, e.start.Clone())
	stats := ports.Stats{Steps: srch.steps, Duration: time.Since(begin)}
	if err != nil {
		return nil, stats, err
	}
	return out, stats, nil
}

func (s *search) backtrack(ctx context.Context, st *domain.State) (*domain.State, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.steps++
	if s.obs != nil && s.steps%s.interval == 0 {
		s.obs.Progress(s.steps, st.ToGrid())
	}
	cell, ok := selectCell(st)
	if !ok {
		// Every cell is down to one candidate; accept only a real solution.
		if st.Consistent() {
			return st, nil
		}
		return nil, nil
	}
	for _, v := range orderValues(st, cell) {
		if conflicts(st, cell, v) {
			continue
		}
		next := forwardCheck(st, cell, v)
		if next == nil {
			continue
		}
		out, err := s.backtrack(ctx, next)
		if err != nil || out != nil {
			return out, err
		}
	}
	return nil, nil
}

// selectCell picks the undecided cell with the fewest candidates, scanning
// in row-major order so ties resolve deterministically.
func selectCell(s *domain.State) (domain.Cell, bool) {
	best := domain.Cell(-1)
	bestSize := 10
	for c := domain.Cell(0); c < 81; c++ {
		if n := s[c].Size(); n > 1 && n < bestSize {
			best, bestSize = c, n
		}
	}
	return best, best >= 0
}

// orderValues sorts the candidates of c by how many peer domains still
// allow each value, least constraining first. Equal counts fall back to
// ascending value.
func orderValues(s *domain.State, c domain.Cell) []uint8 {
	vals := s[c].Values()
	impact := lo.SliceToMap(vals, func(v uint8) (uint8, int) {
		n := 0
		for _, p := range domain.Peers(c) {
			if s[p].Has(v) {
				n++
			}
		}
		return v, n
	})
	sort.SliceStable(vals, func(i, j int) bool {
		if impact[vals[i]] != impact[vals[j]] {
			return impact[vals[i]] < impact[vals[j]]
		}
		return vals[i] < vals[j]
	})
	return vals
}

// conflicts reports whether a decided peer of c already holds v.
func conflicts(s *domain.State, c domain.Cell, v uint8) bool {
	for _, p := range domain.Peers(c) {
		if pv, ok := s[p].Value(); ok && pv == v {
			return true
		}
	}
	return false
}

// forwardCheck assigns v to c on a copy and trims v from undecided peer
// domains. It returns nil when some peer would be left with nothing.
func forwardCheck(s *domain.State, c domain.Cell, v uint8) *domain.State {
	next := s.Clone()
	next[c] = domain.Single(v)
	for _, p := range domain.Peers(c) {
		if next[p].Size() > 1 && next[p].Has(v) {
			next[p] = next[p].Remove(v)
			if next[p] == 0 {
				return nil
			}
		}
	}
	return next
}
