package solver

import "svw.info/sudoku-csp/internal/domain"

// arc is a directed constraint edge between two peer cells.
type arc struct {
	xi, xj domain.Cell
}

// propagate establishes arc consistency over the peer graph with AC-3.
// It returns false when some cell loses its last candidate.
func propagate(s *domain.State) bool {
	queue := make([]arc, 0, 81*20)
	for c := domain.Cell(0); c < 81; c++ {
		for _, p := range domain.Peers(c) {
			queue = append(queue, arc{c, p})
		}
	}
	for len(queue) > 0 {
		a := queue[0]
		queue = queue[1:]
		if !revise(s, a.xi, a.xj) {
			continue
		}
		if s[a.xi] == 0 {
			return false
		}
		for _, p := range domain.Peers(a.xi) {
			if p != a.xj {
				queue = append(queue, arc{p, a.xi})
			}
		}
	}
	return true
}

// revise removes xj's sole candidate from xi. A cell already down to one
// candidate is left untouched even when it clashes with xj; the final
// consistency check owns that case.
func revise(s *domain.State, xi, xj domain.Cell) bool {
	v, ok := s[xj].Value()
	if !ok || !s[xi].Has(v) {
		return false
	}
	if s[xi].Size() == 1 {
		return false
	}
	s[xi] = s[xi].Remove(v)
	return true
}
