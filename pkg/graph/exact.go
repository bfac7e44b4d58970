package graph

import (
	"context"

	"github.com/matzehuels/chromatic/pkg/errors"
)

// checkInterval is the number of backtracking steps between context polls.
const checkInterval = 1024

const unassigned = -1

// ExactStrategy finds a coloring with the minimum number of colors (the
// chromatic number).
//
// It binary searches the color budget k over [1, n]. Each probe is a
// backtracking search that assigns colors 0..k-1 to vertices in insertion
// order and backs up whenever a vertex has no color left that differs from
// its already-assigned neighbors. Feasibility is monotonic in k, so the
// search converges on the minimum. Every probe is a full exponential
// search: bound the input size or pass a context with a deadline.
type ExactStrategy struct {
	// Progress, when set, is called after every probe with the budget tried,
	// whether it was feasible and the steps taken so far.
	Progress func(budget int, feasible bool, steps int)
}

// Name implements Strategy.
func (ExactStrategy) Name() string { return Exact.String() }

// Color implements Strategy. It returns an ErrCodeTimeout error when ctx is
// done before the search completes.
func (s ExactStrategy) Color(ctx context.Context, g *Graph) (map[int]int, error) {
	n := len(g.vertices)
	if n == 0 {
		return map[int]int{}, nil
	}

	search := newExactSearch(g)
	best := make([]int, n)
	bestK := 0

	lo, hi := 1, n
	for lo < hi {
		mid := (lo + hi) / 2
		ok, err := search.probe(ctx, mid)
		if err != nil {
			return nil, err
		}
		s.report(mid, ok, search.steps)
		if ok {
			copy(best, search.colors)
			bestK = mid
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	// The retained assignment is only missing when no probe at lo ran, e.g.
	// a single vertex or lo == n reached through failed probes.
	if bestK != lo {
		ok, err := search.probe(ctx, lo)
		if err != nil {
			return nil, err
		}
		s.report(lo, ok, search.steps)
		if !ok {
			return nil, errors.New(errors.ErrCodeInternal, "exact search: no %d-coloring for %d vertices", lo, n)
		}
		copy(best, search.colors)
	}

	return search.assignment(best), nil
}

func (s ExactStrategy) report(k int, ok bool, steps int) {
	if s.Progress != nil {
		s.Progress(k, ok, steps)
	}
}

// ChromaticNumber returns the minimum number of colors needed for g.
// It runs the exact search without touching g's current coloring.
func ChromaticNumber(ctx context.Context, g *Graph) (int, error) {
	assignment, err := ExactStrategy{}.Color(ctx, g)
	if err != nil {
		return 0, err
	}
	k := 0
	for _, c := range assignment {
		k = max(k, c+1)
	}
	return k, nil
}

// exactSearch holds the buffers shared by every probe of one exact run, so
// probing does not allocate.
type exactSearch struct {
	ids    []int   // position -> vertex ID
	adj    [][]int // position -> neighbor positions
	colors []int   // working assignment by position
	steps  int
}

func newExactSearch(g *Graph) *exactSearch {
	n := len(g.vertices)
	s := &exactSearch{
		ids:    make([]int, n),
		adj:    make([][]int, n),
		colors: make([]int, n),
	}
	for i, v := range g.vertices {
		s.ids[i] = v.ID
	}
	for _, e := range g.edges {
		a, b := g.index[e.Source], g.index[e.Target]
		s.adj[a] = append(s.adj[a], b)
		s.adj[b] = append(s.adj[b], a)
	}
	return s
}

// probe reports whether the graph has a proper coloring with k colors. On
// success s.colors holds the first such coloring in search order.
func (s *exactSearch) probe(ctx context.Context, k int) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, s.cancelled(err, k)
	}

	n := len(s.ids)
	for i := range s.colors {
		s.colors[i] = unassigned
	}

	pos := 0
	for pos >= 0 {
		if pos == n {
			return true, nil
		}

		s.steps++
		if s.steps%checkInterval == 0 {
			if err := ctx.Err(); err != nil {
				return false, s.cancelled(err, k)
			}
		}

		c := s.nextSafe(pos, s.colors[pos]+1, k)
		if c == unassigned {
			s.colors[pos] = unassigned
			pos--
			continue
		}
		s.colors[pos] = c
		pos++
	}
	return false, nil
}

// nextSafe returns the smallest color in [from, k) that no earlier neighbor
// of pos holds, or unassigned.
func (s *exactSearch) nextSafe(pos, from, k int) int {
	for c := from; c < k; c++ {
		if s.safe(pos, c) {
			return c
		}
	}
	return unassigned
}

func (s *exactSearch) safe(pos, c int) bool {
	for _, nb := range s.adj[pos] {
		if nb < pos && s.colors[nb] == c {
			return false
		}
	}
	return true
}

func (s *exactSearch) assignment(colors []int) map[int]int {
	out := make(map[int]int, len(s.ids))
	for i, id := range s.ids {
		out[id] = colors[i]
	}
	return out
}

func (s *exactSearch) cancelled(err error, k int) error {
	return errors.Wrap(errors.ErrCodeTimeout, err, "exact search stopped at budget %d after %d steps", k, s.steps)
}
