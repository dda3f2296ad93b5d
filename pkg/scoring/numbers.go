// Package scoring computes the fitness of number and resource placements.
package scoring

import (
	"fmt"

	"github.com/ChicagoDave/boardgen/pkg/board"
	"github.com/ChicagoDave/boardgen/pkg/hexgrid"
)

// ClashPenalty is added for every pair of adjacent tiles sharing a number.
const ClashPenalty = 100.0

// NumberScorer scores number placements given in tile-index order.
// It holds no mutable state and may be shared across goroutines.
type NumberScorer struct {
	grid     *hexgrid.Grid
	agg      Aggregate
	penalize bool
}

// NewNumberScorer returns a scorer that aggregates per-vertex pip totals
// with agg and, if penalize is set, adds ClashPenalty per adjacent clash.
func NewNumberScorer(g *hexgrid.Grid, agg Aggregate, penalize bool) *NumberScorer {
	return &NumberScorer{grid: g, agg: agg, penalize: penalize}
}

// Totals returns the pip total of every vertex that does not touch the
// desert, in grid vertex order. A number shared by two tiles of the same
// vertex counts once there.
func (s *NumberScorer) Totals(values []int) ([]float64, error) {
	desert := -1
	for i, v := range values {
		if v == board.Desert {
			desert = i
			break
		}
	}
	if desert < 0 {
		return nil, board.ErrNoDesert
	}

	triples := s.grid.VertexIndices()
	totals := make([]float64, 0, len(triples))
	for _, tri := range triples {
		if tri[0] == desert || tri[1] == desert || tri[2] == desert {
			continue
		}
		a, b, c := values[tri[0]], values[tri[1]], values[tri[2]]
		sum, err := pips(a)
		if err != nil {
			return nil, err
		}
		if b != a {
			p, err := pips(b)
			if err != nil {
				return nil, err
			}
			sum += p
		}
		if c != a && c != b {
			p, err := pips(c)
			if err != nil {
				return nil, err
			}
			sum += p
		}
		totals = append(totals, float64(sum))
	}
	return totals, nil
}

// Clashes counts adjacent tile pairs holding the same number.
func (s *NumberScorer) Clashes(values []int) int {
	n := 0
	for _, p := range s.grid.AdjacentPairs() {
		if values[p[0]] == values[p[1]] {
			n++
		}
	}
	return n
}

// Score returns the aggregate of Totals plus the clash penalty.
func (s *NumberScorer) Score(values []int) (float64, error) {
	if len(values) != s.grid.Len() {
		return 0, fmt.Errorf("%w: %d values for %d tiles", board.ErrMalformedNumbers, len(values), s.grid.Len())
	}
	totals, err := s.Totals(values)
	if err != nil {
		return 0, err
	}
	score := s.agg(totals)
	if s.penalize {
		score += ClashPenalty * float64(s.Clashes(values))
	}
	return score, nil
}

// NumberScore returns the variance of non-desert vertex pip totals plus the
// adjacency clash penalty. Lower is better.
func NumberScore(c *board.Context, nums board.Numbers) (float64, error) {
	return NumberStat(c, nums, Variance, true)
}

// NumberStat is NumberScore with a caller-chosen aggregate and optional
// penalty, e.g. Min or Max for the vertex pip range.
func NumberStat(c *board.Context, nums board.Numbers, agg Aggregate, penalize bool) (float64, error) {
	values, err := numberValues(c, nums)
	if err != nil {
		return 0, err
	}
	return NewNumberScorer(c.Grid, agg, penalize).Score(values)
}

// VertexTotals returns the pip total of every vertex in the score domain.
// Vertices touching the desert are absent.
func VertexTotals(c *board.Context, nums board.Numbers) (map[hexgrid.Vertex]float64, error) {
	values, err := numberValues(c, nums)
	if err != nil {
		return nil, err
	}
	desert, _ := nums.Desert()

	totals, err := NewNumberScorer(c.Grid, Variance, false).Totals(values)
	if err != nil {
		return nil, err
	}
	out := make(map[hexgrid.Vertex]float64, len(totals))
	k := 0
	for _, v := range c.Grid.Vertices {
		if v.Touches(desert) {
			continue
		}
		out[v] = totals[k]
		k++
	}
	return out, nil
}

func numberValues(c *board.Context, nums board.Numbers) ([]int, error) {
	if _, err := nums.Desert(); err != nil {
		return nil, err
	}
	return c.NumberValues(nums)
}

func pips(n int) (int, error) {
	p, ok := board.Points(n)
	if !ok {
		return 0, fmt.Errorf("%w: %d is not a production number", board.ErrMalformedNumbers, n)
	}
	return p, nil
}
