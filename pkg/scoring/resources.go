package scoring

import (
	"fmt"
	"math"

	"github.com/ChicagoDave/boardgen/pkg/board"
	"github.com/ChicagoDave/boardgen/pkg/hexgrid"
)

const (
	// AdjacentResourcePenalty is subtracted per adjacent same-resource pair.
	AdjacentResourcePenalty = 0.0001
	// RepeatedNumberPenalty is subtracted once per resource type holding the
	// same number on two or more tiles, however many repeats that type has.
	RepeatedNumberPenalty = 0.01
)

// ResourceScorer scores resource placements over the producing tiles of a
// fixed number assignment. Values are given in Tiles() order.
type ResourceScorer struct {
	catalog      board.Catalog
	slot         map[board.Resource]int
	tiles        []hexgrid.Tile
	numbers      []int
	points       []float64
	pairs        [][2]int
	expectedNorm float64
}

// NewResourceScorer prepares a scorer for the given number assignment.
func NewResourceScorer(c *board.Context, nums board.Numbers) (*ResourceScorer, error) {
	if _, err := numberValues(c, nums); err != nil {
		return nil, err
	}
	tiles, err := c.ProducingTiles(nums)
	if err != nil {
		return nil, err
	}

	s := &ResourceScorer{
		catalog:      c.Catalog,
		slot:         make(map[board.Resource]int, len(c.Catalog)),
		tiles:        tiles,
		numbers:      make([]int, len(tiles)),
		points:       make([]float64, len(tiles)),
		expectedNorm: c.Catalog.ExpectedNorm(),
	}
	for k, d := range c.Catalog {
		s.slot[d.Resource] = k
	}
	for i, t := range tiles {
		s.numbers[i] = nums[t]
		p, _ := board.Points(nums[t])
		s.points[i] = float64(p)
		for j := i + 1; j < len(tiles); j++ {
			if t.IsAdjacent(tiles[j]) {
				s.pairs = append(s.pairs, [2]int{i, j})
			}
		}
	}
	return s, nil
}

// Tiles returns the producing tiles in value order. The slice must not be
// modified.
func (s *ResourceScorer) Tiles() []hexgrid.Tile { return s.tiles }

// Pips returns the pip total collected by each catalog resource.
func (s *ResourceScorer) Pips(values []board.Resource) ([]float64, error) {
	if len(values) != len(s.tiles) {
		return nil, fmt.Errorf("%w: %d values for %d producing tiles", board.ErrMalformedResources, len(values), len(s.tiles))
	}
	totals := make([]float64, len(s.catalog))
	for i, r := range values {
		k, ok := s.slot[r]
		if !ok {
			return nil, fmt.Errorf("%w: unknown resource %q", board.ErrMalformedResources, r)
		}
		totals[k] += s.points[i]
	}
	return totals, nil
}

// Score returns the cosine similarity between the achieved per-resource pip
// totals and the expected weights, minus clustering penalties. Higher is
// better.
func (s *ResourceScorer) Score(values []board.Resource) (float64, error) {
	totals, err := s.Pips(values)
	if err != nil {
		return 0, err
	}

	dot, norm := 0.0, 0.0
	for k, d := range s.catalog {
		dot += totals[k] * d.Expected
		norm += totals[k] * totals[k]
	}
	similarity := 0.0
	if norm > 0 {
		similarity = dot / math.Sqrt(norm) / s.expectedNorm
	}

	adjacent := 0
	for _, p := range s.pairs {
		if values[p[0]] == values[p[1]] {
			adjacent++
		}
	}

	// Production numbers fit in 13 bits.
	seen := make([]uint16, len(s.catalog))
	repeated := make([]bool, len(s.catalog))
	for i, r := range values {
		k := s.slot[r]
		bit := uint16(1) << s.numbers[i]
		if seen[k]&bit != 0 {
			repeated[k] = true
		}
		seen[k] |= bit
	}
	repeats := 0
	for _, r := range repeated {
		if r {
			repeats++
		}
	}

	return similarity - AdjacentResourcePenalty*float64(adjacent) - RepeatedNumberPenalty*float64(repeats), nil
}

// ResourceScore scores a complete resource assignment against its numbers.
func ResourceScore(c *board.Context, res board.Resources, nums board.Numbers) (float64, error) {
	s, values, err := resourceValues(c, res, nums)
	if err != nil {
		return 0, err
	}
	return s.Score(values)
}

// ResourcePips returns the pip total each resource collects.
func ResourcePips(c *board.Context, res board.Resources, nums board.Numbers) (map[board.Resource]int, error) {
	s, values, err := resourceValues(c, res, nums)
	if err != nil {
		return nil, err
	}
	totals, err := s.Pips(values)
	if err != nil {
		return nil, err
	}
	out := make(map[board.Resource]int, len(totals))
	for k, d := range c.Catalog {
		out[d.Resource] = int(totals[k])
	}
	return out, nil
}

func resourceValues(c *board.Context, res board.Resources, nums board.Numbers) (*ResourceScorer, []board.Resource, error) {
	s, err := NewResourceScorer(c, nums)
	if err != nil {
		return nil, nil, err
	}
	if err := c.CheckResources(res, nums); err != nil {
		return nil, nil, err
	}
	values := make([]board.Resource, len(s.tiles))
	for i, t := range s.tiles {
		values[i] = res[t]
	}
	return s, values, nil
}
