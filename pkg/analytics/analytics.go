// Package analytics summarizes a generated board: how evenly settlement
// spots produce, how production splits across resources, and which
// placements the scorers penalize.
package analytics

import (
	"fmt"

	"github.com/ChicagoDave/boardgen/pkg/board"
	"github.com/ChicagoDave/boardgen/pkg/hexgrid"
	"github.com/ChicagoDave/boardgen/pkg/scoring"
	"github.com/ChicagoDave/boardgen/pkg/validation"
)

// Summary holds the computed statistics of one board.
type Summary struct {
	Desert        hexgrid.Tile `json:"desert"`
	NumberScore   float64      `json:"number_score"`
	ResourceScore float64      `json:"resource_score"`
	Vertices      VertexRange  `json:"vertex_pips"`
	TotalPips     int          `json:"total_pips"`
	// RingPips[r] is the pip total of tiles at distance r from the center.
	RingPips []int `json:"ring_pips"`

	Resources []ResourceShare `json:"resources"`

	NumberClashes   []TilePair       `json:"number_clashes"`
	ResourceClashes []TilePair       `json:"resource_clashes"`
	RepeatedNumbers []board.Resource `json:"repeated_numbers"`
}

// Summarize scores a complete board and collects its statistics.
// Malformed assignments return an error; a well-formed board always yields
// a summary, with penalized placements reported as warnings or info.
func Summarize(c *board.Context, nums board.Numbers, res board.Resources) (*Summary, *validation.Report, error) {
	if err := c.CheckResources(res, nums); err != nil {
		return nil, nil, err
	}
	desert, err := nums.Desert()
	if err != nil {
		return nil, nil, err
	}

	numberScore, err := scoring.NumberScore(c, nums)
	if err != nil {
		return nil, nil, err
	}
	resourceScore, err := scoring.ResourceScore(c, res, nums)
	if err != nil {
		return nil, nil, err
	}
	vertices, err := vertexRange(c, nums)
	if err != nil {
		return nil, nil, err
	}
	shares, totalPips, err := resourceShares(c, res, nums)
	if err != nil {
		return nil, nil, err
	}

	s := &Summary{
		Desert:          desert,
		NumberScore:     numberScore,
		ResourceScore:   resourceScore,
		Vertices:        vertices,
		TotalPips:       totalPips,
		RingPips:        ringPips(c, nums),
		Resources:       shares,
		NumberClashes:   clashes(c.Grid, nums),
		ResourceClashes: clashes(c.Grid, res),
		RepeatedNumbers: repeatedNumbers(c, res, nums),
	}

	report := validation.NewReport()
	validateBoard(s, report)
	return s, report, nil
}

func vertexRange(c *board.Context, nums board.Numbers) (VertexRange, error) {
	totals, err := scoring.VertexTotals(c, nums)
	if err != nil {
		return VertexRange{}, err
	}
	xs := make([]float64, 0, len(totals))
	for _, v := range totals {
		xs = append(xs, v)
	}
	return VertexRange{
		Min:      scoring.Min(xs),
		Max:      scoring.Max(xs),
		Variance: scoring.Variance(xs),
		Vertices: len(xs),
	}, nil
}

func resourceShares(c *board.Context, res board.Resources, nums board.Numbers) ([]ResourceShare, int, error) {
	pips, err := scoring.ResourcePips(c, res, nums)
	if err != nil {
		return nil, 0, err
	}
	tiles := make(map[board.Resource]int)
	for _, r := range res {
		tiles[r]++
	}

	total := 0
	for _, p := range pips {
		total += p
	}
	shares := make([]ResourceShare, 0, len(c.Catalog))
	for _, def := range c.Catalog {
		share := 0.0
		if total > 0 {
			share = float64(pips[def.Resource]) / float64(total)
		}
		shares = append(shares, ResourceShare{
			Resource: def.Resource,
			Code:     def.Code,
			Tiles:    tiles[def.Resource],
			Pips:     pips[def.Resource],
			Expected: def.Expected,
			Share:    share,
		})
	}
	return shares, total, nil
}

func ringPips(c *board.Context, nums board.Numbers) []int {
	var out []int
	for _, t := range c.Grid.Tiles {
		r := t.Ring()
		for len(out) <= r {
			out = append(out, 0)
		}
		p, _ := board.Points(nums[t])
		out[r] += p
	}
	return out
}

// clashes lists adjacent tile pairs holding equal values, in grid order.
func clashes[M ~map[hexgrid.Tile]V, V comparable](g *hexgrid.Grid, m M) []TilePair {
	var out []TilePair
	for _, p := range g.AdjacentPairs() {
		a, b := g.Tiles[p[0]], g.Tiles[p[1]]
		va, okA := m[a]
		vb, okB := m[b]
		if okA && okB && va == vb {
			out = append(out, TilePair{A: a, B: b})
		}
	}
	return out
}

// repeatedNumbers lists, in catalog order, resources holding some
// production number on more than one tile.
func repeatedNumbers(c *board.Context, res board.Resources, nums board.Numbers) []board.Resource {
	seen := make(map[board.Resource]map[int]bool)
	repeated := make(map[board.Resource]bool)
	for _, t := range c.Grid.Tiles {
		r, ok := res[t]
		if !ok {
			continue
		}
		if seen[r] == nil {
			seen[r] = make(map[int]bool)
		}
		n := nums[t]
		if seen[r][n] {
			repeated[r] = true
		}
		seen[r][n] = true
	}

	var out []board.Resource
	for _, def := range c.Catalog {
		if repeated[def.Resource] {
			out = append(out, def.Resource)
		}
	}
	return out
}

func validateBoard(s *Summary, report *validation.Report) {
	for _, p := range s.NumberClashes {
		report.AddWarning(validation.Result{
			Level:        validation.LevelBoard,
			Message:      fmt.Sprintf("adjacent tiles %s and %s share a number", p.A, p.B),
			Path:         "numbers." + p.A.String(),
			ConflictWith: p.B.String(),
			Suggestions:  []string{"Raise the number iteration budget"},
		})
	}
	for _, p := range s.ResourceClashes {
		report.AddInfo(validation.Result{
			Level:        validation.LevelBoard,
			Message:      fmt.Sprintf("adjacent tiles %s and %s share a resource", p.A, p.B),
			Path:         "resources." + p.A.String(),
			ConflictWith: p.B.String(),
		})
	}
	for _, r := range s.RepeatedNumbers {
		report.AddInfo(validation.Result{
			Level:   validation.LevelBoard,
			Message: fmt.Sprintf("%s holds a repeated number", r),
			Path:    "resources",
		})
	}

	for _, sh := range s.Resources {
		if sh.Tiles > 0 && sh.Pips == 0 {
			report.AddWarning(validation.Result{
				Level:       validation.LevelBoard,
				Message:     fmt.Sprintf("%s has %d tiles but no production", sh.Resource, sh.Tiles),
				Path:        "resources",
				ActualValue: sh.Pips,
				Expected:    "> 0",
			})
		}
	}
}
