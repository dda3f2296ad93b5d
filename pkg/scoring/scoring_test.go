package scoring

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/ChicagoDave/boardgen/pkg/board"
	"github.com/ChicagoDave/boardgen/pkg/hexgrid"
)

const eps = 1e-9

// standardNumbers places board.StandardNumbers on the tiles in grid order,
// which puts the desert on the center tile.
func standardNumbers(c *board.Context) board.Numbers {
	return c.NumberMap(c.Numbers)
}

// microContext is a four-tile board: a, b, c and d where a touches all
// others, b-c and c-d are adjacent and b-d are not. Vertices: {a,b,c} and
// {a,c,d}.
func microContext(t *testing.T) *board.Context {
	t.Helper()
	grid := hexgrid.NewFromTiles([]hexgrid.Tile{
		hexgrid.Origin, hexgrid.T(1, -1, 0), hexgrid.T(1, 0, -1), hexgrid.T(0, 1, -1),
	})
	catalog := board.Catalog{
		{Resource: "x", Code: "X", Quota: 2, Expected: 1},
		{Resource: "y", Code: "Y", Quota: 1, Expected: 1},
	}
	c, err := board.NewContext(grid, []int{7, 6, 6, 8}, catalog)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	return c
}

func TestAggregates(t *testing.T) {
	xs := []float64{1, 2, 3, 4}
	if v := Variance(xs); math.Abs(v-1.25) > eps {
		t.Errorf("Variance = %v, want 1.25", v)
	}
	if v := Min(xs); v != 1 {
		t.Errorf("Min = %v, want 1", v)
	}
	if v := Max(xs); v != 4 {
		t.Errorf("Max = %v, want 4", v)
	}
	for name, agg := range map[string]Aggregate{"variance": Variance, "min": Min, "max": Max} {
		if v := agg(nil); v != 0 {
			t.Errorf("%s(empty) = %v, want 0", name, v)
		}
	}
}

func TestVertexTotalsExcludesCenterDesert(t *testing.T) {
	c := board.Standard()
	nums := standardNumbers(c)

	totals, err := VertexTotals(c, nums)
	if err != nil {
		t.Fatalf("VertexTotals: %v", err)
	}
	if len(totals) != 18 {
		t.Errorf("domain has %d vertices, want 18", len(totals))
	}

	o := hexgrid.Origin
	ring := []hexgrid.Tile{
		hexgrid.T(1, -1, 0), hexgrid.T(1, 0, -1), hexgrid.T(0, 1, -1),
		hexgrid.T(-1, 1, 0), hexgrid.T(-1, 0, 1), hexgrid.T(0, -1, 1),
	}
	all := make(map[hexgrid.Vertex]bool)
	for _, v := range c.Grid.Vertices {
		all[v] = true
	}
	for i := range ring {
		v := hexgrid.NewVertex(o, ring[i], ring[(i+1)%len(ring)])
		if !all[v] {
			t.Errorf("expected %s on the full board", v)
		}
		if _, ok := totals[v]; ok {
			t.Errorf("vertex %s touches the desert but is in the domain", v)
		}
	}
	for _, v := range c.Grid.Vertices {
		if _, ok := totals[v]; !ok && !v.Touches(o) {
			t.Errorf("vertex %s wrongly excluded", v)
		}
	}
}

func TestVertexTotalsExcludesCornerDesert(t *testing.T) {
	c := board.Standard()
	nums := standardNumbers(c)
	corner := hexgrid.T(2, -2, 0)
	nums[hexgrid.Origin], nums[corner] = nums[corner], nums[hexgrid.Origin]

	totals, err := VertexTotals(c, nums)
	if err != nil {
		t.Fatalf("VertexTotals: %v", err)
	}
	if len(totals) != 22 {
		t.Errorf("domain has %d vertices, want 22", len(totals))
	}
	excluded := []hexgrid.Vertex{
		hexgrid.NewVertex(corner, hexgrid.T(1, -1, 0), hexgrid.T(2, -1, -1)),
		hexgrid.NewVertex(corner, hexgrid.T(1, -1, 0), hexgrid.T(1, -2, 1)),
	}
	for _, v := range excluded {
		if _, ok := totals[v]; ok {
			t.Errorf("vertex %s should be excluded", v)
		}
	}
	centerVertex := hexgrid.NewVertex(hexgrid.Origin, hexgrid.T(1, -1, 0), hexgrid.T(1, 0, -1))
	if _, ok := totals[centerVertex]; !ok {
		t.Errorf("vertex %s should be in the domain once the desert moves", centerVertex)
	}
}

func TestVertexTotalsValues(t *testing.T) {
	c := board.Standard()
	nums := standardNumbers(c)
	totals, err := VertexTotals(c, nums)
	if err != nil {
		t.Fatalf("VertexTotals: %v", err)
	}

	// 9, 10, 11 -> 4 + 3 + 2
	v := hexgrid.NewVertex(hexgrid.T(1, -1, 0), hexgrid.T(1, 0, -1), hexgrid.T(2, -1, -1))
	if totals[v] != 9 {
		t.Errorf("total at %s = %v, want 9", v, totals[v])
	}

	// 3, 3, 5 -> the repeated 3 counts once: 2 + 4
	v = hexgrid.NewVertex(hexgrid.T(-2, 1, 1), hexgrid.T(-2, 2, 0), hexgrid.T(-1, 1, 0))
	if totals[v] != 6 {
		t.Errorf("total at %s = %v, want 6", v, totals[v])
	}
}

func TestNumberScorePenalty(t *testing.T) {
	c := board.Standard()
	nums := standardNumbers(c)

	withPenalty, err := NumberScore(c, nums)
	if err != nil {
		t.Fatalf("NumberScore: %v", err)
	}
	plain, err := NumberStat(c, nums, Variance, false)
	if err != nil {
		t.Fatalf("NumberStat: %v", err)
	}
	// Grid order pairs equal numbers on eight adjacent tile pairs.
	if got := withPenalty - plain; math.Abs(got-800) > eps {
		t.Errorf("penalty = %v, want 800", got)
	}
}

func TestNumberScoreIdempotent(t *testing.T) {
	c := board.Standard()
	nums := standardNumbers(c)
	before := make(board.Numbers, len(nums))
	for k, v := range nums {
		before[k] = v
	}

	a, err := NumberScore(c, nums)
	if err != nil {
		t.Fatalf("NumberScore: %v", err)
	}
	b, err := NumberScore(c, nums)
	if err != nil {
		t.Fatalf("NumberScore: %v", err)
	}
	if a != b {
		t.Errorf("scores differ: %v vs %v", a, b)
	}
	for k, v := range before {
		if nums[k] != v {
			t.Errorf("assignment mutated at %s", k)
		}
	}
}

func TestNumberScoreNoDesert(t *testing.T) {
	c := board.Standard()
	nums := standardNumbers(c)
	nums[hexgrid.Origin] = 8

	if _, err := NumberScore(c, nums); !errors.Is(err, board.ErrNoDesert) {
		t.Errorf("NumberScore err = %v, want ErrNoDesert", err)
	}
	if _, err := VertexTotals(c, nums); !errors.Is(err, board.ErrNoDesert) {
		t.Errorf("VertexTotals err = %v, want ErrNoDesert", err)
	}

	values := make([]int, c.Grid.Len())
	for i := range values {
		values[i] = 8
	}
	scorer := NewNumberScorer(c.Grid, Variance, true)
	if _, err := scorer.Score(values); !errors.Is(err, board.ErrNoDesert) {
		t.Errorf("scorer err = %v, want ErrNoDesert", err)
	}
}

func TestNumberScoreMalformed(t *testing.T) {
	c := board.Standard()
	nums := standardNumbers(c)
	delete(nums, hexgrid.T(2, -2, 0))
	if _, err := NumberScore(c, nums); !errors.Is(err, board.ErrMalformedNumbers) {
		t.Errorf("err = %v, want ErrMalformedNumbers", err)
	}
}

func TestPipsMatchPoints(t *testing.T) {
	for n := 2; n <= 12; n++ {
		want, _ := board.Points(n)
		got, err := pips(n)
		if err != nil {
			t.Fatalf("pips(%d): %v", n, err)
		}
		if got != want {
			t.Errorf("pips(%d) = %d, want %d", n, got, want)
		}
	}
	for _, n := range []int{-1, 0, 1, 13} {
		if _, err := pips(n); !errors.Is(err, board.ErrMalformedNumbers) {
			t.Errorf("pips(%d): err = %v, want ErrMalformedNumbers", n, err)
		}
	}
}

func TestNumberScorerRejectsOutOfRange(t *testing.T) {
	c := board.Standard()
	values := slices.Clone(c.Numbers)
	// Index 0 is a rim tile; its vertices do not touch the center desert.
	values[0] = 13
	s := NewNumberScorer(c.Grid, Variance, true)
	if _, err := s.Score(values); !errors.Is(err, board.ErrMalformedNumbers) {
		t.Errorf("err = %v, want ErrMalformedNumbers", err)
	}
}

func TestMicroBoardNumberScore(t *testing.T) {
	c := microContext(t)
	nums := c.NumberMap([]int{7, 6, 6, 8})

	// Both vertices touch the desert, so only the 6-6 clash on b-c counts.
	score, err := NumberScore(c, nums)
	if err != nil {
		t.Fatalf("NumberScore: %v", err)
	}
	if score != 100 {
		t.Errorf("score = %v, want 100", score)
	}
	totals, err := VertexTotals(c, nums)
	if err != nil {
		t.Fatalf("VertexTotals: %v", err)
	}
	if len(totals) != 0 {
		t.Errorf("expected empty domain, got %v", totals)
	}
}

func TestResourceScore(t *testing.T) {
	c := microContext(t)
	nums := c.NumberMap([]int{7, 6, 6, 8})
	b, cc, d := hexgrid.T(1, -1, 0), hexgrid.T(1, 0, -1), hexgrid.T(0, 1, -1)

	// x collects 10 pips, y 5; expected weights (1, 1).
	similarity := 15 / math.Sqrt(250)

	clustered := board.Resources{b: "x", cc: "x", d: "y"}
	got, err := ResourceScore(c, clustered, nums)
	if err != nil {
		t.Fatalf("ResourceScore: %v", err)
	}
	want := similarity - AdjacentResourcePenalty - RepeatedNumberPenalty
	if math.Abs(got-want) > eps {
		t.Errorf("clustered score = %v, want %v", got, want)
	}

	spread := board.Resources{b: "x", cc: "y", d: "x"}
	got, err = ResourceScore(c, spread, nums)
	if err != nil {
		t.Fatalf("ResourceScore: %v", err)
	}
	if math.Abs(got-similarity) > eps {
		t.Errorf("spread score = %v, want %v", got, similarity)
	}
}

func similarityOf(t *testing.T, c *board.Context, s *ResourceScorer, values []board.Resource) float64 {
	t.Helper()
	pips, err := s.Pips(values)
	if err != nil {
		t.Fatalf("Pips: %v", err)
	}
	dot, norm := 0.0, 0.0
	for k, def := range c.Catalog {
		dot += pips[k] * def.Expected
		norm += pips[k] * pips[k]
	}
	return dot / math.Sqrt(norm) / c.Catalog.ExpectedNorm()
}

func TestResourceScorePenalties(t *testing.T) {
	c := board.Standard()
	nums := standardNumbers(c)
	scorer, err := NewResourceScorer(c, nums)
	if err != nil {
		t.Fatalf("NewResourceScorer: %v", err)
	}
	if len(scorer.Tiles()) != 18 {
		t.Fatalf("scorer has %d tiles, want 18", len(scorer.Tiles()))
	}

	// Producing tiles in grid order hold 2,3,3,4,4,5,5,6,6,8,8,9,9,10,10,11,11,12.
	wh, wo, sh, or, br := board.Wheat, board.Wood, board.Sheep, board.Ore, board.Brick
	tests := []struct {
		name    string
		values  []board.Resource
		penalty float64
	}{
		{
			// every resource repeats one number; 3+2+2+2+2 adjacent pairs
			name:    "catalog order",
			values:  c.Catalog.Pool(),
			penalty: 5*RepeatedNumberPenalty + 11*AdjacentResourcePenalty,
		},
		{
			// wheat holds 3,3,4,4 but is penalized once; 3+1+2+2+2 adjacent pairs
			name: "double repeat",
			values: []board.Resource{
				wo, wh, wh, wh, wh, wo, wo, wo, sh, sh, sh, sh, or, or, or, br, br, br,
			},
			penalty: 5*RepeatedNumberPenalty + 10*AdjacentResourcePenalty,
		},
	}
	for _, tt := range tests {
		got, err := scorer.Score(tt.values)
		if err != nil {
			t.Fatalf("%s: Score: %v", tt.name, err)
		}
		want := similarityOf(t, c, scorer, tt.values) - tt.penalty
		if math.Abs(got-want) > eps {
			t.Errorf("%s: score = %v, want %v", tt.name, got, want)
		}
	}
}

func TestResourceScoreMalformed(t *testing.T) {
	c := microContext(t)
	nums := c.NumberMap([]int{7, 6, 6, 8})
	b, cc := hexgrid.T(1, -1, 0), hexgrid.T(1, 0, -1)

	missing := board.Resources{b: "x", cc: "x"}
	if _, err := ResourceScore(c, missing, nums); !errors.Is(err, board.ErrMalformedResources) {
		t.Errorf("err = %v, want ErrMalformedResources", err)
	}

	noDesert := c.NumberMap([]int{8, 6, 6, 8})
	if _, err := NewResourceScorer(c, noDesert); !errors.Is(err, board.ErrNoDesert) {
		t.Errorf("err = %v, want ErrNoDesert", err)
	}
}

func TestResourcePips(t *testing.T) {
	c := microContext(t)
	nums := c.NumberMap([]int{7, 6, 6, 8})
	res := board.Resources{
		hexgrid.T(1, -1, 0): "x", hexgrid.T(1, 0, -1): "y", hexgrid.T(0, 1, -1): "x",
	}
	pips, err := ResourcePips(c, res, nums)
	if err != nil {
		t.Fatalf("ResourcePips: %v", err)
	}
	if pips["x"] != 10 || pips["y"] != 5 {
		t.Errorf("pips = %v, want x:10 y:5", pips)
	}
}
