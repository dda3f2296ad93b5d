// Package optimize places production numbers and resources on a board by
// multi-start hill climbing. Numbers are placed first; resources are then
// placed against the fixed numbers.
package optimize

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"slices"
	"time"

	"github.com/ChicagoDave/boardgen/pkg/board"
	"github.com/ChicagoDave/boardgen/pkg/scoring"
	"github.com/ChicagoDave/boardgen/pkg/search"
)

// NumberResult is the best number placement found.
type NumberResult struct {
	Numbers board.Numbers `json:"numbers"`
	Score   float64       `json:"score"`
	Restart int           `json:"restart"`
	Swaps   int           `json:"swaps"`
}

// ResourceResult is the best resource placement found.
type ResourceResult struct {
	Resources board.Resources `json:"resources"`
	Score     float64         `json:"score"`
	Restart   int             `json:"restart"`
	Swaps     int             `json:"swaps"`
}

// PlaceNumbers searches for the number placement with the lowest vertex-pip
// variance plus clash penalty. Each restart shuffles the context's number
// multiset onto the tiles in grid order before climbing.
func PlaceNumbers(ctx context.Context, c *board.Context, params search.Params) (*NumberResult, error) {
	scorer := scoring.NewNumberScorer(c.Grid, scoring.Variance, true)
	problem := search.Problem[int]{
		Goal: search.Minimize,
		Initial: func(rng *rand.Rand) []int {
			values := slices.Clone(c.Numbers)
			rng.Shuffle(len(values), func(i, j int) { values[i], values[j] = values[j], values[i] })
			return values
		},
		Score: scorer.Score,
	}

	start := time.Now()
	out, err := search.MultiStart(ctx, problem, params)
	if err != nil {
		return nil, fmt.Errorf("placing numbers: %w", err)
	}
	slog.Info("numbers placed",
		"restarts", params.Iterations,
		"best_restart", out.Restart,
		"score", out.Score,
		"elapsed", time.Since(start))

	return &NumberResult{
		Numbers: c.NumberMap(out.State),
		Score:   out.Score,
		Restart: out.Restart,
		Swaps:   out.Swaps,
	}, nil
}

// ImproveNumbers climbs from the given placement to its local optimum.
func ImproveNumbers(c *board.Context, start board.Numbers) (*NumberResult, error) {
	if _, err := start.Desert(); err != nil {
		return nil, err
	}
	values, err := c.NumberValues(start)
	if err != nil {
		return nil, err
	}
	scorer := scoring.NewNumberScorer(c.Grid, scoring.Variance, true)
	out, err := search.Climb(search.Minimize, values, scorer.Score, 0)
	if err != nil {
		return nil, fmt.Errorf("improving numbers: %w", err)
	}
	slog.Debug("numbers improved", "swaps", out.Swaps, "evaluations", out.Evaluations, "score", out.Score)
	return &NumberResult{
		Numbers: c.NumberMap(out.State),
		Score:   out.Score,
		Swaps:   out.Swaps,
	}, nil
}

// PlaceResources searches for the resource placement most similar to the
// catalog's expected production profile, given fixed numbers. The desert
// tile receives no resource.
func PlaceResources(ctx context.Context, c *board.Context, nums board.Numbers, params search.Params) (*ResourceResult, error) {
	scorer, err := scoring.NewResourceScorer(c, nums)
	if err != nil {
		return nil, fmt.Errorf("placing resources: %w", err)
	}
	pool := c.Catalog.Pool()
	problem := search.Problem[board.Resource]{
		Goal: search.Maximize,
		Initial: func(rng *rand.Rand) []board.Resource {
			values := slices.Clone(pool)
			rng.Shuffle(len(values), func(i, j int) { values[i], values[j] = values[j], values[i] })
			return values
		},
		Score: scorer.Score,
	}

	start := time.Now()
	out, err := search.MultiStart(ctx, problem, params)
	if err != nil {
		return nil, fmt.Errorf("placing resources: %w", err)
	}
	slog.Info("resources placed",
		"restarts", params.Iterations,
		"best_restart", out.Restart,
		"score", out.Score,
		"elapsed", time.Since(start))

	res := make(board.Resources, len(out.State))
	for i, t := range scorer.Tiles() {
		res[t] = out.State[i]
	}
	return &ResourceResult{
		Resources: res,
		Score:     out.Score,
		Restart:   out.Restart,
		Swaps:     out.Swaps,
	}, nil
}
