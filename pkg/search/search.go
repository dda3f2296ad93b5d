// Package search implements randomized multi-start hill climbing over
// fixed-length assignments, where the only move is swapping two positions.
package search

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Errors
var (
	ErrNoIterations = errors.New("iteration count must be positive")
	ErrSwapLimit    = errors.New("swap limit exceeded")
)

// Goal says which direction of score is better.
type Goal int

const (
	Minimize Goal = iota
	Maximize
)

// Better reports whether candidate strictly improves on incumbent.
func (g Goal) Better(candidate, incumbent float64) bool {
	if g == Maximize {
		return candidate > incumbent
	}
	return candidate < incumbent
}

func (g Goal) String() string {
	if g == Maximize {
		return "maximize"
	}
	return "minimize"
}

// ScoreFunc evaluates a state. It must not modify or retain the slice.
type ScoreFunc[V any] func(state []V) (float64, error)

// Problem describes one search: how to build a random starting state, how
// to score a state, and which direction is better.
type Problem[V any] struct {
	Goal    Goal
	Initial func(rng *rand.Rand) []V
	Score   ScoreFunc[V]
}

// Params controls a multi-start run.
type Params struct {
	Iterations int   // number of restarts
	Workers    int   // concurrent restarts; <= 0 uses GOMAXPROCS
	Seed       int64 // restart i is seeded with Seed+i
	MaxSwaps   int   // per-restart accepted swap limit; 0 means unbounded
}

// Outcome is the locally optimal state reached by one climb.
type Outcome[V any] struct {
	State       []V
	Score       float64
	Restart     int
	Swaps       int
	Evaluations int
}

// Climb runs first-improvement pairwise-swap hill climbing on state in
// place. Pairs are scanned i<j in index order; the first strictly improving
// swap is kept and the scan restarts from the top. It stops when a full
// scan finds no improvement.
func Climb[V any](goal Goal, state []V, score ScoreFunc[V], maxSwaps int) (Outcome[V], error) {
	out := Outcome[V]{State: state}
	current, err := score(state)
	if err != nil {
		return out, err
	}
	out.Evaluations++

	n := len(state)
	for {
		improved := false
	scan:
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				state[i], state[j] = state[j], state[i]
				s, err := score(state)
				out.Evaluations++
				if err != nil {
					state[i], state[j] = state[j], state[i]
					return out, err
				}
				if goal.Better(s, current) {
					current = s
					improved = true
					break scan
				}
				state[i], state[j] = state[j], state[i]
			}
		}
		if !improved {
			break
		}
		out.Swaps++
		if maxSwaps > 0 && out.Swaps > maxSwaps {
			out.Score = current
			return out, fmt.Errorf("%w: %d", ErrSwapLimit, maxSwaps)
		}
	}

	out.Score = current
	return out, nil
}

// MultiStart climbs from Params.Iterations random starting states and
// returns the best outcome. Restarts run concurrently but each owns its
// state and rng, and the winner is chosen in restart order, so a fixed Seed
// gives the same result for any worker count. Ties go to the earliest
// restart.
func MultiStart[V any](ctx context.Context, p Problem[V], params Params) (*Outcome[V], error) {
	if params.Iterations <= 0 {
		return nil, ErrNoIterations
	}
	workers := params.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, params.Iterations)

	results := make([]Outcome[V], params.Iterations)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < params.Iterations; i++ {
		i := i
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rng := rand.New(rand.NewSource(params.Seed + int64(i)))
			out, err := Climb(p.Goal, p.Initial(rng), p.Score, params.MaxSwaps)
			if err != nil {
				return fmt.Errorf("restart %d: %w", i, err)
			}
			out.Restart = i
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	best := &results[0]
	for i := 1; i < len(results); i++ {
		if p.Goal.Better(results[i].Score, best.Score) {
			best = &results[i]
		}
	}
	return best, nil
}
