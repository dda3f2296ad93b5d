// Package board holds the immutable generation context shared by scoring and
// the optimizers: the grid, the production-number multiset and the resource
// catalog, plus the assignment types they operate on.
package board

import (
	"errors"
	"fmt"
	"slices"

	"github.com/ChicagoDave/boardgen/pkg/hexgrid"
)

// Desert is the number that marks the non-producing tile.
const Desert = 7

// Errors
var (
	ErrNoDesert           = errors.New("no desert tile found")
	ErrInvalidContext     = errors.New("invalid board context")
	ErrMalformedNumbers   = errors.New("malformed number assignment")
	ErrMalformedResources = errors.New("malformed resource assignment")
)

// StandardNumbers is the production-number multiset of the standard board,
// including the single desert.
var StandardNumbers = []int{2, 3, 3, 4, 4, 5, 5, 6, 6, 7, 8, 8, 9, 9, 10, 10, 11, 11, 12}

// Points returns the pip count of a production number: the number of
// two-dice combinations that roll it. The desert scores 0.
func Points(n int) (int, bool) {
	switch {
	case n >= 2 && n <= 6:
		return n - 1, true
	case n >= 8 && n <= 12:
		return 13 - n, true
	case n == Desert:
		return 0, true
	}
	return 0, false
}

// Numbers maps every tile to its production number.
type Numbers map[hexgrid.Tile]int

// Desert returns the tile holding the desert number.
func (n Numbers) Desert() (hexgrid.Tile, error) {
	for t, v := range n {
		if v == Desert {
			return t, nil
		}
	}
	return hexgrid.Tile{}, ErrNoDesert
}

// Resources maps every non-desert tile to its resource.
type Resources map[hexgrid.Tile]Resource

// Context is the fixed geometry and tables for one kind of board. It is
// never mutated after construction.
type Context struct {
	Grid    *hexgrid.Grid
	Numbers []int
	Catalog Catalog
}

// Standard returns the context for the standard 19-tile board.
func Standard() *Context {
	return &Context{
		Grid:    hexgrid.New(),
		Numbers: slices.Clone(StandardNumbers),
		Catalog: DefaultCatalog(),
	}
}

// NewContext validates and assembles a context. The number multiset must
// cover every tile, contain exactly one desert, and the catalog quotas must
// cover every non-desert tile.
func NewContext(grid *hexgrid.Grid, numbers []int, catalog Catalog) (*Context, error) {
	if grid == nil || grid.Len() == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrInvalidContext)
	}
	if len(numbers) != grid.Len() {
		return nil, fmt.Errorf("%w: %d numbers for %d tiles", ErrInvalidContext, len(numbers), grid.Len())
	}
	deserts := 0
	for _, n := range numbers {
		if _, ok := Points(n); !ok {
			return nil, fmt.Errorf("%w: %d is not a production number", ErrInvalidContext, n)
		}
		if n == Desert {
			deserts++
		}
	}
	if deserts != 1 {
		return nil, fmt.Errorf("%w: need exactly one desert, got %d", ErrInvalidContext, deserts)
	}
	if err := catalog.Check(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidContext, err)
	}
	if total := catalog.Total(); total != grid.Len()-1 {
		return nil, fmt.Errorf("%w: resource quotas sum to %d, need %d", ErrInvalidContext, total, grid.Len()-1)
	}

	return &Context{
		Grid:    grid,
		Numbers: slices.Clone(numbers),
		Catalog: slices.Clone(catalog),
	}, nil
}

// NumberValues converts an assignment to tile-index order, failing if any
// tile is missing, any key is off the board, or the values do not match the
// context's number multiset.
func (c *Context) NumberValues(nums Numbers) ([]int, error) {
	if len(nums) != c.Grid.Len() {
		return nil, fmt.Errorf("%w: %d entries for %d tiles", ErrMalformedNumbers, len(nums), c.Grid.Len())
	}
	values := make([]int, c.Grid.Len())
	for i, t := range c.Grid.Tiles {
		v, ok := nums[t]
		if !ok {
			return nil, fmt.Errorf("%w: tile %s has no number", ErrMalformedNumbers, t)
		}
		values[i] = v
	}
	if !sameMultiset(values, c.Numbers) {
		return nil, fmt.Errorf("%w: numbers %v do not match %v", ErrMalformedNumbers, sorted(values), sorted(c.Numbers))
	}
	return values, nil
}

// NumberMap converts tile-index values back to an assignment.
func (c *Context) NumberMap(values []int) Numbers {
	nums := make(Numbers, len(values))
	for i, v := range values {
		nums[c.Grid.Tiles[i]] = v
	}
	return nums
}

// ProducingTiles returns the tiles that receive a resource: every tile
// except the desert, in grid order.
func (c *Context) ProducingTiles(nums Numbers) ([]hexgrid.Tile, error) {
	desert, err := nums.Desert()
	if err != nil {
		return nil, err
	}
	tiles := make([]hexgrid.Tile, 0, c.Grid.Len()-1)
	for _, t := range c.Grid.Tiles {
		if t != desert {
			tiles = append(tiles, t)
		}
	}
	return tiles, nil
}

// CheckResources verifies that res covers exactly the producing tiles and
// uses each resource exactly its catalog quota.
func (c *Context) CheckResources(res Resources, nums Numbers) error {
	tiles, err := c.ProducingTiles(nums)
	if err != nil {
		return err
	}
	if len(res) != len(tiles) {
		return fmt.Errorf("%w: %d entries for %d producing tiles", ErrMalformedResources, len(res), len(tiles))
	}
	counts := make(map[Resource]int)
	for _, t := range tiles {
		r, ok := res[t]
		if !ok {
			return fmt.Errorf("%w: tile %s has no resource", ErrMalformedResources, t)
		}
		counts[r]++
	}
	for _, def := range c.Catalog {
		if counts[def.Resource] != def.Quota {
			return fmt.Errorf("%w: %s used %d times, quota %d", ErrMalformedResources, def.Resource, counts[def.Resource], def.Quota)
		}
		delete(counts, def.Resource)
	}
	for r := range counts {
		return fmt.Errorf("%w: unknown resource %q", ErrMalformedResources, r)
	}
	return nil
}

func sameMultiset(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	return slices.Equal(sorted(a), sorted(b))
}

func sorted(v []int) []int {
	s := slices.Clone(v)
	slices.Sort(s)
	return s
}
