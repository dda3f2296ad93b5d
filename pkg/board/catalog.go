package board

import (
	"fmt"
	"math"
)

// Resource names one kind of production output.
type Resource string

const (
	Wheat Resource = "wheat"
	Wood  Resource = "wood"
	Sheep Resource = "sheep"
	Ore   Resource = "ore"
	Brick Resource = "brick"
)

// ResourceDef describes one resource: its display code, how many tiles
// carry it, and its target weight in the expected production profile.
type ResourceDef struct {
	Resource Resource `yaml:"name" json:"name"`
	Code     string   `yaml:"code" json:"code"`
	Quota    int      `yaml:"quota" json:"quota"`
	Expected float64  `yaml:"expected" json:"expected"`
}

// Catalog is the ordered resource set of a board.
type Catalog []ResourceDef

// DefaultCatalog returns the standard five resources.
func DefaultCatalog() Catalog {
	return Catalog{
		{Resource: Wheat, Code: "WH", Quota: 4, Expected: 16},
		{Resource: Wood, Code: "WO", Quota: 4, Expected: 12},
		{Resource: Sheep, Code: "SH", Quota: 4, Expected: 9},
		{Resource: Ore, Code: "OR", Quota: 3, Expected: 10},
		{Resource: Brick, Code: "BR", Quota: 3, Expected: 11},
	}
}

// Total returns the sum of all quotas.
func (c Catalog) Total() int {
	total := 0
	for _, d := range c {
		total += d.Quota
	}
	return total
}

// Pool expands the catalog into one entry per tile, in catalog order.
func (c Catalog) Pool() []Resource {
	pool := make([]Resource, 0, c.Total())
	for _, d := range c {
		for i := 0; i < d.Quota; i++ {
			pool = append(pool, d.Resource)
		}
	}
	return pool
}

// Lookup returns the definition of r.
func (c Catalog) Lookup(r Resource) (ResourceDef, bool) {
	for _, d := range c {
		if d.Resource == r {
			return d, true
		}
	}
	return ResourceDef{}, false
}

// ExpectedNorm returns the Euclidean norm of the expected weights.
func (c Catalog) ExpectedNorm() float64 {
	sum := 0.0
	for _, d := range c {
		sum += d.Expected * d.Expected
	}
	return math.Sqrt(sum)
}

// Check reports the first structural problem with the catalog.
func (c Catalog) Check() error {
	if len(c) == 0 {
		return fmt.Errorf("catalog is empty")
	}
	names := make(map[Resource]bool)
	for _, d := range c {
		if d.Resource == "" {
			return fmt.Errorf("resource with empty name")
		}
		if names[d.Resource] {
			return fmt.Errorf("duplicate resource %q", d.Resource)
		}
		names[d.Resource] = true
		if d.Quota < 0 {
			return fmt.Errorf("resource %q has negative quota %d", d.Resource, d.Quota)
		}
		if d.Expected < 0 {
			return fmt.Errorf("resource %q has negative expected weight %g", d.Resource, d.Expected)
		}
	}
	if c.ExpectedNorm() == 0 {
		return fmt.Errorf("expected weights are all zero")
	}
	return nil
}
