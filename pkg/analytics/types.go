package analytics

import (
	"github.com/ChicagoDave/boardgen/pkg/board"
	"github.com/ChicagoDave/boardgen/pkg/hexgrid"
)

// ResourceShare holds the production one resource collects on a board.
type ResourceShare struct {
	Resource board.Resource `json:"resource"`
	Code     string         `json:"code"`
	Tiles    int            `json:"tiles"`
	Pips     int            `json:"pips"`
	Expected float64        `json:"expected"`
	// Share is Pips over the board's total pips.
	Share float64 `json:"share"`
}

// TilePair is two adjacent tiles that hold the same value.
type TilePair struct {
	A hexgrid.Tile `json:"a"`
	B hexgrid.Tile `json:"b"`
}

// VertexRange is the spread of vertex pip totals over non-desert vertices.
type VertexRange struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Variance float64 `json:"variance"`
	Vertices int     `json:"vertices"`
}
