package scene2d

import "github.com/ChicagoDave/boardgen/pkg/hexgrid"

// Scene2D is a board laid out on a character grid for text rendering.
type Scene2D struct {
	Metadata Metadata `json:"metadata"`
	Cells    []Cell2D `json:"cells"`
}

// Metadata holds the grid dimensions.
type Metadata struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// Cell2D places one tile on the character grid. Row and Col address the
// number line; the resource code sits on the row below.
type Cell2D struct {
	Tile   hexgrid.Tile `json:"tile"`
	Row    int          `json:"row"`
	Col    int          `json:"col"`
	Number int          `json:"number"`
	Code   string       `json:"code"`
	Desert bool         `json:"desert,omitempty"`
}
