// Package scene2d lays a generated board out on a character grid, with each
// tile drawn as its number above its resource code.
package scene2d

import (
	"strconv"
	"strings"

	"github.com/ChicagoDave/boardgen/pkg/board"
	"github.com/ChicagoDave/boardgen/pkg/hexgrid"
)

// Grid dimensions for a radius-2 board. Each cell is CellWidth characters
// wide and two rows tall.
const (
	Rows      = 14
	Cols      = 18
	CellWidth = 2
)

// DesertCode marks the desert tile in place of a resource code.
const DesertCode = "--"

// Assemble2D converts a finished board into a 2D scene. Tiles appear in grid
// order; tiles with no number are skipped.
func Assemble2D(c *board.Context, nums board.Numbers, res board.Resources) *Scene2D {
	cells := make([]Cell2D, 0, c.Grid.Len())
	for _, t := range c.Grid.Tiles {
		n, ok := nums[t]
		if !ok {
			continue
		}
		row, col := Position(t)
		cell := Cell2D{Tile: t, Row: row, Col: col, Number: n}
		if n == board.Desert {
			cell.Desert = true
			cell.Code = DesertCode
		} else if def, ok := c.Catalog.Lookup(res[t]); ok {
			cell.Code = def.Code
		}
		cells = append(cells, cell)
	}

	return &Scene2D{
		Metadata: Metadata{Rows: Rows, Cols: Cols},
		Cells: cells,
	}
}

// Position returns the grid row and column of a tile's number line.
// Moving along +z shifts down three rows; x and y shift columns.
func Position(t hexgrid.Tile) (row, col int) {
	return 6 - t.X - t.Y + 2*t.Z, 8 + 2*t.X - 2*t.Y
}

// Text renders the scene as Rows lines of Cols characters each, trailing
// spaces trimmed. The desert's number is left blank.
func (s *Scene2D) Text() string {
	grid := make([][]byte, s.Metadata.Rows)
	for i := range grid {
		grid[i] = []byte(strings.Repeat(" ", s.Metadata.Cols))
	}

	put := func(row, col int, text string) {
		if row < 0 || row >= len(grid) {
			return
		}
		for i := 0; i < len(text) && col+i < len(grid[row]); i++ {
			if col+i >= 0 {
				grid[row][col+i] = text[i]
			}
		}
	}
	for _, c := range s.Cells {
		if !c.Desert {
			put(c.Row, c.Col, pad(strconv.Itoa(c.Number)))
		}
		put(c.Row+1, c.Col, pad(c.Code))
	}

	var b strings.Builder
	for _, line := range grid {
		b.WriteString(strings.TrimRight(string(line), " "))
		b.WriteByte('\n')
	}
	return b.String()
}

func pad(s string) string {
	if len(s) >= CellWidth {
		return s[:CellWidth]
	}
	return strings.Repeat(" ", CellWidth-len(s)) + s
}
