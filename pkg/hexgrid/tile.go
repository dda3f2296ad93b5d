// Package hexgrid models the fixed 19-tile hexagonal board in cube
// coordinates: tiles, adjacency, and the three-tile junctions (vertices)
// where settlements collect production.
package hexgrid

import (
	"fmt"
	"strconv"
	"strings"
)

// Radius is the ring count of the standard board around its center tile.
const Radius = 2

// Tile is one hexagonal cell in cube coordinates. X+Y+Z is always 0.
type Tile struct {
	X, Y, Z int
}

// T is shorthand for constructing a Tile.
func T(x, y, z int) Tile { return Tile{X: x, Y: y, Z: z} }

// Origin is the center tile.
var Origin = Tile{}

// Valid reports whether the coordinates satisfy the cube constraint.
func (t Tile) Valid() bool { return t.X+t.Y+t.Z == 0 }

// IsAdjacent reports whether two tiles share an edge: their coordinate
// differences must be exactly one each of -1, 0 and 1.
func (t Tile) IsAdjacent(o Tile) bool {
	dx, dy, dz := t.X-o.X, t.Y-o.Y, t.Z-o.Z
	if !unit(dx) || !unit(dy) || !unit(dz) {
		return false
	}
	return dx != dy && dy != dz && dx != dz
}

func unit(d int) bool { return d >= -1 && d <= 1 }

// Distance returns the hex distance between two tiles.
func (t Tile) Distance(o Tile) int {
	return max(abs(t.X-o.X), abs(t.Y-o.Y), abs(t.Z-o.Z))
}

// Ring returns the tile's distance from the center.
func (t Tile) Ring() int { return t.Distance(Origin) }

// Less orders tiles by X, then Y, then Z.
func (t Tile) Less(o Tile) bool {
	if t.X != o.X {
		return t.X < o.X
	}
	if t.Y != o.Y {
		return t.Y < o.Y
	}
	return t.Z < o.Z
}

func (t Tile) String() string {
	return fmt.Sprintf("(%d,%d,%d)", t.X, t.Y, t.Z)
}

// MarshalText encodes the tile as "x,y,z" so it can key JSON objects.
func (t Tile) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("%d,%d,%d", t.X, t.Y, t.Z)), nil
}

// UnmarshalText parses the "x,y,z" form.
func (t *Tile) UnmarshalText(b []byte) error {
	parts := strings.Split(string(b), ",")
	if len(parts) != 3 {
		return fmt.Errorf("tile %q: want x,y,z", b)
	}
	var v [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return fmt.Errorf("tile %q: %w", b, err)
		}
		v[i] = n
	}
	next := Tile{X: v[0], Y: v[1], Z: v[2]}
	if !next.Valid() {
		return fmt.Errorf("tile %q: coordinates must sum to zero", b)
	}
	*t = next
	return nil
}

// BuildTiles returns the 19 tiles of the standard board in X-major,
// then Y, then Z order.
func BuildTiles() []Tile {
	return buildTiles(Radius)
}

func buildTiles(radius int) []Tile {
	size := 1 + 3*radius*(radius+1)
	tiles := make([]Tile, 0, size)
	for x := -radius; x <= radius; x++ {
		for y := -radius; y <= radius; y++ {
			for z := -radius; z <= radius; z++ {
				if x+y+z == 0 {
					tiles = append(tiles, Tile{X: x, Y: y, Z: z})
				}
			}
		}
	}
	return tiles
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
