package hexgrid

import "fmt"

// Vertex is a board corner where three mutually adjacent tiles meet.
// The tiles are kept sorted so equal tile sets compare equal.
type Vertex [3]Tile

// NewVertex returns the canonical vertex for three tiles in any order.
func NewVertex(a, b, c Tile) Vertex {
	if b.Less(a) {
		a, b = b, a
	}
	if c.Less(b) {
		b, c = c, b
	}
	if b.Less(a) {
		a, b = b, a
	}
	return Vertex{a, b, c}
}

// Touches reports whether t is one of the vertex's tiles.
func (v Vertex) Touches(t Tile) bool {
	return v[0] == t || v[1] == t || v[2] == t
}

func (v Vertex) String() string {
	return fmt.Sprintf("{%s %s %s}", v[0], v[1], v[2])
}

// BuildVertices returns every unordered triple of pairwise adjacent tiles,
// in enumeration order, with each tile set appearing once.
func BuildVertices(tiles []Tile) []Vertex {
	seen := make(map[Vertex]bool)
	var vertices []Vertex
	n := len(tiles)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !tiles[i].IsAdjacent(tiles[j]) {
				continue
			}
			for k := j + 1; k < n; k++ {
				if !tiles[j].IsAdjacent(tiles[k]) || !tiles[k].IsAdjacent(tiles[i]) {
					continue
				}
				v := NewVertex(tiles[i], tiles[j], tiles[k])
				if seen[v] {
					continue
				}
				seen[v] = true
				vertices = append(vertices, v)
			}
		}
	}
	return vertices
}

// BuildIncidence maps each tile to the vertices it touches.
func BuildIncidence(vertices []Vertex) map[Tile][]Vertex {
	result := make(map[Tile][]Vertex)
	for _, v := range vertices {
		for _, t := range v {
			result[t] = append(result[t], v)
		}
	}
	return result
}
