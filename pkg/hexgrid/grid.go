package hexgrid

// Grid is the precomputed, read-only geometry of a board. It is built once
// and shared by every scoring call and optimizer restart.
type Grid struct {
	Tiles    []Tile
	Vertices []Vertex

	index     map[Tile]int
	incidence map[Tile][]Vertex
	triples   [][3]int
	pairs     [][2]int
	neighbors [][]int
}

// New builds the standard 19-tile board.
func New() *Grid {
	return NewFromTiles(BuildTiles())
}

// NewFromTiles builds a grid over an arbitrary tile set. Tile order is
// preserved and defines the index of every tile.
func NewFromTiles(tiles []Tile) *Grid {
	g := &Grid{
		Tiles:     append([]Tile(nil), tiles...),
		index:     make(map[Tile]int, len(tiles)),
		neighbors: make([][]int, len(tiles)),
	}
	for i, t := range g.Tiles {
		g.index[t] = i
	}

	for i := range g.Tiles {
		for j := i + 1; j < len(g.Tiles); j++ {
			if g.Tiles[i].IsAdjacent(g.Tiles[j]) {
				g.pairs = append(g.pairs, [2]int{i, j})
				g.neighbors[i] = append(g.neighbors[i], j)
				g.neighbors[j] = append(g.neighbors[j], i)
			}
		}
	}

	g.Vertices = BuildVertices(g.Tiles)
	g.incidence = BuildIncidence(g.Vertices)
	g.triples = make([][3]int, len(g.Vertices))
	for i, v := range g.Vertices {
		g.triples[i] = [3]int{g.index[v[0]], g.index[v[1]], g.index[v[2]]}
	}
	return g
}

// Len returns the number of tiles.
func (g *Grid) Len() int { return len(g.Tiles) }

// Index returns the position of t in Tiles.
func (g *Grid) Index(t Tile) (int, bool) {
	i, ok := g.index[t]
	return i, ok
}

// Contains reports whether t is on the board.
func (g *Grid) Contains(t Tile) bool {
	_, ok := g.index[t]
	return ok
}

// VerticesOf returns the vertices touching t. The slice must not be modified.
func (g *Grid) VerticesOf(t Tile) []Vertex { return g.incidence[t] }

// Neighbors returns the on-board tiles adjacent to t.
func (g *Grid) Neighbors(t Tile) []Tile {
	i, ok := g.index[t]
	if !ok {
		return nil
	}
	out := make([]Tile, len(g.neighbors[i]))
	for k, j := range g.neighbors[i] {
		out[k] = g.Tiles[j]
	}
	return out
}

// VertexIndices returns each vertex as a triple of tile indices, in the
// same order as Vertices. The slice must not be modified.
func (g *Grid) VertexIndices() [][3]int { return g.triples }

// AdjacentPairs returns every adjacent tile pair as indices i<j.
// The slice must not be modified.
func (g *Grid) AdjacentPairs() [][2]int { return g.pairs }
