package tiling

// tileAdjacency is an undirected adjacency set over tile indices
// 0..n-1, adapted from the map-of-maps adjacency-list idea the teacher's
// core.Graph uses internally (adjacencyList[from][to][edgeID]) but
// stripped down to exactly what coordinationNumber needs: connect two
// indices and count how many indices a given one connects to. No vertex
// IDs, edge IDs, weights, or directed/multigraph/view machinery.
type tileAdjacency struct {
	neighbors []map[int]struct{}
}

func newTileAdjacency(n int) *tileAdjacency {
	neighbors := make([]map[int]struct{}, n)
	for i := range neighbors {
		neighbors[i] = make(map[int]struct{})
	}
	return &tileAdjacency{neighbors: neighbors}
}

// connect records i and j as adjacent. Idempotent.
func (a *tileAdjacency) connect(i, j int) {
	a.neighbors[i][j] = struct{}{}
	a.neighbors[j][i] = struct{}{}
}

// degree returns how many distinct indices i is connected to.
func (a *tileAdjacency) degree(i int) int {
	return len(a.neighbors[i])
}
