package mesh

// BuildEdges derives the undirected edge set from live faces. Each edge is
// canonicalized by ascending vertex index; the first sighting creates the
// Edge record and registers it on both endpoint vertices, later sightings
// append the new face index to the edge's face list. Every edge therefore
// carries at least one face; edges with a single face are boundary edges.
//
// Edge construction order is deterministic (face order, then corner order),
// which fixes how the collapse loop breaks cost ties.
func (m *Mesh) BuildEdges() {
	seen := make(map[[2]int]int, len(m.Faces)*3/2)

	for fi := range m.Faces {
		f := &m.Faces[fi]
		if f.Deleted {
			continue
		}
		for k := 0; k < 3; k++ {
			a, b := f.V[k], f.V[(k+1)%3]
			if a > b {
				a, b = b, a
			}
			key := [2]int{a, b}
			ei, ok := seen[key]
			if !ok {
				ei = len(m.Edges)
				m.Edges = append(m.Edges, Edge{V0: a, V1: b})
				seen[key] = ei
				m.Vertices[a].Edges = append(m.Vertices[a].Edges, ei)
				m.Vertices[b].Edges = append(m.Vertices[b].Edges, ei)
			}
			m.Edges[ei].Faces = append(m.Edges[ei].Faces, fi)
		}
	}
}
