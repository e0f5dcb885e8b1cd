package mesh

// Positions compacts surviving geometry back into a flat stride-9 triangle
// soup, mirroring the input format (redundant vertices, no shared index
// buffer). A vertex survives only if it is not deleted and still has at
// least one live incident face, so fully isolated vertices leave no stray
// artifacts. A face is re-emitted only when its three vertex indices are
// distinct and all map to surviving vertices.
func (m *Mesh) Positions() []float64 {
	alive := make([]bool, len(m.Vertices))
	for vi := range m.Vertices {
		v := &m.Vertices[vi]
		if v.Deleted {
			continue
		}
		for _, fi := range v.Faces {
			if !m.Faces[fi].Deleted {
				alive[vi] = true
				break
			}
		}
	}

	out := make([]float64, 0, m.LiveFaceCount()*9)
	for fi := range m.Faces {
		f := &m.Faces[fi]
		if f.Deleted {
			continue
		}
		a, b, c := f.V[0], f.V[1], f.V[2]
		if a == b || b == c || a == c {
			continue
		}
		if !alive[a] || !alive[b] || !alive[c] {
			continue
		}
		for _, vi := range f.V {
			p := m.Vertices[vi].Position
			out = append(out, p[0], p[1], p[2])
		}
	}
	return out
}
