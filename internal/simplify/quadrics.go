package simplify

import "mesh-simplifier/internal/mesh"

// normalEps is the minimum face-normal length for a face to define a plane.
const normalEps = 1e-10

// accumulateQuadrics builds the area-weighted plane quadric of every live
// face and adds it into the face's three vertices. Faces whose normal is
// near zero length contribute a zero quadric — a silent, intentional skip
// for degenerate geometry, not an error.
func accumulateQuadrics(m *mesh.Mesh) {
	for fi := range m.Faces {
		f := &m.Faces[fi]
		if f.Deleted {
			continue
		}

		var q mesh.Quadric
		if f.Normal.LenSq() >= normalEps*normalEps {
			d := -f.Normal.Dot(m.Vertices[f.V[0]].Position)
			q = mesh.PlaneQuadric(f.Normal, d).Scale(f.Area)
		}

		for _, vi := range f.V {
			v := &m.Vertices[vi]
			v.Q = v.Q.Add(q)
		}
	}
}
