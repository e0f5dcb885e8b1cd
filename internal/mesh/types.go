// Package mesh holds the mutable adjacency structures that edge-collapse
// simplification operates on: indexed vertices, faces and undirected edges.
//
// All cross-references are integer indices into the Mesh slices. Records are
// tombstoned via Deleted flags instead of being removed, so indices stay
// valid across the thousands of topology mutations a simplification run
// performs. Containers are built once per run (FromPositions + BuildEdges)
// and never grow afterward: faces are mutated or tombstoned, edges are never
// created after BuildEdges.
package mesh

import "mesh-simplifier/internal/mathutil"

// Vertex is one welded position with its accumulated error quadric and
// incidence lists.
type Vertex struct {
	Position mathutil.Vec3
	Q        Quadric
	Faces    []int // incident face indices, no duplicates
	Edges    []int // incident edge indices
	Deleted  bool
}

// Face is a triangle over three vertex indices with cached geometry.
type Face struct {
	V       [3]int
	Normal  mathutil.Vec3 // unit normal, zero for degenerate faces
	Area    float64
	Deleted bool
}

// Edge is a canonical unordered vertex pair (V0 < V1) with its incident
// faces and the cached collapse candidate. Cost == +Inf marks an edge whose
// endpoint has already been consumed; the collapse loop never selects it.
type Edge struct {
	V0, V1  int
	Faces   []int
	Target  mathutil.Vec3
	Cost    float64
	Deleted bool
}

// Mesh is the full arena for one simplification run.
type Mesh struct {
	Vertices []Vertex
	Faces    []Face
	Edges    []Edge

	// DroppedFaces counts source triangles discarded during extraction
	// because two of their resolved vertex indices coincided.
	DroppedFaces int
}

// HasVertex reports whether the face references vertex index vi.
func (f *Face) HasVertex(vi int) bool {
	return f.V[0] == vi || f.V[1] == vi || f.V[2] == vi
}

// ReplaceVertex substitutes vertex index from with to in the face.
func (f *Face) ReplaceVertex(from, to int) {
	for k := range f.V {
		if f.V[k] == from {
			f.V[k] = to
		}
	}
}

// Other returns the edge endpoint that is not vi.
func (e *Edge) Other(vi int) int {
	if e.V0 == vi {
		return e.V1
	}
	return e.V0
}

// RefreshFace recomputes the cached unit normal and area of face fi from
// current vertex positions. Degenerate faces get a zero normal and zero area.
func (m *Mesh) RefreshFace(fi int) {
	f := &m.Faces[fi]
	a := m.Vertices[f.V[0]].Position
	b := m.Vertices[f.V[1]].Position
	c := m.Vertices[f.V[2]].Position
	cross := b.Sub(a).Cross(c.Sub(a))
	l := cross.Len()
	f.Area = l / 2
	if l < 1e-12 {
		f.Normal = mathutil.Vec3{}
		return
	}
	f.Normal = cross.Scale(1 / l)
}

// AttachFace registers face fi on vertex vi, skipping the append when the
// incidence list already contains it.
func (m *Mesh) AttachFace(vi, fi int) {
	v := &m.Vertices[vi]
	for _, existing := range v.Faces {
		if existing == fi {
			return
		}
	}
	v.Faces = append(v.Faces, fi)
}

// LiveFaceCount counts faces not yet tombstoned.
func (m *Mesh) LiveFaceCount() int {
	n := 0
	for i := range m.Faces {
		if !m.Faces[i].Deleted {
			n++
		}
	}
	return n
}

// LiveEdgeFaces counts the live faces incident to edge ei. An edge with
// fewer than 2 live faces lies on an open rim (boundary edge).
func (m *Mesh) LiveEdgeFaces(ei int) int {
	n := 0
	for _, fi := range m.Edges[ei].Faces {
		if !m.Faces[fi].Deleted {
			n++
		}
	}
	return n
}
