package mesh

import "testing"

func TestBuildEdgesQuad(t *testing.T) {
	// Quad split along the diagonal: 4 rim edges plus 1 shared diagonal.
	s := soup(
		[3][3]float64{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}},
		[3][3]float64{{0, 0, 0}, {1, 1, 0}, {0, 1, 0}},
	)
	m := FromPositions(s)
	m.BuildEdges()

	if got, want := len(m.Edges), 5; got != want {
		t.Fatalf("edges = %d, want %d", got, want)
	}

	boundary, interior := 0, 0
	for ei := range m.Edges {
		e := &m.Edges[ei]
		if e.V0 >= e.V1 {
			t.Errorf("edge %d not canonical: (%d, %d)", ei, e.V0, e.V1)
		}
		switch n := m.LiveEdgeFaces(ei); n {
		case 1:
			boundary++
		case 2:
			interior++
		default:
			t.Errorf("edge %d has %d live faces", ei, n)
		}
	}
	if boundary != 4 || interior != 1 {
		t.Errorf("boundary/interior = %d/%d, want 4/1", boundary, interior)
	}
}

func TestBuildEdgesRegistersOnVertices(t *testing.T) {
	s := soup([3][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}})
	m := FromPositions(s)
	m.BuildEdges()

	if got, want := len(m.Edges), 3; got != want {
		t.Fatalf("edges = %d, want %d", got, want)
	}
	for vi := range m.Vertices {
		if got, want := len(m.Vertices[vi].Edges), 2; got != want {
			t.Errorf("vertex %d has %d edges, want %d", vi, got, want)
		}
	}
	for ei := range m.Edges {
		if got := len(m.Edges[ei].Faces); got < 1 {
			t.Errorf("edge %d has empty face list", ei)
		}
	}
}

func TestBuildEdgesClosedMeshHasNoBoundary(t *testing.T) {
	// Tetrahedron: 4 faces, 6 edges, all interior.
	a := [3]float64{0, 0, 0}
	b := [3]float64{1, 0, 0}
	c := [3]float64{0, 1, 0}
	d := [3]float64{0, 0, 1}
	s := soup(
		[3][3]float64{a, b, c},
		[3][3]float64{a, b, d},
		[3][3]float64{a, c, d},
		[3][3]float64{b, c, d},
	)
	m := FromPositions(s)
	m.BuildEdges()

	if got, want := len(m.Edges), 6; got != want {
		t.Fatalf("edges = %d, want %d", got, want)
	}
	for ei := range m.Edges {
		if got := m.LiveEdgeFaces(ei); got != 2 {
			t.Errorf("edge %d has %d live faces, want 2", ei, got)
		}
	}
}
