package mesh

import "testing"

// soup builds a flat stride-9 sequence from triangles of [3][3]float64.
func soup(tris ...[3][3]float64) []float64 {
	var s []float64
	for _, t := range tris {
		for _, v := range t {
			s = append(s, v[0], v[1], v[2])
		}
	}
	return s
}

func TestFromPositionsWeldsSharedVertices(t *testing.T) {
	// Two triangles sharing the edge (0,0,0)-(1,0,0).
	s := soup(
		[3][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		[3][3]float64{{0, 0, 0}, {1, 1, 0}, {1, 0, 0}},
	)
	m := FromPositions(s)

	if got, want := len(m.Vertices), 4; got != want {
		t.Fatalf("vertices = %d, want %d", got, want)
	}
	if got, want := len(m.Faces), 2; got != want {
		t.Fatalf("faces = %d, want %d", got, want)
	}
	if m.DroppedFaces != 0 {
		t.Fatalf("DroppedFaces = %d, want 0", m.DroppedFaces)
	}
}

func TestFromPositionsQuantization(t *testing.T) {
	tests := []struct {
		name      string
		x1, x2    float64
		wantVerts int
	}{
		// Difference invisible at six decimals: welded.
		{"below sixth decimal", 0, 1e-7, 5},
		// Difference crosses the sixth-decimal rounding boundary: distinct,
		// even though the points are closer than any sane weld tolerance.
		{"across decimal boundary", 0.1234564, 0.1234567, 6},
		// Identical coordinates always weld.
		{"exact duplicate", 0.5, 0.5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := soup(
				[3][3]float64{{tt.x1, 0, 0}, {1, 0, 0}, {0, 1, 0}},
				[3][3]float64{{tt.x2, 0, 0}, {2, 0, 0}, {0, 2, 0}},
			)
			m := FromPositions(s)
			if got := len(m.Vertices); got != tt.wantVerts {
				t.Errorf("vertices = %d, want %d", got, tt.wantVerts)
			}
		})
	}
}

func TestFromPositionsDropsRepeatedVertexTriangles(t *testing.T) {
	// Middle triangle has two coincident corners and must be dropped whole.
	s := soup(
		[3][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		[3][3]float64{{5, 5, 5}, {5, 5, 5}, {6, 5, 5}},
		[3][3]float64{{0, 0, 1}, {1, 0, 1}, {0, 1, 1}},
	)
	m := FromPositions(s)

	if got, want := len(m.Faces), 2; got != want {
		t.Errorf("faces = %d, want %d", got, want)
	}
	if got, want := m.DroppedFaces, 1; got != want {
		t.Errorf("DroppedFaces = %d, want %d", got, want)
	}
	// The degenerate triangle's positions still entered the vertex pool;
	// they are dropped at rebuild as isolated vertices.
	for fi := range m.Faces {
		f := &m.Faces[fi]
		if f.V[0] == f.V[1] || f.V[1] == f.V[2] || f.V[0] == f.V[2] {
			t.Errorf("face %d has repeated vertex indices %v", fi, f.V)
		}
	}
}

func TestFromPositionsCachesNormalAndArea(t *testing.T) {
	s := soup([3][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}})
	m := FromPositions(s)

	f := &m.Faces[0]
	if got, want := f.Area, 0.5; got != want {
		t.Errorf("area = %v, want %v", got, want)
	}
	if f.Normal[2] != 1 && f.Normal[2] != -1 {
		t.Errorf("normal = %v, want unit ±z", f.Normal)
	}
}

func TestFromPositionsEmptyInput(t *testing.T) {
	m := FromPositions(nil)
	if len(m.Vertices) != 0 || len(m.Faces) != 0 {
		t.Fatalf("expected empty mesh, got %d verts, %d faces", len(m.Vertices), len(m.Faces))
	}
}
