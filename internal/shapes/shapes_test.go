package shapes

import (
	"testing"

	"mesh-simplifier/internal/mesh"
)

func TestTriangleCounts(t *testing.T) {
	tests := []struct {
		name string
		soup []float64
		want int
	}{
		{"cube", Cube(), 12},
		{"quad", Quad(), 2},
		{"strip", Strip(3), 6},
		{"octahedron", Octahedron(), 8},
		{"sphere 3x3", Sphere(3, 3), 12},
		{"sphere 4x6", Sphere(4, 6), 36},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.soup)%9 != 0 {
				t.Fatalf("soup length %d is not stride-9", len(tt.soup))
			}
			if got := len(tt.soup) / 9; got != tt.want {
				t.Errorf("triangles = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestShapesHaveNoDegenerateTriangles(t *testing.T) {
	tests := []struct {
		name string
		soup []float64
	}{
		{"cube", Cube()},
		{"quad", Quad()},
		{"strip", Strip(4)},
		{"octahedron", Octahedron()},
		{"sphere", Sphere(6, 8)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mesh.FromPositions(tt.soup)
			if m.DroppedFaces != 0 {
				t.Errorf("welding dropped %d degenerate faces", m.DroppedFaces)
			}
		})
	}
}

func TestClosedShapesHaveNoBoundary(t *testing.T) {
	tests := []struct {
		name string
		soup []float64
	}{
		{"cube", Cube()},
		{"octahedron", Octahedron()},
		{"sphere", Sphere(5, 7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mesh.FromPositions(tt.soup)
			m.BuildEdges()
			for ei := range m.Edges {
				if got := m.LiveEdgeFaces(ei); got != 2 {
					t.Errorf("edge %d borders %d faces, want 2", ei, got)
				}
			}
		})
	}
}

func TestSphereClampsSegments(t *testing.T) {
	if got, want := len(Sphere(1, 1)), len(Sphere(3, 3)); got != want {
		t.Errorf("Sphere(1,1) length = %d, want clamped to Sphere(3,3) = %d", got, want)
	}
}
