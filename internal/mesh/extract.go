package mesh

import "math"

// quantKey is the exact-match welding key: each coordinate quantized to six
// decimal digits. This is not a tolerance-ball weld — two coincident points
// differing beyond the sixth decimal stay distinct vertices.
func quantKey(x, y, z float64) [3]int64 {
	return [3]int64{
		int64(math.Round(x * 1e6)),
		int64(math.Round(y * 1e6)),
		int64(math.Round(z * 1e6)),
	}
}

// FromPositions builds an indexed mesh from a flat triangle soup, stride 9
// (three vertices × xyz per triangle). Duplicate positions are welded via
// the 6-decimal quantization key. A source triangle whose resolved vertex
// indices are not all distinct is dropped entirely, not repaired; the count
// of dropped triangles is recorded in Mesh.DroppedFaces.
//
// Callers validate len(positions)%9 == 0 before calling.
func FromPositions(positions []float64) *Mesh {
	triangles := len(positions) / 9
	m := &Mesh{
		Faces: make([]Face, 0, triangles),
	}
	index := make(map[[3]int64]int, triangles)

	resolve := func(off int) int {
		x, y, z := positions[off], positions[off+1], positions[off+2]
		key := quantKey(x, y, z)
		if vi, ok := index[key]; ok {
			return vi
		}
		vi := len(m.Vertices)
		m.Vertices = append(m.Vertices, Vertex{Position: [3]float64{x, y, z}})
		index[key] = vi
		return vi
	}

	for t := 0; t < triangles; t++ {
		off := t * 9
		a := resolve(off)
		b := resolve(off + 3)
		c := resolve(off + 6)
		if a == b || b == c || a == c {
			m.DroppedFaces++
			continue
		}

		fi := len(m.Faces)
		m.Faces = append(m.Faces, Face{V: [3]int{a, b, c}})
		m.RefreshFace(fi)
		m.AttachFace(a, fi)
		m.AttachFace(b, fi)
		m.AttachFace(c, fi)
	}

	return m
}
