// Package shapes generates procedural triangle soups (flat stride-9 float
// sequences) used by the CLI tools and tests.
package shapes

import "math"

// tri appends one triangle's nine floats.
func tri(dst []float64, a, b, c [3]float64) []float64 {
	dst = append(dst, a[0], a[1], a[2])
	dst = append(dst, b[0], b[1], b[2])
	return append(dst, c[0], c[1], c[2])
}

// quad appends two triangles covering the quad a-b-c-d.
func quad(dst []float64, a, b, c, d [3]float64) []float64 {
	dst = tri(dst, a, b, c)
	return tri(dst, a, c, d)
}

// Cube returns a unit cube as 12 triangles.
func Cube() []float64 {
	p := func(x, y, z float64) [3]float64 { return [3]float64{x, y, z} }
	var s []float64
	s = quad(s, p(0, 0, 0), p(0, 1, 0), p(1, 1, 0), p(1, 0, 0)) // back
	s = quad(s, p(0, 0, 1), p(1, 0, 1), p(1, 1, 1), p(0, 1, 1)) // front
	s = quad(s, p(0, 0, 0), p(0, 0, 1), p(0, 1, 1), p(0, 1, 0)) // left
	s = quad(s, p(1, 0, 0), p(1, 1, 0), p(1, 1, 1), p(1, 0, 1)) // right
	s = quad(s, p(0, 0, 0), p(1, 0, 0), p(1, 0, 1), p(0, 0, 1)) // bottom
	s = quad(s, p(0, 1, 0), p(0, 1, 1), p(1, 1, 1), p(1, 1, 0)) // top
	return s
}

// Quad returns a single flat unit quad as 2 triangles.
func Quad() []float64 {
	var s []float64
	return quad(s,
		[3]float64{0, 0, 0},
		[3]float64{1, 0, 0},
		[3]float64{1, 1, 0},
		[3]float64{0, 1, 0},
	)
}

// Strip returns a flat strip of n quads (2n triangles) along the X axis,
// sharing vertices between neighbors. Interior vertical edges border two
// triangles; the rim is boundary.
func Strip(n int) []float64 {
	var s []float64
	for i := 0; i < n; i++ {
		x0, x1 := float64(i), float64(i+1)
		s = quad(s,
			[3]float64{x0, 0, 0},
			[3]float64{x1, 0, 0},
			[3]float64{x1, 1, 0},
			[3]float64{x0, 1, 0},
		)
	}
	return s
}

// Octahedron returns a regular octahedron as 8 triangles.
func Octahedron() []float64 {
	top := [3]float64{0, 1, 0}
	bot := [3]float64{0, -1, 0}
	ring := [4][3]float64{
		{1, 0, 0},
		{0, 0, 1},
		{-1, 0, 0},
		{0, 0, -1},
	}
	var s []float64
	for i := 0; i < 4; i++ {
		a, b := ring[i], ring[(i+1)%4]
		s = tri(s, top, a, b)
		s = tri(s, bot, b, a)
	}
	return s
}

// Sphere returns a UV sphere of unit radius with the given number of
// latitude and longitude segments (minimum 3 each).
func Sphere(lat, lon int) []float64 {
	if lat < 3 {
		lat = 3
	}
	if lon < 3 {
		lon = 3
	}
	at := func(i, j int) [3]float64 {
		theta := math.Pi * float64(i) / float64(lat)
		phi := 2 * math.Pi * float64(j%lon) / float64(lon)
		return [3]float64{
			math.Sin(theta) * math.Cos(phi),
			math.Cos(theta),
			math.Sin(theta) * math.Sin(phi),
		}
	}
	var s []float64
	for i := 0; i < lat; i++ {
		for j := 0; j < lon; j++ {
			a := at(i, j)
			b := at(i+1, j)
			c := at(i+1, j+1)
			d := at(i, j+1)
			if i > 0 {
				s = tri(s, a, b, d)
			}
			if i < lat-1 {
				s = tri(s, b, c, d)
			}
		}
	}
	return s
}
