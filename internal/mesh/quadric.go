package mesh

import "mesh-simplifier/internal/mathutil"

// Quadric is a symmetric 4×4 error matrix stored as its 10 independent
// coefficients, in the order
//
//	[ a², ab, ac, ad,
//	       b², bc, bd,
//	            c², cd,
//	                 d² ]
//
// for a supporting plane ax+by+cz+d=0 with unit normal (a,b,c). Evaluating
// the quadric at a point yields the summed squared distance of that point to
// every plane accumulated so far.
type Quadric [10]float64

// PlaneQuadric builds the quadric of a single plane from its unit normal n
// and offset d.
func PlaneQuadric(n mathutil.Vec3, d float64) Quadric {
	a, b, c := n[0], n[1], n[2]
	return Quadric{
		a * a, a * b, a * c, a * d,
		b * b, b * c, b * d,
		c * c, c * d,
		d * d,
	}
}

// Add returns the component-wise sum of two quadrics.
func (q Quadric) Add(o Quadric) Quadric {
	for i := range q {
		q[i] += o[i]
	}
	return q
}

// Scale returns the quadric multiplied by a scalar weight.
func (q Quadric) Scale(s float64) Quadric {
	for i := range q {
		q[i] *= s
	}
	return q
}

// EvalAt computes vᵀQv for the homogeneous point (x, y, z, 1).
func (q Quadric) EvalAt(p mathutil.Vec3) float64 {
	x, y, z := p[0], p[1], p[2]
	return q[0]*x*x + 2*q[1]*x*y + 2*q[2]*x*z + 2*q[3]*x +
		q[4]*y*y + 2*q[5]*y*z + 2*q[6]*y +
		q[7]*z*z + 2*q[8]*z +
		q[9]
}
