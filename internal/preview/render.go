// Package preview renders a stride-9 triangle soup to a flat-shaded
// orthographic image for before/after inspection of simplification results.
// It is CLI tooling, not part of the engine contract.
package preview

import (
	"image"
	"math"

	"mesh-simplifier/internal/mathutil"
	"mesh-simplifier/internal/postprocess"
)

// lightRig holds the fixed lighting for preview shading.
type lightRig struct {
	LightDir mathutil.Vec3
	RimDir   mathutil.Vec3
	Ambient  float64
	Direct   float64
	Rim      float64
}

func defaultLightRig() lightRig {
	return lightRig{
		LightDir: mathutil.Vec3{180, 260, 140}.Normalize(),
		RimDir:   mathutil.Vec3{-160, 130, -210}.Normalize(),
		Ambient:  0.35,
		Direct:   0.55,
		Rim:      0.20,
	}
}

// shade returns the combined lighting scalar for a face normal
// (double-sided Lambertian plus rim).
func (lr *lightRig) shade(normal mathutil.Vec3) float64 {
	s := lr.Ambient +
		math.Abs(normal.Dot(lr.LightDir))*lr.Direct +
		math.Abs(normal.Dot(lr.RimDir))*lr.Rim
	if s > 1 {
		s = 1
	}
	return s
}

// View is the preview camera: Yaw and Pitch orbit the model, Roll tilts the
// frame. All angles in degrees.
type View struct {
	Yaw   float64
	Pitch float64
	Roll  float64
}

// DefaultView is the fixed three-quarter camera.
func DefaultView() View {
	return View{Yaw: 30, Pitch: -20}
}

func (v View) rotation() mathutil.Mat3 {
	m := mathutil.Mat3Mul(
		mathutil.RotX(mathutil.Deg2Rad(v.Pitch)),
		mathutil.RotY(mathutil.Deg2Rad(v.Yaw)),
	)
	return mathutil.Mat3Mul(mathutil.RotZ(mathutil.Deg2Rad(v.Roll)), m)
}

// Render draws a triangle soup from the default camera. See RenderWith.
func Render(positions []float64, size, supersample int) *image.NRGBA {
	return RenderWith(DefaultView(), positions, size, supersample)
}

// RenderWith draws a triangle soup to an NRGBA image of size×size pixels
// with a transparent background. supersample > 1 renders at a multiple of
// the target size and downscales. Inputs whose length is not a multiple of 9
// have the trailing partial triangle ignored.
func RenderWith(view View, positions []float64, size, supersample int) *image.NRGBA {
	if size <= 0 {
		size = 256
	}
	if supersample < 1 {
		supersample = 1
	}

	triangles := len(positions) / 9
	if triangles == 0 {
		return image.NewNRGBA(image.Rect(0, 0, size, size))
	}

	R := view.rotation()

	// Transform every soup vertex and fit the bounding box to the frame.
	n := triangles * 3
	tx := make([]float64, n)
	ty := make([]float64, n)
	tz := make([]float64, n)
	min := mathutil.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	max := mathutil.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for i := 0; i < n; i++ {
		v := R.MulVec3(mathutil.Vec3{positions[i*3], positions[i*3+1], positions[i*3+2]})
		tx[i], ty[i], tz[i] = v[0], v[1], v[2]
		for k := 0; k < 3; k++ {
			if v[k] < min[k] {
				min[k] = v[k]
			}
			if v[k] > max[k] {
				max[k] = v[k]
			}
		}
	}

	center := min.Add(max).Scale(0.5)
	span := max[0] - min[0]
	if max[1]-min[1] > span {
		span = max[1] - min[1]
	}
	if span < 0.001 {
		span = 0.001
	}

	renderSize := size * supersample
	margin := 16 * supersample
	scale := float64(renderSize-2*margin) / span
	half := float64(renderSize) / 2

	px := make([]float64, n)
	py := make([]float64, n)
	for i := 0; i < n; i++ {
		px[i] = (tx[i]-center[0])*scale + half
		py[i] = -(ty[i]-center[1])*scale + half
	}

	fb := newFrameBuffer(renderSize, renderSize)
	lr := defaultLightRig()

	for t := 0; t < triangles; t++ {
		rasterizeTriangle(fb, px, py, tz, t*3, t*3+1, t*3+2, &lr)
	}

	img := image.NewNRGBA(image.Rect(0, 0, renderSize, renderSize))
	copy(img.Pix, fb.color)

	if supersample > 1 {
		img = postprocess.Downsample(img, size)
	}
	return img
}

// baseGray is the untextured surface color.
const baseGray = 200.0

// rasterizeTriangle fills one flat-shaded triangle with a z-buffer test.
// The inner loop is allocation free.
func rasterizeTriangle(fb *frameBuffer, px, py, pz []float64, i0, i1, i2 int, lr *lightRig) {
	x0, y0, z0 := px[i0], py[i0], pz[i0]
	x1, y1, z1 := px[i1], py[i1], pz[i1]
	x2, y2, z2 := px[i2], py[i2], pz[i2]

	// Face normal in view space for flat shading.
	e1 := mathutil.Vec3{x1 - x0, y1 - y0, z1 - z0}
	e2 := mathutil.Vec3{x2 - x0, y2 - y0, z2 - z0}
	normal := e1.Cross(e2)
	if normal.Len() < 1e-8 {
		return
	}
	normal = normal.Normalize()
	c := clamp255(lr.shade(normal) * baseGray)

	size := fb.width
	minX := int(math.Min(math.Min(x0, x1), x2))
	maxX := int(math.Max(math.Max(x0, x1), x2)) + 1
	minY := int(math.Min(math.Min(y0, y1), y2))
	maxY := int(math.Max(math.Max(y0, y1), y2)) + 1

	if minX < 0 {
		minX = 0
	}
	if maxX >= size {
		maxX = size - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= size {
		maxY = size - 1
	}
	if minX >= maxX || minY >= maxY {
		return
	}

	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det

	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) - y2
		rowOff := sy * size
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			zIdx := rowOff + sx
			if z <= fb.depth[zIdx] {
				continue
			}
			fb.depth[zIdx] = z

			pxIdx := zIdx * 4
			fb.color[pxIdx] = c
			fb.color[pxIdx+1] = c
			fb.color[pxIdx+2] = c
			fb.color[pxIdx+3] = 255
		}
	}
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
