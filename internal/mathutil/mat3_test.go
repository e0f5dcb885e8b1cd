package mathutil

import (
	"math"
	"testing"
)

func vecNear(a, b Vec3, eps float64) bool {
	return math.Abs(a[0]-b[0]) <= eps &&
		math.Abs(a[1]-b[1]) <= eps &&
		math.Abs(a[2]-b[2]) <= eps
}

func TestMulVec3Rotations(t *testing.T) {
	quarter := Deg2Rad(90)
	tests := []struct {
		name string
		m    Mat3
		v    Vec3
		want Vec3
	}{
		{"rotx quarter", RotX(quarter), Vec3{0, 1, 0}, Vec3{0, 0, 1}},
		{"roty quarter", RotY(quarter), Vec3{0, 0, 1}, Vec3{1, 0, 0}},
		{"rotz quarter", RotZ(quarter), Vec3{1, 0, 0}, Vec3{0, 1, 0}},
		{"rotz keeps axis", RotZ(quarter), Vec3{0, 0, 1}, Vec3{0, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.MulVec3(tt.v); !vecNear(got, tt.want, 1e-12) {
				t.Errorf("MulVec3(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestMat3MulComposesRotations(t *testing.T) {
	composed := Mat3Mul(RotY(Deg2Rad(30)), RotY(Deg2Rad(60)))
	direct := RotY(Deg2Rad(90))

	v := Vec3{0, 0, 1}
	if got, want := composed.MulVec3(v), direct.MulVec3(v); !vecNear(got, want, 1e-12) {
		t.Errorf("composed rotation maps %v to %v, want %v", v, got, want)
	}
}

func TestDeg2Rad(t *testing.T) {
	if got := Deg2Rad(180); math.Abs(got-math.Pi) > 1e-15 {
		t.Errorf("Deg2Rad(180) = %v, want pi", got)
	}
}
