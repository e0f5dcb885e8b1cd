package mathutil

import (
	"math"
	"testing"
)

func TestVec3Cross(t *testing.T) {
	got := Vec3{1, 0, 0}.Cross(Vec3{0, 1, 0})
	if got != (Vec3{0, 0, 1}) {
		t.Errorf("Cross = %v, want (0,0,1)", got)
	}
	anti := Vec3{0, 1, 0}.Cross(Vec3{1, 0, 0})
	if anti != (Vec3{0, 0, -1}) {
		t.Errorf("Cross = %v, want (0,0,-1)", anti)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 4, 0}.Normalize()
	if math.Abs(v.Len()-1) > 1e-12 {
		t.Errorf("Len = %v, want 1", v.Len())
	}
	if v[0] != 0.6 || v[1] != 0.8 {
		t.Errorf("Normalize = %v, want (0.6, 0.8, 0)", v)
	}
	if z := (Vec3{}).Normalize(); z != (Vec3{}) {
		t.Errorf("Normalize(zero) = %v, want zero", z)
	}
}

func TestVec3Mid(t *testing.T) {
	got := Vec3{0, 2, -4}.Mid(Vec3{2, 4, 4})
	if got != (Vec3{1, 3, 0}) {
		t.Errorf("Mid = %v, want (1,3,0)", got)
	}
}

func TestVec3LenSq(t *testing.T) {
	v := Vec3{1, 2, 2}
	if got := v.LenSq(); got != 9 {
		t.Errorf("LenSq = %v, want 9", got)
	}
	if got := v.Len(); got != 3 {
		t.Errorf("Len = %v, want 3", got)
	}
}

func TestVec3Dot(t *testing.T) {
	if got := (Vec3{1, 2, 3}).Dot(Vec3{4, -5, 6}); got != 12 {
		t.Errorf("Dot = %v, want 12", got)
	}
}
