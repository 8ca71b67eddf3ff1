package math

import (
	"testing"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{0, 3, 4}
	l := v.Normalize().Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}

	// Zero vector stays zero instead of producing NaN.
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("zero Normalize() = %v, want zero", got)
	}
}

func TestMidpoint(t *testing.T) {
	got := Midpoint(Vec3{0, 0, 0}, Vec3{2, 4, -6})
	want := Vec3{1, 2, -3}
	if got != want {
		t.Errorf("Midpoint() = %v, want %v", got, want)
	}
}

func TestVec3Div(t *testing.T) {
	if got := (Vec3{2, 4, 6}).Div(2); got != (Vec3{1, 2, 3}) {
		t.Errorf("Div(2) = %v", got)
	}
	if got := (Vec3{2, 4, 6}).Div(0); got != (Vec3{}) {
		t.Errorf("Div(0) = %v, want zero", got)
	}
}

func TestVec3WithLength(t *testing.T) {
	v := Vec3{1, 1, 1}.WithLength(3)
	if l := v.Length(); l < 2.999 || l > 3.001 {
		t.Errorf("WithLength(3).Length() = %v", l)
	}
}
