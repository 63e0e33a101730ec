package core

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestVec3Arithmetic(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, -5, 6)

	if got := a.Add(b); got != V3(5, -3, 9) {
		t.Errorf("Add() = %v", got)
	}
	if got := a.Sub(b); got != V3(-3, 7, -3) {
		t.Errorf("Sub() = %v", got)
	}
	if got := a.Scale(2); got != V3(2, 4, 6) {
		t.Errorf("Scale() = %v", got)
	}
	if got := a.Dot(b); got != 12 {
		t.Errorf("Dot() = %v, expected 12", got)
	}
	if got := V3(1, 0, 0).Cross(V3(0, 1, 0)); got != V3(0, 0, 1) {
		t.Errorf("Cross() = %v, expected +Z", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec3
		want Vec3
	}{
		{"axis", V3(0, 0, -5), V3(0, 0, -1)},
		{"diagonal", V3(3, 4, 0), V3(0.6, 0.8, 0)},
		{"zero stays zero", Vec3{}, Vec3{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Normalize()
			if !near(got.X, tc.want.X) || !near(got.Y, tc.want.Y) || !near(got.Z, tc.want.Z) {
				t.Errorf("Normalize(%v) = %v, expected %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestVec3DistAndLerp(t *testing.T) {
	if d := V3(0, 0, 0).Dist(V3(3, 4, 0)); !near(d, 5) {
		t.Errorf("Dist() = %v, expected 5", d)
	}
	mid := V3(0, 0, 0).Lerp(V3(10, -10, 4), 0.5)
	if mid != V3(5, -5, 2) {
		t.Errorf("Lerp() = %v", mid)
	}
	if Lerp(2, 4, 0) != 2 || Lerp(2, 4, 1) != 4 {
		t.Error("scalar Lerp endpoints wrong")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 100, 0},
		{100, 0, 100, 100},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}

	if ClampF(1.5, -1, 1) != 1 || ClampF(-3, -1, 1) != -1 || ClampF(0.25, -1, 1) != 0.25 {
		t.Error("ClampF out of range")
	}
}

func TestCameraProjectCenter(t *testing.T) {
	cam := NewCamera(V3(0, 0, 10), V3(0, 0, 0), 1)

	x, y, depth, ok := cam.Project(V3(0, 0, 0))
	if !ok {
		t.Fatal("target should be in front of the camera")
	}
	if math.Abs(x) > eps || math.Abs(y) > eps {
		t.Errorf("target should project to the center, got (%v, %v)", x, y)
	}
	if !near(depth, 10) {
		t.Errorf("depth = %v, expected 10", depth)
	}

	if _, _, _, ok := cam.Project(V3(0, 0, 20)); ok {
		t.Error("point behind the camera should not project")
	}
}

func TestCameraRayRoundTrip(t *testing.T) {
	cam := NewCamera(V3(0, 5, 15), V3(0, 0, 0), 16.0/9.0)

	for _, ndc := range [][2]float64{{0, 0}, {0.5, -0.25}, {-1, 1}, {0.9, 0.9}} {
		origin, dir := cam.Ray(ndc[0], ndc[1])
		if !near(dir.Len(), 1) {
			t.Errorf("ray direction should be unit length, got %v", dir.Len())
		}
		p := origin.Add(dir.Scale(100))
		x, y, _, ok := cam.Project(p)
		if !ok {
			t.Fatalf("point on ray %v should be visible", ndc)
		}
		if !near(x, ndc[0]) || !near(y, ndc[1]) {
			t.Errorf("Project(Ray(%v)) = (%v, %v)", ndc, x, y)
		}
	}
}

func TestCameraRightIsPositiveX(t *testing.T) {
	cam := NewCamera(V3(0, 0, 10), V3(0, 0, 0), 1)
	x, _, _, _ := cam.Project(V3(1, 0, 0))
	if x <= 0 {
		t.Errorf("+X world should appear right of center, got ndcX=%v", x)
	}
	_, y, _, _ := cam.Project(V3(0, 1, 0))
	if y <= 0 {
		t.Errorf("+Y world should appear above center, got ndcY=%v", y)
	}
}
