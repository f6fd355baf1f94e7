package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		p    Vec3
		want Vec3
	}{
		{"translate", Translate(10, 20, 30), Vec3{1, 2, 3}, Vec3{11, 22, 33}},
		{"scale", Scale(2, 2, 2), Vec3{1, 2, 3}, Vec3{2, 4, 6}},
		{"identity", Identity(), Vec3{-1, 0, 5}, Vec3{-1, 0, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.TransformPoint(tt.p); got != tt.want {
				t.Errorf("TransformPoint: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTransformDirectionIgnoresTranslation(t *testing.T) {
	m := Translate(5, 5, 5)
	if got := m.TransformDirection(Vec3{0, 1, 0}); got != (Vec3{0, 1, 0}) {
		t.Errorf("TransformDirection: got %v, want (0, 1, 0)", got)
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(float32(math.Pi / 2))
	result := m.TransformPoint(Vec3{1, 0, 0})

	// (1,0,0) rotates to approximately (0,0,-1)
	if abs(result.X) > 0.001 || abs(result.Y) > 0.001 || abs(result.Z+1) > 0.001 {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", result)
	}
}

func TestInverseTransformRoundTrip(t *testing.T) {
	m := TRS(Vec3{1, -2, 3}, Vec3{0.3, 1.1, -0.4}, Vec3{2, 2, 2})
	local := Vec3{0.25, 0.5, -0.75}

	world := m.TransformPoint(local)
	back := m.Inverse().TransformPoint(world)
	if back.Distance(local) > 1e-4 {
		t.Errorf("inverse point: got %v, want %v", back, local)
	}

	dir := Vec3{0, 0, 1}
	backDir := m.InverseTransformDirection(m.TransformDirection(dir))
	if backDir.Distance(dir) > 1e-4 {
		t.Errorf("InverseTransformDirection: got %v, want %v", backDir, dir)
	}
}

func TestInverseSingular(t *testing.T) {
	if got := Scale(0, 1, 1).Inverse(); got != Identity() {
		t.Errorf("singular Inverse should return identity, got %v", got)
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(float32(math.Pi/4), 1, 0.1, 100)

	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestLookAtMovesEyeToOrigin(t *testing.T) {
	eye := Vec3{0, 0, 5}
	m := LookAt(eye, Vec3{}, Up)

	if got := m.TransformPoint(eye); got.Length() > 1e-5 {
		t.Errorf("LookAt should map eye to origin, got %v", got)
	}
}

func TestVec4Normalize(t *testing.T) {
	got := Vec4{3, 0, 4, 0}.Normalize()
	want := Vec4{0.6, 0, 0.8, 0}
	for i := range got {
		if abs(got[i]-want[i]) > 1e-6 {
			t.Fatalf("Vec4.Normalize() = %v, want %v", got, want)
		}
	}
	if (Vec4{}).Normalize() != (Vec4{}) {
		t.Error("zero Vec4 should normalize to zero")
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
