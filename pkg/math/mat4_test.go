package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := LookAt(Vec3{1, 2, 3}, Vec3{0, 0, 0}, Vec3{0, 1, 0})
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestPerspective(t *testing.T) {
	fov := float32(math.Pi / 4) // 45 degrees
	near := float32(0.1)
	far := float32(100.0)

	m := Perspective(fov, 1, near, far)

	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}

	tests := []struct {
		depth float32
		ndcZ  float32
	}{
		{near, -1},
		{far, 1},
	}
	for _, tt := range tests {
		clip := m.Project(Vec3{0, 0, -tt.depth})
		if z := clip[2] / clip[3]; abs(z-tt.ndcZ) > 1e-4 {
			t.Errorf("depth %v: ndc z = %v, want %v", tt.depth, z, tt.ndcZ)
		}
	}
}

func TestLookAt(t *testing.T) {
	eye := Vec3{0, 0, 5}
	m := LookAt(eye, Vec3{0, 0, 0}, Vec3{0, 1, 0})

	if m[15] != 1 {
		t.Errorf("LookAt [15] should be 1, got %f", m[15])
	}

	// Eye lands on the origin, the target straight ahead on -Z.
	if p := m.Project(eye); abs(p[0])+abs(p[1])+abs(p[2]) > 1e-5 {
		t.Errorf("eye should map to origin, got %v", p)
	}
	if p := m.Project(Vec3{0, 0, 0}); abs(p[2]+5) > 1e-5 || abs(p[0]) > 1e-5 {
		t.Errorf("center should map to (0,0,-5), got %v", p)
	}
	// Up stays up.
	if p := m.Project(Vec3{0, 1, 0}); abs(p[1]-1) > 1e-5 {
		t.Errorf("up should map to +Y, got %v", p)
	}
}

func TestVec2Cross(t *testing.T) {
	x := Vec2{1, 0}
	y := Vec2{0, 1}

	if got := x.Cross(y); got != 1 {
		t.Errorf("x cross y = %v, want 1", got)
	}
	if got := y.Cross(x); got != -1 {
		t.Errorf("y cross x = %v, want -1", got)
	}
	if got := (Vec2{3, 4}).Sub(Vec2{1, 1}); got != (Vec2{2, 3}) {
		t.Errorf("Sub = %v", got)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
