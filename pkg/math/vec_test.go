package math

import (
	"image/color"
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

func TestVec3Length(t *testing.T) {
	v := Vec3{2, 3, 6}
	if got := v.Length2(); got != 49 {
		t.Errorf("Vec3.Length2() = %v, want 49", got)
	}
	if got := v.Length(); got != 7 {
		t.Errorf("Vec3.Length() = %v, want 7", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{3, 4, 12}.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}

	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("zero vector normalized to %v, want zero", got)
	}
}

func TestVec3Distance(t *testing.T) {
	a := Vec3{1, 1, 1}
	b := Vec3{1, 4, 5}
	if got := a.Distance(b); got != 5 {
		t.Errorf("Vec3.Distance() = %v, want 5", got)
	}
}

func TestRGBLerp(t *testing.T) {
	a := RGB{0, 0.5, 1}
	b := RGB{1, 0.5, 0}

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %v, want %v", got, b)
	}
	if got := a.Lerp(b, 0.5); got != (RGB{0.5, 0.5, 0.5}) {
		t.Errorf("Lerp(0.5) = %v, want {0.5 0.5 0.5}", got)
	}
}

func TestRGBClamp(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want color.RGBA
	}{
		{"in range", RGB{0, 1, 0.5}, color.RGBA{0, 255, 127, 255}},
		{"over", RGB{2, 1.5, 10}, color.RGBA{255, 255, 255, 255}},
		{"under", RGB{-1, -0.1, 0}, color.RGBA{0, 0, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.RGBA8(); got != tt.want {
				t.Errorf("RGBA8() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRGBPacked(t *testing.T) {
	got := RGB{1, 0, 1}.Packed()
	if got != 0xffff00ff {
		t.Errorf("Packed() = %#x, want 0xffff00ff", got)
	}
}
