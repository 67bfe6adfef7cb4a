package math3d

import (
	"math"
	"testing"
)

func approxMat(a, b Mat4, eps float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

func TestRotationLayout(t *testing.T) {
	rx := RotateX(90)
	if math.Abs(rx[5]) > 1e-12 || math.Abs(rx[6]-1) > 1e-12 || math.Abs(rx[9]+1) > 1e-12 {
		t.Errorf("RotateX(90) = %v, want cos at 5/10, sin at 6, -sin at 9", rx)
	}

	ry := RotateY(90)
	if math.Abs(ry[2]-1) > 1e-12 || math.Abs(ry[8]+1) > 1e-12 {
		t.Errorf("RotateY(90) = %v, want sin at 2, -sin at 8", ry)
	}
}

func TestMulAppliesRightOperandFirst(t *testing.T) {
	// Rotate +Y by 90 about X: lands on +Z. Then 90 about Y: lands on -X.
	m := RotateY(90).Mul(RotateX(90))
	got := m.MulVec4(V4(0, 1, 0, 0))

	if math.Abs(got.X+1) > 1e-9 || math.Abs(got.Y) > 1e-9 || math.Abs(got.Z) > 1e-9 {
		t.Errorf("RotateY(90)*RotateX(90)*(0,1,0) = %v, want (-1, 0, 0)", got)
	}
}

func TestQuickInverse(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
	}{
		{"identity", Identity()},
		{"rotation x", RotateX(33)},
		{"rotation yx", RotateY(-71).Mul(RotateX(12))},
		{"rigid with translation", Translate(V3(4, -2, 9)).Mul(RotateY(45))},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			inv := tc.m.QuickInverse()
			if got := inv.Mul(tc.m); !approxMat(got, Identity(), 1e-9) {
				t.Errorf("inv*m = %v, want identity", got)
			}
			if got := tc.m.Mul(inv); !approxMat(got, Identity(), 1e-9) {
				t.Errorf("m*inv = %v, want identity", got)
			}
		})
	}
}

func TestQuickInverseOfRotationIsTranspose(t *testing.T) {
	m := RotateY(20).Mul(RotateX(-40))
	inv := m.QuickInverse()
	tr := m.Transpose()
	for _, i := range []int{0, 1, 2, 4, 5, 6, 8, 9, 10} {
		if math.Abs(inv[i]-tr[i]) > 1e-12 {
			t.Fatalf("inv[%d] = %v, want %v", i, inv[i], tr[i])
		}
	}
	if inv.Translation() != Zero3() {
		t.Errorf("translation = %v, want zero", inv.Translation())
	}
}

func TestIsRigid(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		want bool
	}{
		{"identity", Identity(), true},
		{"rotation", RotateY(10).Mul(RotateX(80)), true},
		{"translation", Translate(V3(1, 2, 3)), true},
		{"scaled", Mat4{2, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}, false},
		{"sheared", Mat4{1, 0, 0, 0, 0.5, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}, false},
		{"projection", Projection(70, 0.5625, 0.1, 1000), false},
		{"nan angle", RotateX(math.NaN()), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.m.IsRigid(1e-9); got != tc.want {
				t.Errorf("IsRigid() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestProjection(t *testing.T) {
	const near, far = 0.1, 1000.0
	aspect := 108.0 / 192.0
	p := Projection(70, aspect, near, far)
	f := 1 / math.Tan(Radians(35))

	v := p.MulVec4(V4(2, 3, 5, 1))
	want := V4(aspect*f*2, f*3, 5*far/(far-near)-far*near/(far-near), 5)

	if math.Abs(v.X-want.X) > 1e-9 || math.Abs(v.Y-want.Y) > 1e-9 ||
		math.Abs(v.Z-want.Z) > 1e-9 || math.Abs(v.W-want.W) > 1e-9 {
		t.Errorf("projection = %v, want %v", v, want)
	}

	// A point on the near plane lands at depth 0, far plane at depth 1.
	nearPt := p.MulVec4(V4(0, 0, near, 1))
	if math.Abs(nearPt.Z/nearPt.W) > 1e-9 {
		t.Errorf("near plane depth = %v, want 0", nearPt.Z/nearPt.W)
	}
	farPt := p.MulVec4(V4(0, 0, far, 1))
	if math.Abs(farPt.Z/farPt.W-1) > 1e-9 {
		t.Errorf("far plane depth = %v, want 1", farPt.Z/farPt.W)
	}
}

func TestVec4Finite(t *testing.T) {
	if !V4(1, 2, 3, 4).Finite() {
		t.Error("finite vector reported non-finite")
	}
	if V4(math.Inf(1), 0, 0, 1).Finite() {
		t.Error("Inf reported finite")
	}
	if V4(0, math.NaN(), 0, 1).Finite() {
		t.Error("NaN reported finite")
	}
}
