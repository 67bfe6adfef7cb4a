package render

import (
	"math"
	"testing"

	"github.com/taigrr/cubeterm/pkg/math3d"
)

func approxVec(a, b math3d.Vec3, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps && math.Abs(a.Z-b.Z) <= eps
}

func TestNewCameraDefaults(t *testing.T) {
	cam := NewCamera(192, 108)
	if cam.Position != math3d.V3(50, 12, 50) {
		t.Errorf("position = %v", cam.Position)
	}
	if cam.FOV != 70 || cam.Near != 0.1 || cam.Far != 1000 {
		t.Errorf("lens = %v° [%v, %v]", cam.FOV, cam.Near, cam.Far)
	}
	if cam.Aspect != 108.0/192.0 {
		t.Errorf("aspect = %v, want height/width", cam.Aspect)
	}
}

func TestViewMatrixAtRest(t *testing.T) {
	cam := NewCamera(192, 108)
	view := cam.ViewMatrix()
	id := math3d.Identity()
	for i := range view {
		if math.Abs(view[i]-id[i]) > 1e-12 {
			t.Fatalf("view at rest = %v, want identity", view)
		}
	}
}

func TestViewMatrixInvertsRotation(t *testing.T) {
	angles := [][2]float64{{0, 0}, {30, 0}, {0, 45}, {-20, 135}, {89, -270}}

	cam := NewCamera(192, 108)
	for _, a := range angles {
		cam.SetRotation(a[0], a[1])
		prod := cam.ViewMatrix().Mul(cam.Rotation())
		id := math3d.Identity()
		for i := range prod {
			if math.Abs(prod[i]-id[i]) > 1e-12 {
				t.Errorf("pitch %v yaw %v: view·rotation = %v", a[0], a[1], prod)
				break
			}
		}
	}
}

func TestCameraForward(t *testing.T) {
	tests := []struct {
		name       string
		pitch, yaw float64
		want       math3d.Vec3
	}{
		{"rest", 0, 0, math3d.V3(0, 0, 1)},
		{"yaw 90", 0, 90, math3d.V3(-1, 0, 0)},
		{"yaw 180", 0, 180, math3d.V3(0, 0, -1)},
		{"pitch 90", 90, 0, math3d.V3(0, -1, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cam := NewCamera(192, 108)
			cam.SetRotation(tc.pitch, tc.yaw)

			fwd := cam.Forward()
			if !approxVec(fwd, tc.want, 1e-9) {
				t.Errorf("Forward() = %v, want %v", fwd, tc.want)
			}

			// Whatever the pose, the view maps forward onto +Z.
			inView := cam.ViewMatrix().MulVec4(math3d.V4FromV3(fwd, 0)).Vec3()
			if !approxVec(inView, math3d.V3(0, 0, 1), 1e-9) {
				t.Errorf("view·forward = %v, want +Z", inView)
			}
		})
	}
}

func TestCameraRotateInvalidatesView(t *testing.T) {
	cam := NewCamera(192, 108)
	before := cam.ViewMatrix()
	cam.Rotate(0, 10)
	if cam.ViewMatrix() == before {
		t.Error("view matrix unchanged after Rotate")
	}
	if cam.Yaw != 10 {
		t.Errorf("yaw = %v, want 10", cam.Yaw)
	}
}

func TestCameraSetProjection(t *testing.T) {
	cam := NewCamera(192, 108)
	_ = cam.ProjectionMatrix()

	cam.SetProjection(90, 1, 1, 11)
	proj := cam.ProjectionMatrix()
	if math.Abs(proj[5]-1) > 1e-12 {
		t.Errorf("f = %v, want 1 for a 90° field of view", proj[5])
	}
	if math.Abs(proj[10]-1.1) > 1e-12 {
		t.Errorf("q = %v, want 1.1", proj[10])
	}
}

func TestCameraMove(t *testing.T) {
	cam := NewCamera(192, 108)
	for range 10 {
		cam.Move(math3d.V3(0, 0, 0.3))
	}
	if !approxVec(cam.Position, math3d.V3(50, 12, 53), 1e-9) {
		t.Errorf("position after 10 steps = %v", cam.Position)
	}
}

func TestCameraPanicsOnNonRigidRotation(t *testing.T) {
	cam := NewCamera(192, 108)
	cam.SetRotation(math.NaN(), 0)

	defer func() {
		if recover() == nil {
			t.Error("ViewMatrix with a NaN pitch did not panic")
		}
	}()
	cam.ViewMatrix()
}
