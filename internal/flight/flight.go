// Package flight moves the camera over the terrain between frames.
package flight

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/taigrr/cubeterm/pkg/math3d"
	"github.com/taigrr/cubeterm/pkg/render"
)

// Flight advances a camera a fixed distance per frame along its heading.
// Steering and altitude changes are eased with critically damped springs.
type Flight struct {
	Camera  *render.Camera
	Terrain render.HeightMap

	Speed     float64 // Distance per frame
	Follow    bool    // Track the ground instead of holding altitude
	Clearance float64 // Height above ground when following

	yaw, yawVel, targetYaw float64
	alt, altVel            float64
	yawSpring, altSpring   harmonica.Spring
}

// New creates a flight for cam over hm, ticking fps times per second.
func New(cam *render.Camera, hm render.HeightMap, speed float64, fps int) *Flight {
	return &Flight{
		Camera:    cam,
		Terrain:   hm,
		Speed:     speed,
		Clearance: 6,
		yaw:       cam.Yaw,
		targetYaw: cam.Yaw,
		alt:       cam.Position.Y,
		// Frequency 4.0 = moderate speed, damping 1.0 = critically damped (no overshoot)
		yawSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
		altSpring: harmonica.NewSpring(harmonica.FPS(fps), 2.0, 1.0),
	}
}

// Steer turns the target heading by deg degrees.
func (f *Flight) Steer(deg float64) {
	f.targetYaw += deg
}

// Climb raises the held altitude, or the clearance when following.
func (f *Flight) Climb(dy float64) {
	if f.Follow {
		f.Clearance = math.Max(1, f.Clearance+dy)
		return
	}
	f.alt += dy
	f.Camera.Position.Y = f.alt
}

// Heading returns the horizontal direction of travel.
func (f *Flight) Heading() math3d.Vec3 {
	return math3d.RotateY(f.yaw).MulVec4(math3d.V4(0, 0, 1, 0)).Vec3()
}

// Step advances one frame.
func (f *Flight) Step() {
	f.yaw, f.yawVel = f.yawSpring.Update(f.yaw, f.yawVel, f.targetYaw)
	f.Camera.SetRotation(f.Camera.Pitch, f.yaw)
	f.Camera.Move(f.Heading().Scale(f.Speed))

	if !f.Follow {
		return
	}
	pos := f.Camera.Position
	h, ok := f.Terrain.Height(int(math.Round(pos.X)), int(math.Round(pos.Z)))
	if !ok {
		return
	}
	f.alt, f.altVel = f.altSpring.Update(f.alt, f.altVel, float64(h)+f.Clearance)
	f.Camera.Position.Y = f.alt
}
