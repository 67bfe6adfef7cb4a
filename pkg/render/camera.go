package render

import (
	"fmt"

	"github.com/taigrr/cubeterm/pkg/math3d"
)

// rigidEps bounds the orthonormality error tolerated in the camera rotation.
const rigidEps = 1e-9

// Camera holds the viewer's position, orientation and lens. The view matrix
// contains rotation only: the pipeline subtracts Position from every cube
// itself before applying it.
type Camera struct {
	// Position in world space
	Position math3d.Vec3

	// Orientation in degrees
	Pitch float64 // Rotation around X axis (look up/down)
	Yaw   float64 // Rotation around Y axis (look left/right)

	// Projection parameters
	FOV    float64 // Field of view in degrees
	Aspect float64 // Height / Width
	Near   float64 // Near clipping plane
	Far    float64 // Far clipping plane

	// Cached matrices (computed on demand)
	rotation   math3d.Mat4
	viewMatrix math3d.Mat4
	projMatrix math3d.Mat4
	viewDirty  bool
	projDirty  bool
}

// NewCamera creates a camera for a width×height viewport with a 70° field
// of view and clip planes at 0.1 and 1000.
func NewCamera(width, height int) *Camera {
	return &Camera{
		Position:  math3d.V3(50, 12, 50),
		FOV:       70,
		Aspect:    float64(height) / float64(width),
		Near:      0.1,
		Far:       1000,
		viewDirty: true,
		projDirty: true,
	}
}

// SetPosition sets the camera position.
func (c *Camera) SetPosition(pos math3d.Vec3) {
	c.Position = pos
}

// Move offsets the camera position by delta.
func (c *Camera) Move(delta math3d.Vec3) {
	c.Position = c.Position.Add(delta)
}

// SetRotation sets pitch and yaw in degrees.
func (c *Camera) SetRotation(pitch, yaw float64) {
	c.Pitch = pitch
	c.Yaw = yaw
	c.viewDirty = true
}

// Rotate adds to pitch and yaw (degrees).
func (c *Camera) Rotate(deltaPitch, deltaYaw float64) {
	c.SetRotation(c.Pitch+deltaPitch, c.Yaw+deltaYaw)
}

// SetProjection replaces the lens parameters.
func (c *Camera) SetProjection(fov, aspect, near, far float64) {
	c.FOV = fov
	c.Aspect = aspect
	c.Near = near
	c.Far = far
	c.projDirty = true
}

// Rotation returns RotateY(yaw)·RotateX(pitch): pitch is applied first.
func (c *Camera) Rotation() math3d.Mat4 {
	c.update()
	return c.rotation
}

// ViewMatrix returns the inverse of the camera rotation.
//
// It panics if the rotation is not rigid, which only happens when an angle
// is NaN or infinite.
func (c *Camera) ViewMatrix() math3d.Mat4 {
	c.update()
	return c.viewMatrix
}

// ProjectionMatrix returns the projection matrix.
func (c *Camera) ProjectionMatrix() math3d.Mat4 {
	if c.projDirty {
		c.projMatrix = math3d.Projection(c.FOV, c.Aspect, c.Near, c.Far)
		c.projDirty = false
	}
	return c.projMatrix
}

// Forward returns the world-space direction the camera looks along.
func (c *Camera) Forward() math3d.Vec3 {
	return c.Rotation().MulVec4(math3d.V4(0, 0, 1, 0)).Vec3()
}

// Right returns the world-space direction of the screen's +X axis.
func (c *Camera) Right() math3d.Vec3 {
	return c.Rotation().MulVec4(math3d.V4(1, 0, 0, 0)).Vec3()
}

func (c *Camera) update() {
	if !c.viewDirty {
		return
	}
	rot := math3d.RotateY(c.Yaw).Mul(math3d.RotateX(c.Pitch))
	if !rot.IsRigid(rigidEps) {
		panic(fmt.Sprintf("render: camera rotation (pitch %v, yaw %v) is not rigid", c.Pitch, c.Yaw))
	}
	c.rotation = rot
	c.viewMatrix = rot.QuickInverse()
	c.viewDirty = false
}
