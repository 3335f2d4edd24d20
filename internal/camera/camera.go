package camera

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// OrbitCamera circles a target point. Yaw and Pitch are in degrees; with both
// at zero the camera sits on +Z looking down -Z.
type OrbitCamera struct {
	Target       rl.Vector3
	Distance     float32
	Yaw          float32
	Pitch        float32
	Fovy         float32
	Orthographic bool

	RotateSpeed float32
	ZoomSpeed   float32
	MinDistance float32
	MaxDistance float32
}

func New(distance, fovy float32) *OrbitCamera {
	return &OrbitCamera{
		Target:      rl.Vector3{},
		Distance:    distance,
		Fovy:        fovy,
		RotateSpeed: 0.3,
		ZoomSpeed:   1.0,
		MinDistance: 2.0,
		MaxDistance: 200.0,
	}
}

// Orbit applies a drag of dx, dy pixels.
func (c *OrbitCamera) Orbit(dx, dy float32) {
	c.Yaw -= dx * c.RotateSpeed
	c.Pitch += dy * c.RotateSpeed

	// Clamp pitch
	if c.Pitch > 89 {
		c.Pitch = 89
	}
	if c.Pitch < -89 {
		c.Pitch = -89
	}
}

// Zoom moves toward the target for positive wheel steps.
func (c *OrbitCamera) Zoom(wheel float32) {
	c.Distance -= wheel * c.ZoomSpeed
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

// Update reads mouse input: left-drag orbits, the wheel zooms.
func (c *OrbitCamera) Update() {
	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		delta := rl.GetMouseDelta()
		c.Orbit(delta.X, delta.Y)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		c.Zoom(wheel)
	}
}

func (c *OrbitCamera) Position() rl.Vector3 {
	yawRad := float64(c.Yaw) * math.Pi / 180
	pitchRad := float64(c.Pitch) * math.Pi / 180

	return rl.Vector3{
		X: c.Target.X + c.Distance*float32(math.Sin(yawRad)*math.Cos(pitchRad)),
		Y: c.Target.Y + c.Distance*float32(math.Sin(pitchRad)),
		Z: c.Target.Z + c.Distance*float32(math.Cos(yawRad)*math.Cos(pitchRad)),
	}
}

func (c *OrbitCamera) GetRaylibCamera() rl.Camera3D {
	projection := rl.CameraPerspective
	if c.Orthographic {
		projection = rl.CameraOrthographic
	}
	return rl.Camera3D{
		Position:   c.Position(),
		Target:     c.Target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.Fovy,
		Projection: projection,
	}
}
