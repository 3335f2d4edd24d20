package picking

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// View is the camera plus the viewport aspect ratio needed to turn a pointer
// position into a world-space ray.
type View struct {
	Camera rl.Camera3D
	Aspect float32
}

// PointerToNDC maps a pointer position in pixels to normalized device
// coordinates in [-1, 1], with +Y up.
func PointerToNDC(x, y, width, height float32) rl.Vector2 {
	if width <= 0 || height <= 0 {
		return rl.Vector2{}
	}
	return rl.Vector2{
		X: (x/width)*2 - 1,
		Y: -(y/height)*2 + 1,
	}
}

// RayFromNDC builds the picking ray through ndc. Perspective rays start at the
// camera; orthographic rays start on the view plane and share its direction.
func RayFromNDC(ndc rl.Vector2, view View) rl.Ray {
	cam := view.Camera
	aspect := view.Aspect
	if aspect <= 0 {
		aspect = 1
	}

	forward := rl.Vector3Normalize(rl.Vector3Subtract(cam.Target, cam.Position))
	right := rl.Vector3Normalize(rl.Vector3CrossProduct(forward, cam.Up))
	up := rl.Vector3CrossProduct(right, forward)

	if cam.Projection == rl.CameraOrthographic {
		halfH := cam.Fovy / 2
		halfW := halfH * aspect
		origin := rl.Vector3Add(cam.Position, rl.Vector3Scale(right, ndc.X*halfW))
		origin = rl.Vector3Add(origin, rl.Vector3Scale(up, ndc.Y*halfH))
		return rl.Ray{Position: origin, Direction: forward}
	}

	tanHalf := float32(math.Tan(float64(cam.Fovy*rl.Deg2rad) / 2))
	dir := rl.Vector3Add(forward, rl.Vector3Scale(right, ndc.X*tanHalf*aspect))
	dir = rl.Vector3Add(dir, rl.Vector3Scale(up, ndc.Y*tanHalf))
	return rl.Ray{Position: cam.Position, Direction: rl.Vector3Normalize(dir)}
}
