package picking

import (
	"hovergrid/internal/components"
	"hovergrid/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type RaycastHit struct {
	GameObject *engine.GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// Raycast checks every active object with a QuadCollider and returns the
// closest hit. On equal distance the earlier object wins.
func Raycast(objects []*engine.GameObject, ray rl.Ray, maxDistance float32) (RaycastHit, bool) {
	ray.Direction = rl.Vector3Normalize(ray.Direction)
	var closestHit RaycastHit
	closestHit.Distance = maxDistance
	hit := false

	for _, obj := range objects {
		if !obj.Active {
			continue
		}
		quad := engine.GetComponent[*components.QuadCollider](obj)
		if quad == nil {
			continue
		}
		if hitInfo, ok := raycastQuad(ray, quad, maxDistance); ok {
			if !hit || hitInfo.Distance < closestHit.Distance {
				closestHit = hitInfo
				closestHit.GameObject = obj
				hit = true
			}
		}
	}

	return closestHit, hit
}

func raycastQuad(ray rl.Ray, quad *components.QuadCollider, maxDistance float32) (RaycastHit, bool) {
	normal := quad.Normal()
	denom := rl.Vector3DotProduct(ray.Direction, normal)
	// parallel, or arriving from behind
	if denom >= 0 {
		return RaycastHit{}, false
	}

	center := quad.GetCenter()
	t := rl.Vector3DotProduct(rl.Vector3Subtract(center, ray.Position), normal) / denom
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(ray.Position, rl.Vector3Scale(ray.Direction, t))
	half := quad.GetHalfExtents()
	if abs(point.X-center.X) > half.X || abs(point.Y-center.Y) > half.Y {
		return RaycastHit{}, false
	}

	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
