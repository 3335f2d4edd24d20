package components

import (
	"hovergrid/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// QuadCollider is an axis-aligned rectangle in the object's XY plane facing +Z.
// Only rays arriving from the +Z side hit it.
type QuadCollider struct {
	engine.BaseComponent
	Size   rl.Vector2
	Offset rl.Vector3
}

func NewQuadCollider(size rl.Vector2) *QuadCollider {
	return &QuadCollider{
		Size:   size,
		Offset: rl.Vector3{},
	}
}

func (q *QuadCollider) GetCenter() rl.Vector3 {
	g := q.GetGameObject()
	return rl.Vector3Add(g.WorldPosition(), q.Offset)
}

// GetHalfExtents returns half the world-scaled width and height.
func (q *QuadCollider) GetHalfExtents() rl.Vector2 {
	scale := q.GetGameObject().Transform.Scale
	return rl.Vector2{
		X: abs(q.Size.X*scale.X) / 2,
		Y: abs(q.Size.Y*scale.Y) / 2,
	}
}

func (q *QuadCollider) Normal() rl.Vector3 {
	return rl.Vector3{X: 0, Y: 0, Z: 1}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
