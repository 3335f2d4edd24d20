package picking

import (
	"hovergrid/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const DefaultMaxDistance = 1000.0

// Picker finds the object under the pointer.
type Picker struct {
	MaxDistance float32
}

func NewPicker() *Picker {
	return &Picker{MaxDistance: DefaultMaxDistance}
}

// Pick returns the nearest object hit by the ray through ndc, or nil.
func (p *Picker) Pick(ndc rl.Vector2, view View, scene *engine.Scene) *engine.GameObject {
	if scene == nil || scene.Len() == 0 {
		return nil
	}
	hit, ok := Raycast(scene.GameObjects, RayFromNDC(ndc, view), p.MaxDistance)
	if !ok {
		return nil
	}
	return hit.GameObject
}
