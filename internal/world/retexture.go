package world

import (
	"hovergrid/internal/assets"
	"hovergrid/internal/components"
	"hovergrid/internal/engine"
)

// Retexture applies the hover policy. When current is a plane other than
// previous, it gets a texture drawn uniformly from every pool slot except the
// one it holds now. Leaving a plane, or staying on it, changes nothing.
// It returns the new texture and whether one was assigned.
func Retexture(previous, current *engine.GameObject, pool *assets.Pool, rng engine.Rand) (*assets.Texture, bool) {
	if current == nil || current == previous {
		return nil, false
	}
	tile := engine.GetComponent[*components.Tile](current)
	if tile == nil {
		return nil, false
	}

	next := pool.RandomExcluding(tile.Texture, rng)
	if next == nil {
		return nil, false
	}
	tile.SetTexture(next)
	return next, true
}
