// Package grid lays out the disk of mosaic tiles.
//
// Every cell (i, j) of an N×N lattice samples the (i, j) sub-tile of whichever
// texture it draws, so neighbouring planes with the same texture continue the
// same image.
package grid

import (
	"errors"
	"fmt"
	"math"

	"hovergrid/internal/assets"
	"hovergrid/internal/components"
	"hovergrid/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	ErrInvalidGridSize   = errors.New("grid size must be positive")
	ErrInvalidRandomness = errors.New("randomness factor must be non-negative")
)

type Config struct {
	Size             int
	RandomnessFactor float64
}

func (c Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidGridSize, c.Size)
	}
	if c.RandomnessFactor < 0 || math.IsNaN(c.RandomnessFactor) {
		return fmt.Errorf("%w: %v", ErrInvalidRandomness, c.RandomnessFactor)
	}
	return nil
}

// CellPosition returns the world position of cell (i, j); the lattice is
// centered on the origin.
func CellPosition(i, j, size int) (x, y float64) {
	offset := float64(size)/2 - 0.5
	return float64(i) - offset, float64(j) - offset
}

// RemapUV maps each corner (u, v) to ((u+i)/size, (v+j)/size).
func RemapUV(corners [4]rl.Vector2, i, j, size int) [4]rl.Vector2 {
	var out [4]rl.Vector2
	n := float32(size)
	for k, c := range corners {
		out[k] = rl.Vector2{
			X: (c.X + float32(i)) / n,
			Y: (c.Y + float32(j)) / n,
		}
	}
	return out
}

// Radius draws the inclusion radius for one cell. A draw is consumed even when
// the factor is zero.
func Radius(size int, factor float64, rng engine.Rand) float64 {
	return float64(size)/2 + (rng.Float64()-0.5)*factor
}

// Build creates the tiles and adds those within the radius to scene. Cells
// outside the radius are discarded. Cells are visited with i as the outer loop.
func Build(cfg Config, pool *assets.Pool, rng engine.Rand, scene *engine.Scene) ([]*engine.GameObject, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if pool == nil || pool.Len() == 0 {
		return nil, assets.ErrEmptyPool
	}

	planes := make([]*engine.GameObject, 0, cfg.Size*cfg.Size)
	for i := range cfg.Size {
		for j := range cfg.Size {
			texture := pool.Random(rng)

			plane := engine.NewGameObject(fmt.Sprintf("Tile_%d_%d", i, j))
			plane.AddComponent(components.NewTile(i, j, RemapUV(components.UnitQuadUV, i, j, cfg.Size), texture))
			plane.AddComponent(components.NewQuadCollider(rl.Vector2{X: 1, Y: 1}))

			x, y := CellPosition(i, j, cfg.Size)
			plane.Transform.Position = rl.Vector3{X: float32(x), Y: float32(y), Z: 0}

			distanceFromCenter := math.Sqrt(x*x + y*y)
			radius := Radius(cfg.Size, cfg.RandomnessFactor, rng)

			if distanceFromCenter <= radius {
				scene.AddGameObject(plane)
				planes = append(planes, plane)
			}
		}
	}

	return planes, nil
}
