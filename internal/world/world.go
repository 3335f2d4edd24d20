package world

import (
	"errors"
	"fmt"
	"log"

	"hovergrid/internal/assets"
	"hovergrid/internal/components"
	"hovergrid/internal/engine"
	"hovergrid/internal/grid"
	"hovergrid/internal/picking"
)

var ErrAlreadyBuilt = errors.New("world already built")

type State int

const (
	StateIdle State = iota
	StateRunning
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// RetextureEvent is fired after a hovered plane receives a new texture.
type RetextureEvent struct {
	Plane *engine.GameObject
	From  *assets.Texture
	To    *assets.Texture
}

// World owns the scene graph, the texture pool and the hover state. All of it
// is mutated only from Step.
type World struct {
	Scene   *engine.Scene
	Pool    *assets.Pool
	Planes  []*engine.GameObject
	Picker  *picking.Picker
	Pointer Pointer

	OnRetexture engine.EventWithArg[RetextureEvent]

	rng        engine.Rand
	hovered    *engine.GameObject
	state      State
	retextures int
}

func New(pool *assets.Pool, rng engine.Rand) *World {
	return &World{
		Scene:  engine.NewScene("Main"),
		Pool:   pool,
		Picker: picking.NewPicker(),
		rng:    rng,
	}
}

// Build lays out the grid. It may only run once, before Start.
func (w *World) Build(cfg grid.Config) error {
	if w.state != StateIdle || w.Planes != nil {
		return ErrAlreadyBuilt
	}
	planes, err := grid.Build(cfg, w.Pool, w.rng, w.Scene)
	if err != nil {
		return fmt.Errorf("build grid: %w", err)
	}
	w.Planes = planes
	log.Printf("World: %d of %d cells inside radius", len(planes), cfg.Size*cfg.Size)
	return nil
}

// Start moves the world from Idle to Running. Later calls do nothing.
func (w *World) Start() {
	if w.state == StateRunning {
		return
	}
	w.Scene.Start()
	w.state = StateRunning
}

func (w *World) State() State {
	return w.state
}

// Step runs one frame of logic: pick the plane under the pointer, then
// retexture it if the hover changed. Drawing is left to the caller.
func (w *World) Step(deltaTime float32, view picking.View) {
	if w.state != StateRunning {
		return
	}
	w.Scene.Update(deltaTime)

	previous := w.hovered
	current := w.Picker.Pick(w.Pointer.NDC(), view, w.Scene)
	w.hovered = current
	if current == nil {
		return
	}
	w.Pointer.visit(current)

	var from *assets.Texture
	if tile := engine.GetComponent[*components.Tile](current); tile != nil {
		from = tile.Texture
	}
	if to, ok := Retexture(previous, current, w.Pool, w.rng); ok {
		w.retextures++
		w.OnRetexture.Invoke(RetextureEvent{Plane: current, From: from, To: to})
	}
}

// Hovered returns the plane under the pointer as of the last Step, or nil.
func (w *World) Hovered() *engine.GameObject {
	return w.hovered
}

func (w *World) Retextures() int {
	return w.retextures
}
