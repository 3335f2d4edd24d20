package world

import (
	"hovergrid/internal/components"
	"hovergrid/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Renderer struct {
	ClearColor     rl.Color
	Highlight      bool
	HighlightColor rl.Color
}

func NewRenderer(clear rl.Color) *Renderer {
	return &Renderer{
		ClearColor:     clear,
		HighlightColor: rl.Orange,
	}
}

// Draw clears the frame and draws every tile in scene order. Must be called
// between BeginDrawing and EndDrawing.
func (r *Renderer) Draw(camera rl.Camera3D, w *World) {
	rl.ClearBackground(r.ClearColor)

	rl.BeginMode3D(camera)
	rl.BeginBlendMode(rl.BlendAlpha)
	r.drawScene(w.Scene.GameObjects)
	rl.EndBlendMode()

	if r.Highlight {
		if hovered := w.Hovered(); hovered != nil {
			if tile := engine.GetComponent[*components.Tile](hovered); tile != nil {
				tile.DrawOutline(r.HighlightColor)
			}
		}
	}
	rl.EndMode3D()
}

func (r *Renderer) drawScene(gameObjects []*engine.GameObject) {
	for _, g := range gameObjects {
		if tile := engine.GetComponent[*components.Tile](g); tile != nil {
			tile.Draw()
		}
	}
}
