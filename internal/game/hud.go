package game

import (
	"fmt"

	"hovergrid/internal/components"
	"hovergrid/internal/engine"
	"hovergrid/internal/world"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	colorPanel  = rl.NewColor(18, 18, 24, 230)
	colorText   = rl.NewColor(200, 200, 208, 255)
	colorAccent = rl.NewColor(108, 99, 255, 255)
)

const (
	hudX      = 10
	hudY      = 10
	hudWidth  = 260
	hudHeight = 196
	lineH     = 22
)

// HUD is the overlay panel toggled with F1.
type HUD struct {
	Visible   bool
	Highlight bool

	lastRetexture string
}

func NewHUD() *HUD {
	return &HUD{Visible: true}
}

// Init applies the raygui theme. Requires an open window.
func (h *HUD) Init() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorPanel))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorText))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

func (h *HUD) Bounds() rl.Rectangle {
	return rl.Rectangle{X: hudX, Y: hudY, Width: hudWidth, Height: hudHeight}
}

func (h *HUD) Contains(point rl.Vector2) bool {
	return rl.CheckCollisionPointRec(point, h.Bounds())
}

// RecordRetexture is registered as a World.OnRetexture listener.
func (h *HUD) RecordRetexture(e world.RetextureEvent) {
	h.lastRetexture = fmt.Sprintf("%s: slot %d -> %d", e.Plane.Name, e.From.Slot, e.To.Slot)
}

func (h *HUD) Draw(w *world.World, updateMs, drawMs float64) {
	gui.Panel(h.Bounds(), "hovergrid")

	x := float32(hudX + 10)
	y := float32(hudY + 30)
	line := func(text string) {
		gui.Label(rl.Rectangle{X: x, Y: y, Width: hudWidth - 20, Height: lineH}, text)
		y += lineH
	}

	line(fmt.Sprintf("FPS %d  update %.2f ms  draw %.2f ms", rl.GetFPS(), updateMs, drawMs))
	line(fmt.Sprintf("Planes: %d  Slots: %d", w.Scene.Len(), w.Pool.Len()))
	line("Hovered: " + describe(w.Hovered()))
	line(fmt.Sprintf("Retextures: %d  Since move: %d", w.Retextures(), w.Pointer.Visited()))
	if h.lastRetexture != "" {
		line(h.lastRetexture)
	}

	checkY := float32(hudY + hudHeight - 40)
	h.Highlight = gui.CheckBox(rl.Rectangle{X: x, Y: checkY, Width: 16, Height: 16}, "Outline hovered", h.Highlight)
	gui.Label(rl.Rectangle{X: x, Y: checkY + 18, Width: hudWidth - 20, Height: lineH}, "Drag to orbit, wheel to zoom, F1 hides")
}

func describe(g *engine.GameObject) string {
	if g == nil {
		return "none"
	}
	if tile := engine.GetComponent[*components.Tile](g); tile != nil {
		return fmt.Sprintf("(%d, %d) slot %d", tile.I, tile.J, tile.Texture.Slot)
	}
	return g.Name
}
