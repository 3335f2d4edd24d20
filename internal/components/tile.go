package components

import (
	"hovergrid/internal/assets"
	"hovergrid/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// UnitQuad lists the corners of a unit square centered on the origin, in
// the order top-left, top-right, bottom-left, bottom-right. UnitQuadUV holds
// the matching texture coordinates, with v = 1 at the top edge.
var (
	UnitQuad = [4]rl.Vector2{
		{X: -0.5, Y: 0.5},
		{X: 0.5, Y: 0.5},
		{X: -0.5, Y: -0.5},
		{X: 0.5, Y: -0.5},
	}
	UnitQuadUV = [4]rl.Vector2{
		{X: 0, Y: 1},
		{X: 1, Y: 1},
		{X: 0, Y: 0},
		{X: 1, Y: 0},
	}
)

// counter-clockwise as seen from +Z
var drawOrder = [4]int{2, 3, 1, 0}

// Tile renders one grid cell: a textured unit quad sampling a sub-rectangle
// of its texture. Only Texture changes after construction.
type Tile struct {
	engine.BaseComponent
	I, J    int
	UV      [4]rl.Vector2
	Texture *assets.Texture
	Tint    rl.Color
}

func NewTile(i, j int, uv [4]rl.Vector2, texture *assets.Texture) *Tile {
	return &Tile{
		I:       i,
		J:       j,
		UV:      uv,
		Texture: texture,
		Tint:    rl.White,
	}
}

// SetTexture swaps the texture reference. A nil texture is ignored so the
// tile always has one.
func (t *Tile) SetTexture(texture *assets.Texture) {
	if texture == nil {
		return
	}
	t.Texture = texture
}

// Draw emits the quad through rlgl. Must be called between BeginMode3D and EndMode3D.
func (t *Tile) Draw() {
	g := t.GetGameObject()
	if g == nil || !g.Active || t.Texture == nil {
		return
	}

	pos := g.WorldPosition()
	scale := g.Transform.Scale

	rl.SetTexture(t.Texture.Handle.ID)
	rl.Begin(rl.Quads)
	rl.Color4ub(t.Tint.R, t.Tint.G, t.Tint.B, t.Tint.A)
	rl.Normal3f(0, 0, 1)
	for _, k := range drawOrder {
		corner := UnitQuad[k]
		rl.TexCoord2f(t.UV[k].X, t.UV[k].Y)
		rl.Vertex3f(pos.X+corner.X*scale.X, pos.Y+corner.Y*scale.Y, pos.Z)
	}
	rl.End()
	rl.SetTexture(0)
}

// DrawOutline draws the quad border, used to highlight the hovered tile.
func (t *Tile) DrawOutline(color rl.Color) {
	g := t.GetGameObject()
	if g == nil {
		return
	}
	pos := g.WorldPosition()
	scale := g.Transform.Scale

	var corners [4]rl.Vector3
	for n, k := range drawOrder {
		c := UnitQuad[k]
		corners[n] = rl.Vector3{X: pos.X + c.X*scale.X, Y: pos.Y + c.Y*scale.Y, Z: pos.Z + 0.01}
	}
	for n := range corners {
		rl.DrawLine3D(corners[n], corners[(n+1)%len(corners)], color)
	}
}
