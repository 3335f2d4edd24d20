package world

import (
	"hovergrid/internal/engine"
	"hovergrid/internal/picking"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Pointer holds the latest pointer position in normalized device coordinates
// and the set of planes hovered since the pointer last moved.
type Pointer struct {
	ndc     rl.Vector2
	visited map[uint64]struct{}
}

// Move records a pointer move in pixels and clears the visited set.
func (p *Pointer) Move(x, y, width, height float32) {
	p.SetNDC(picking.PointerToNDC(x, y, width, height))
}

func (p *Pointer) SetNDC(ndc rl.Vector2) {
	p.ndc = ndc
	clear(p.visited)
}

func (p *Pointer) NDC() rl.Vector2 {
	return p.ndc
}

func (p *Pointer) visit(g *engine.GameObject) {
	if p.visited == nil {
		p.visited = make(map[uint64]struct{})
	}
	p.visited[g.UID] = struct{}{}
}

// Visited returns how many distinct planes were hovered since the last move.
func (p *Pointer) Visited() int {
	return len(p.visited)
}
