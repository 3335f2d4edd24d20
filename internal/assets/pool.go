package assets

import (
	"errors"
	"fmt"
	"log"

	"hovergrid/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrEmptyPool is returned when a pool is requested with no paths.
var ErrEmptyPool = errors.New("texture pool is empty")

// Texture is one pool slot. Two slots may share the same Handle when they were
// loaded from the same file; they are still distinct by pointer identity.
type Texture struct {
	Slot        int
	Path        string
	Handle      rl.Texture2D
	Placeholder bool
}

type PoolOptions struct {
	// PlaceholderOnError fills a slot whose image fails to decode with a
	// generated checkerboard instead of failing startup.
	PlaceholderOnError bool
}

// Pool is the ordered, fixed set of textures. Callers index it by slot.
type Pool struct {
	textures []*Texture
}

// LoadPool resolves every path through the manager, keeping input order.
func LoadPool(paths []string, m *Manager, opts PoolOptions) (*Pool, error) {
	if len(paths) == 0 {
		return nil, ErrEmptyPool
	}

	p := &Pool{textures: make([]*Texture, 0, len(paths))}
	for slot, path := range paths {
		handle, err := m.LoadTexture(path)
		placeholder := false
		if err != nil {
			if !opts.PlaceholderOnError {
				return nil, fmt.Errorf("slot %d: %w", slot, err)
			}
			log.Printf("Assets: slot %d (%s) failed, using placeholder: %v", slot, path, err)
			handle = m.PlaceholderTexture()
			placeholder = true
		}
		p.textures = append(p.textures, &Texture{
			Slot:        slot,
			Path:        path,
			Handle:      handle,
			Placeholder: placeholder,
		})
	}

	log.Printf("Assets: texture pool ready (%d slots, %d images)", len(p.textures), m.Loaded())
	return p, nil
}

// NewPool wraps already-loaded textures, assigning slots in order.
func NewPool(textures ...*Texture) *Pool {
	p := &Pool{textures: textures}
	for i, t := range textures {
		t.Slot = i
	}
	return p
}

func (p *Pool) Len() int {
	return len(p.textures)
}

func (p *Pool) At(slot int) *Texture {
	return p.textures[slot]
}

// Textures returns the slots in order. The slice must not be modified.
func (p *Pool) Textures() []*Texture {
	return p.textures
}

// Random picks a slot uniformly.
func (p *Pool) Random(rng engine.Rand) *Texture {
	return p.textures[rng.IntN(len(p.textures))]
}

// RandomExcluding picks uniformly among every slot except current. It returns
// nil when no other slot exists.
func (p *Pool) RandomExcluding(current *Texture, rng engine.Rand) *Texture {
	candidates := make([]*Texture, 0, len(p.textures))
	for _, t := range p.textures {
		if t != current {
			candidates = append(candidates, t)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	return candidates[rng.IntN(len(candidates))]
}
