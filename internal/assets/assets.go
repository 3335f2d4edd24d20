package assets

import (
	"errors"
	"fmt"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrTextureLoad is returned when an image cannot be decoded into a texture.
var ErrTextureLoad = errors.New("texture failed to load")

// TextureLoader decodes the image at path and uploads it to the GPU.
type TextureLoader func(path string) (rl.Texture2D, error)

// Manager caches textures by path so each file is decoded once, no matter how
// many pool slots reference it.
type Manager struct {
	Load        TextureLoader
	Placeholder func() rl.Texture2D

	textures    map[string]rl.Texture2D
	placeholder *rl.Texture2D
}

func NewManager() *Manager {
	return &Manager{
		Load:        DecodeTexture,
		Placeholder: GeneratePlaceholder,
		textures:    make(map[string]rl.Texture2D),
	}
}

func (m *Manager) LoadTexture(path string) (rl.Texture2D, error) {
	if texture, exists := m.textures[path]; exists {
		return texture, nil
	}

	texture, err := m.Load(path)
	if err != nil {
		return rl.Texture2D{}, err
	}
	m.textures[path] = texture
	return texture, nil
}

// PlaceholderTexture returns the shared fallback texture, generating it on first use.
func (m *Manager) PlaceholderTexture() rl.Texture2D {
	if m.placeholder == nil {
		t := m.Placeholder()
		m.placeholder = &t
	}
	return *m.placeholder
}

// Loaded returns the number of distinct decoded textures (placeholder excluded).
func (m *Manager) Loaded() int {
	return len(m.textures)
}

func (m *Manager) Unload() {
	for _, texture := range m.textures {
		rl.UnloadTexture(texture)
	}
	if m.placeholder != nil {
		rl.UnloadTexture(*m.placeholder)
		m.placeholder = nil
	}
	m.textures = make(map[string]rl.Texture2D)
}

// DecodeTexture loads an image file and uploads it flipped vertically, so that
// v = 0 addresses the bottom row of the image. Requires an open window.
func DecodeTexture(path string) (rl.Texture2D, error) {
	img := rl.LoadImage(path)
	if img == nil || img.Width <= 0 || img.Height <= 0 {
		return rl.Texture2D{}, fmt.Errorf("%w: %s", ErrTextureLoad, path)
	}
	defer rl.UnloadImage(img)

	rl.ImageFlipVertical(img)
	texture := rl.LoadTextureFromImage(img)
	if !rl.IsTextureValid(texture) {
		return rl.Texture2D{}, fmt.Errorf("%w: %s: upload failed", ErrTextureLoad, path)
	}
	rl.SetTextureFilter(texture, rl.FilterBilinear)
	return texture, nil
}

// GeneratePlaceholder builds a magenta/black checkerboard texture.
func GeneratePlaceholder() rl.Texture2D {
	img := rl.GenImageChecked(64, 64, 8, 8, rl.Magenta, rl.Black)
	defer rl.UnloadImage(img)
	log.Println("Assets: generated placeholder texture")
	return rl.LoadTextureFromImage(img)
}
