package grid

import (
	"errors"
	"math"
	"testing"

	"hovergrid/internal/assets"
	"hovergrid/internal/components"
	"hovergrid/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/go-cmp/cmp"
)

// scriptedRand replays fixed sequences and counts draws.
type scriptedRand struct {
	ints      []int
	floats    []float64
	intCalls  int
	floatCall int
}

func (r *scriptedRand) IntN(n int) int {
	v := 0
	if len(r.ints) > 0 {
		v = r.ints[r.intCalls%len(r.ints)] % n
	}
	r.intCalls++
	return v
}

func (r *scriptedRand) Float64() float64 {
	v := 0.5
	if len(r.floats) > 0 {
		v = r.floats[r.floatCall%len(r.floats)]
	}
	r.floatCall++
	return v
}

func testPool(n int) *assets.Pool {
	textures := make([]*assets.Texture, n)
	for i := range textures {
		textures[i] = &assets.Texture{Handle: rl.Texture2D{ID: uint32(i + 1)}}
	}
	return assets.NewPool(textures...)
}

func TestBuildMembershipNineteen(t *testing.T) {
	for _, seed := range []uint64{1, 2, 99} {
		scene := engine.NewScene("Grid")
		planes, err := Build(Config{Size: 19}, testPool(6), engine.NewRand(seed), scene)
		if err != nil {
			t.Fatalf("Build failed: %v", err)
		}

		if len(planes) != 293 {
			t.Errorf("Seed %d: expected 293 planes, got %d", seed, len(planes))
		}
		if scene.Len() != len(planes) {
			t.Errorf("Seed %d: scene has %d objects, Build returned %d", seed, scene.Len(), len(planes))
		}
	}
}

func TestBuildThreeByThreeIncludesAll(t *testing.T) {
	scene := engine.NewScene("Grid")
	planes, err := Build(Config{Size: 3}, testPool(6), engine.NewRand(1), scene)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if len(planes) != 9 {
		t.Errorf("Expected all 9 cells, got %d", len(planes))
	}
	if scene.FindByName("Tile_1_1") == nil || scene.FindByName("Tile_0_0") == nil {
		t.Error("Expected center and corner cells to be included")
	}
}

func TestBuildFiveDropsCorners(t *testing.T) {
	scene := engine.NewScene("Grid")
	planes, err := Build(Config{Size: 5}, testPool(2), engine.NewRand(1), scene)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if len(planes) != 21 {
		t.Errorf("Expected 21 planes, got %d", len(planes))
	}
	for _, name := range []string{"Tile_0_0", "Tile_0_4", "Tile_4_0", "Tile_4_4"} {
		if scene.FindByName(name) != nil {
			t.Errorf("Corner %s should be outside the radius", name)
		}
	}
	if scene.FindByName("Tile_0_1") == nil {
		t.Error("Tile_0_1 at distance sqrt(5) should be inside radius 2.5")
	}
}

func TestBuildRemapsUVs(t *testing.T) {
	const size = 7
	scene := engine.NewScene("Grid")
	planes, err := Build(Config{Size: size}, testPool(3), engine.NewRand(3), scene)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	for _, plane := range planes {
		tile := engine.GetComponent[*components.Tile](plane)
		if tile == nil {
			t.Fatalf("%s has no Tile", plane.Name)
		}
		var want [4]rl.Vector2
		for k, c := range components.UnitQuadUV {
			want[k] = rl.Vector2{
				X: (c.X + float32(tile.I)) / size,
				Y: (c.Y + float32(tile.J)) / size,
			}
		}
		if diff := cmp.Diff(want, tile.UV); diff != "" {
			t.Errorf("%s UV mismatch (-want +got):\n%s", plane.Name, diff)
		}
	}
}

func TestRemapUVCorners(t *testing.T) {
	got := RemapUV(components.UnitQuadUV, 2, 0, 4)
	want := [4]rl.Vector2{
		{X: 0.5, Y: 0.25},
		{X: 0.75, Y: 0.25},
		{X: 0.5, Y: 0},
		{X: 0.75, Y: 0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RemapUV mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildPositionsPlanes(t *testing.T) {
	scene := engine.NewScene("Grid")
	if _, err := Build(Config{Size: 19}, testPool(1), engine.NewRand(1), scene); err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	cases := map[string]rl.Vector3{
		"Tile_9_9":  {X: 0, Y: 0, Z: 0},
		"Tile_0_9":  {X: -9, Y: 0, Z: 0},
		"Tile_12_3": {X: 3, Y: -6, Z: 0},
	}
	for name, want := range cases {
		plane := scene.FindByName(name)
		if plane == nil {
			t.Errorf("%s missing", name)
			continue
		}
		if plane.Transform.Position != want {
			t.Errorf("%s: expected position %+v, got %+v", name, want, plane.Transform.Position)
		}
	}
}

func TestCellPositionEvenSize(t *testing.T) {
	x, y := CellPosition(0, 3, 4)
	if x != -1.5 || y != 1.5 {
		t.Errorf("Expected (-1.5, 1.5), got (%v, %v)", x, y)
	}
}

func TestBuildTextureSequence(t *testing.T) {
	rng := &scriptedRand{ints: []int{0, 1, 2, 3}}
	pool := testPool(4)
	scene := engine.NewScene("Grid")

	planes, err := Build(Config{Size: 2}, pool, rng, scene)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	var got []int
	for _, plane := range planes {
		got = append(got, engine.GetComponent[*components.Tile](plane).Texture.Slot)
	}
	if diff := cmp.Diff([]int{0, 1, 2, 3}, got); diff != "" {
		t.Errorf("Texture slots mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildDrawsRadiusPerCell(t *testing.T) {
	rng := &scriptedRand{}
	scene := engine.NewScene("Grid")

	if _, err := Build(Config{Size: 3}, testPool(2), rng, scene); err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if rng.intCalls != 9 || rng.floatCall != 9 {
		t.Errorf("Expected 9 texture and 9 radius draws, got %d and %d", rng.intCalls, rng.floatCall)
	}
}

func TestBuildJitterExcludesCell(t *testing.T) {
	// Size 1, factor 2: radius = 0.5 + (r - 0.5) * 2, negative when r = 0.
	scene := engine.NewScene("Grid")
	planes, err := Build(Config{Size: 1, RandomnessFactor: 2}, testPool(1), &scriptedRand{floats: []float64{0}}, scene)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(planes) != 0 {
		t.Errorf("Expected the only cell to be excluded, got %d planes", len(planes))
	}

	scene = engine.NewScene("Grid")
	planes, _ = Build(Config{Size: 1, RandomnessFactor: 2}, testPool(1), &scriptedRand{floats: []float64{0.9}}, scene)
	if len(planes) != 1 {
		t.Errorf("Expected the only cell to be included, got %d planes", len(planes))
	}
}

func TestRadius(t *testing.T) {
	if r := Radius(19, 0, &scriptedRand{floats: []float64{0.99}}); r != 9.5 {
		t.Errorf("Expected fixed radius 9.5, got %v", r)
	}
	if r := Radius(19, 4, &scriptedRand{floats: []float64{0.25}}); math.Abs(r-8.5) > 1e-9 {
		t.Errorf("Expected jittered radius 8.5, got %v", r)
	}
}

func TestBuildRejectsInvalidConfig(t *testing.T) {
	scene := engine.NewScene("Grid")

	for _, size := range []int{0, -3} {
		if _, err := Build(Config{Size: size}, testPool(1), engine.NewRand(1), scene); !errors.Is(err, ErrInvalidGridSize) {
			t.Errorf("Size %d: expected ErrInvalidGridSize, got %v", size, err)
		}
	}
	if _, err := Build(Config{Size: 3, RandomnessFactor: -1}, testPool(1), engine.NewRand(1), scene); !errors.Is(err, ErrInvalidRandomness) {
		t.Errorf("Expected ErrInvalidRandomness, got %v", err)
	}
	if _, err := Build(Config{Size: 3}, assets.NewPool(), engine.NewRand(1), scene); !errors.Is(err, assets.ErrEmptyPool) {
		t.Errorf("Expected ErrEmptyPool, got %v", err)
	}
	if scene.Len() != 0 {
		t.Errorf("Failed builds should not touch the scene, got %d objects", scene.Len())
	}
}
