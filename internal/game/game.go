package game

import (
	"fmt"
	"log"
	"time"

	"hovergrid/internal/assets"
	"hovergrid/internal/camera"
	"hovergrid/internal/config"
	"hovergrid/internal/engine"
	"hovergrid/internal/picking"
	"hovergrid/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Game struct {
	Config   config.Config
	World    *world.World
	Camera   *camera.OrbitCamera
	Renderer *world.Renderer
	Assets   *assets.Manager
	HUD      *HUD

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

func New(cfg config.Config) *Game {
	cam := camera.New(cfg.Camera.Distance, cfg.Camera.Fovy)
	cam.Orthographic = cfg.Camera.Orthographic

	clearColor, err := config.ParseColor(cfg.ClearColor)
	if err != nil {
		clearColor = rl.White
	}

	return &Game{
		Config:   cfg,
		Camera:   cam,
		Renderer: world.NewRenderer(clearColor),
		Assets:   assets.NewManager(),
		HUD:      NewHUD(),
	}
}

// Run opens the window, builds the scene and runs the frame loop until the
// window is closed. Textures need a GL context, so setup happens after InitWindow.
func (g *Game) Run() error {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(g.Config.Window.Width, g.Config.Window.Height, g.Config.Window.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(g.Config.Window.TargetFPS)

	if err := g.setup(); err != nil {
		return err
	}
	defer g.Assets.Unload()

	g.World.Start()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
	return nil
}

func (g *Game) setup() error {
	pool, err := assets.LoadPool(g.Config.Textures, g.Assets, assets.PoolOptions{
		PlaceholderOnError: g.Config.PlaceholderOnError,
	})
	if err != nil {
		return fmt.Errorf("load textures: %w", err)
	}

	seed := g.Config.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("Game: seed %d", seed)

	g.World = world.New(pool, engine.NewRand(seed))
	g.World.OnRetexture.AddListener(g.HUD.RecordRetexture)

	if err := g.World.Build(g.Config.Grid()); err != nil {
		return err
	}
	g.HUD.Init()
	return nil
}

func (g *Game) Update() {
	updateStart := time.Now()
	deltaTime := rl.GetFrameTime()

	if rl.IsKeyPressed(rl.KeyF1) {
		g.HUD.Visible = !g.HUD.Visible
	}

	mouse := rl.GetMousePosition()
	overHUD := g.HUD.Visible && g.HUD.Contains(mouse)

	if delta := rl.GetMouseDelta(); delta.X != 0 || delta.Y != 0 {
		g.World.Pointer.Move(mouse.X, mouse.Y, float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
	}
	if !overHUD {
		g.Camera.Update()
	}

	g.World.Step(deltaTime, g.view())

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

func (g *Game) Draw() {
	rl.BeginDrawing()

	drawStart := time.Now()
	g.Renderer.Highlight = g.HUD.Highlight
	g.Renderer.Draw(g.Camera.GetRaylibCamera(), g.World)
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	if g.HUD.Visible {
		g.HUD.Draw(g.World, g.updateMs, g.drawMs)
	}
	rl.EndDrawing()
}

// view reads the viewport size every frame so resizes are picked up.
func (g *Game) view() picking.View {
	w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
	aspect := float32(1)
	if h > 0 {
		aspect = float32(w) / float32(h)
	}
	return picking.View{Camera: g.Camera.GetRaylibCamera(), Aspect: aspect}
}
