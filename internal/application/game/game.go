// Package game provides the main game loop that drives the scene
// lifecycle once per tick.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/sceneflow/internal/application/scene"
	"github.com/younwookim/sceneflow/internal/application/system"
	"github.com/younwookim/sceneflow/internal/ecs"
)

// Game implements ebiten.Game. Each Update is one tick: the scene
// lifecycle driver runs one transition phase or updates the current
// scene. Draw renders the paused stack bottom-to-top and the current
// scene last, so overlay scenes compose over their paused parent.
type Game struct {
	world   *ecs.World
	mgr     *scene.Manager
	driver  *system.SceneLifecycle
	screenW int
	screenH int
	dt      float64
}

// New creates a new Game over the given world and manager.
func New(w *ecs.World, mgr *scene.Manager, screenW, screenH int) *Game {
	return &Game{
		world:   w,
		mgr:     mgr,
		driver:  system.NewSceneLifecycle(),
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0, // Default to 60 FPS
	}
}

// Update runs one tick of the scene lifecycle.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	g.driver.Update(g.world, g.dt)
	return nil
}

// Draw renders the scene stack and the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	for _, s := range g.mgr.Stack() {
		if d, ok := s.(scene.Drawer); ok {
			d.Draw(screen)
		}
	}
	if d, ok := g.mgr.CurrentScene().(scene.Drawer); ok {
		d.Draw(screen)
	}
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}
