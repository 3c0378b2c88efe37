// Package gameplay provides the main gameplay scene.
package gameplay

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/sceneflow/internal/application/scene"
	"github.com/younwookim/sceneflow/internal/ecs"
)

var colorBG = color.RGBA{16, 24, 32, 255}

const entityCount = 12

// Gameplay is the playable scene. It spawns a handful of bouncing
// entities owned by this scene's id so unloading exercises the world's
// scene-ownership cleanup. Esc pushes the pause overlay on top; R
// resets the scene in place.
type Gameplay struct {
	scene.BaseScene

	pause   func() scene.Scene
	world   *ecs.World
	screenW int
	screenH int
	elapsed float64
}

// New creates the gameplay scene. pause builds the overlay scene pushed
// on Esc.
func New(pause func() scene.Scene, screenW, screenH int) *Gameplay {
	return &Gameplay{
		pause:   pause,
		screenW: screenW,
		screenH: screenH,
	}
}

func (g *Gameplay) ID() string { return "gameplay" }

func (g *Gameplay) Init(w *ecs.World) error {
	g.world = w
	g.elapsed = 0
	g.spawn(w)
	return nil
}

func (g *Gameplay) Reset(w *ecs.World) error {
	g.elapsed = 0
	w.DestroySceneEntities(g.ID())
	g.spawn(w)
	return nil
}

func (g *Gameplay) Dispose(w *ecs.World) error {
	w.DestroySceneEntities(g.ID())
	return nil
}

func (g *Gameplay) spawn(w *ecs.World) {
	for i := 0; i < entityCount; i++ {
		id := w.SpawnOwned(g.ID())
		angle := float64(i) / entityCount * 2 * math.Pi
		w.Position[id] = ecs.Position{
			X: float64(g.screenW)/2 + 40*math.Cos(angle),
			Y: float64(g.screenH)/2 + 40*math.Sin(angle),
		}
		w.Velocity[id] = ecs.Velocity{
			VX: 60 * math.Cos(angle),
			VY: 60 * math.Sin(angle),
		}
		w.Visual[id] = ecs.Visual{
			W: 8, H: 8,
			R: uint8(100 + 10*i), G: 200, B: uint8(255 - 10*i),
		}
	}
}

func (g *Gameplay) Update(w *ecs.World, dt float64) {
	g.elapsed += dt

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if mgr, ok := w.Resource(scene.ManagerResource).(*scene.Manager); ok {
			_ = mgr.PushScene(g.pause())
		}
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if mgr, ok := w.Resource(scene.ManagerResource).(*scene.Manager); ok {
			mgr.ResetCurrentScene()
		}
		return
	}

	// Integrate and bounce off the screen edges
	for id, owner := range w.SceneOwner {
		if owner != g.ID() {
			continue
		}
		pos := w.Position[id]
		vel := w.Velocity[id]
		vis := w.Visual[id]
		pos.X += vel.VX * dt
		pos.Y += vel.VY * dt
		if pos.X < 0 || pos.X+vis.W > float64(g.screenW) {
			vel.VX = -vel.VX
			pos.X = clamp(pos.X, 0, float64(g.screenW)-vis.W)
		}
		if pos.Y < 0 || pos.Y+vis.H > float64(g.screenH) {
			vel.VY = -vel.VY
			pos.Y = clamp(pos.Y, 0, float64(g.screenH)-vis.H)
		}
		w.Position[id] = pos
		w.Velocity[id] = vel
	}
}

func (g *Gameplay) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	if g.world != nil {
		for id, owner := range g.world.SceneOwner {
			if owner != g.ID() {
				continue
			}
			pos := g.world.Position[id]
			vis := g.world.Visual[id]
			ebitenutil.DrawRect(screen, pos.X, pos.Y, vis.W, vis.H,
				color.RGBA{vis.R, vis.G, vis.B, 255})
		}
	}

	ebitenutil.DebugPrint(screen, "ESC: Pause | R: Reset")
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
