// Package pause provides the pause overlay scene.
package pause

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/sceneflow/internal/application/scene"
	"github.com/younwookim/sceneflow/internal/ecs"
)

// Pause is a translucent overlay pushed on top of the gameplay scene.
// The parent stays paused on the stack and keeps drawing beneath this
// overlay; Esc pops back to it.
type Pause struct {
	scene.BaseScene

	screenW int
	screenH int
}

// New creates the pause overlay scene.
func New(screenW, screenH int) *Pause {
	return &Pause{screenW: screenW, screenH: screenH}
}

func (p *Pause) ID() string { return "pause" }

func (p *Pause) Update(w *ecs.World, dt float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if mgr, ok := w.Resource(scene.ManagerResource).(*scene.Manager); ok {
			_ = mgr.PopScene()
		}
	}
}

func (p *Pause) Draw(screen *ebiten.Image) {
	overlay := color.RGBA{0, 0, 0, 128}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)
	ebitenutil.DebugPrintAt(screen, "PAUSED\n\nPress ESC to resume", p.screenW/2-50, p.screenH/2-20)
}
