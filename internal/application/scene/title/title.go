// Package title provides the title screen scene.
package title

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/sceneflow/internal/application/scene"
	"github.com/younwookim/sceneflow/internal/ecs"
)

var colorBG = color.RGBA{26, 26, 46, 255}

// Title is the entry scene. Enter starts an animated transition into
// the scene produced by the next factory.
type Title struct {
	scene.BaseScene

	anim    *scene.Animator
	next    func() scene.Scene
	opts    scene.TransitionOptions
	fade    float64
	started bool

	screenW int
	screenH int
}

// New creates the title scene. next builds the scene to transition into;
// opts carries the configured transition duration and easing.
func New(anim *scene.Animator, next func() scene.Scene, opts scene.TransitionOptions, screenW, screenH int) *Title {
	return &Title{
		anim:    anim,
		next:    next,
		opts:    opts,
		screenW: screenW,
		screenH: screenH,
	}
}

func (t *Title) ID() string { return "title" }

func (t *Title) Init(w *ecs.World) error {
	t.started = false
	t.fade = 0
	return nil
}

func (t *Title) Update(w *ecs.World, dt float64) {
	if t.started {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		t.started = true
		opts := t.opts
		opts.OnProgress = func(_, eased float64, _, _ time.Duration) {
			t.fade = eased
		}
		_ = t.anim.TransitionToScene(t.next(), &opts)
	}
}

func (t *Title) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	ebitenutil.DebugPrintAt(screen, "SCENEFLOW", t.screenW/2-30, t.screenH/2-30)
	msg := "Press ENTER to start"
	if t.started {
		msg = "Loading..."
	}
	ebitenutil.DebugPrintAt(screen, msg, t.screenW/2-60, t.screenH/2)

	// Fade to black as the transition progresses. Eased progress can
	// overshoot 1 for back/elastic curves, so clamp before scaling.
	if t.fade > 0 {
		f := t.fade
		if f > 1 {
			f = 1
		}
		overlay := color.RGBA{0, 0, 0, uint8(200 * f)}
		ebitenutil.DrawRect(screen, 0, 0, float64(t.screenW), float64(t.screenH), overlay)
	}
}
