// Package scene provides the scene lifecycle state machine, the paused
// scene stack, and the timed transition animator.
//
// A Scene is a unit of game behavior (title screen, gameplay, pause
// overlay) with a managed lifecycle. The Manager decides which scene is
// current and which scenes sit paused beneath it; the lifecycle driver in
// internal/application/system performs the per-tick side effects.
package scene

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/sceneflow/internal/ecs"
)

// Scene is the capability set every scene variant implements.
//
// Create is called exactly once per scene instance, before the first
// Init. Init/Pause/Resume/Reset/Dispose run each time the manager moves
// the scene through the corresponding lifecycle edge. All hooks are
// synchronous; long-running work belongs in state the scene polls from
// its own Update.
type Scene interface {
	// ID returns the scene's stable identifier. Entities spawned by a
	// scene carry this id as their SceneOwner tag.
	ID() string

	// Create performs one-time setup for this scene instance.
	Create() error

	// Init prepares the scene to become current.
	Init(w *ecs.World) error

	// Pause is called when another scene is pushed on top.
	Pause(w *ecs.World) error

	// Resume is called when the scene above is popped off.
	Resume(w *ecs.World) error

	// Reset restores the scene to its initial condition while active.
	Reset(w *ecs.World) error

	// Dispose tears the scene down before it is discarded.
	Dispose(w *ecs.World) error
}

// Updater is the optional per-tick update capability. The lifecycle
// driver calls Update on the current scene only if it implements this.
type Updater interface {
	Update(w *ecs.World, dt float64)
}

// Drawer is the optional render capability. The game loop draws the
// paused stack bottom-to-top and the current scene last, so overlay
// scenes compose over their paused parent.
type Drawer interface {
	Draw(screen *ebiten.Image)
}

// BaseScene provides no-op lifecycle hooks so scene variants only
// override what they need.
type BaseScene struct{}

func (BaseScene) Create() error            { return nil }
func (BaseScene) Init(*ecs.World) error    { return nil }
func (BaseScene) Pause(*ecs.World) error   { return nil }
func (BaseScene) Resume(*ecs.World) error  { return nil }
func (BaseScene) Reset(*ecs.World) error   { return nil }
func (BaseScene) Dispose(*ecs.World) error { return nil }
