// Package system provides the per-tick systems of the engine.
package system

import (
	"github.com/younwookim/sceneflow/internal/application/scene"
	"github.com/younwookim/sceneflow/internal/ecs"
)

// SceneLifecycle performs the side-effecting half of scene transitions.
//
// Invoked once per game tick, it reads the manager's state and runs
// exactly one transition phase: creating and initializing the pending
// scene while Loading, or tearing the current scene down while
// Unloading. Replacing an active scene therefore spans two ticks. State
// advancement itself happens only through the manager's completion
// hooks, keeping the manager the single writer of its fields.
type SceneLifecycle struct {
	created map[scene.Scene]struct{}
}

// NewSceneLifecycle creates the driver.
func NewSceneLifecycle() *SceneLifecycle {
	return &SceneLifecycle{created: make(map[scene.Scene]struct{})}
}

// Update runs one lifecycle phase. A world without a registered scene
// manager means there is nothing to drive; the tick is a no-op.
func (sl *SceneLifecycle) Update(w *ecs.World, dt float64) {
	mgr, ok := w.Resource(scene.ManagerResource).(*scene.Manager)
	if !ok {
		return
	}

	switch mgr.State() {
	case scene.StateLoading:
		sl.load(w, mgr)
	case scene.StateUnloading:
		sl.unload(w, mgr)
	case scene.StateActive:
		if u, ok := mgr.CurrentScene().(scene.Updater); ok {
			u.Update(w, dt)
		}
	}
	// Paused and Unloaded need nothing from the driver.
}

func (sl *SceneLifecycle) load(w *ecs.World, mgr *scene.Manager) {
	pending := mgr.PendingScene()
	if pending == nil {
		return
	}

	// Create is a one-time setup hook per scene instance; a scene that
	// comes back via push/pop or a reload is not re-created.
	if _, done := sl.created[pending]; !done {
		if err := pending.Create(); err != nil {
			mgr.ReportError(pending, err, scene.PhaseCreate)
		}
		sl.created[pending] = struct{}{}
	}

	if err := pending.Init(w); err != nil {
		mgr.ReportError(pending, err, scene.PhaseInit)
	}

	transitionType := scene.TransitionLoad
	if mgr.StackDepth() > 0 {
		transitionType = scene.TransitionPush
	}
	if err := mgr.CompleteLoad(transitionType); err != nil {
		mgr.ReportError(pending, err, scene.PhaseInit)
	}
}

func (sl *SceneLifecycle) unload(w *ecs.World, mgr *scene.Manager) {
	cur := mgr.CurrentScene()
	if cur != nil {
		w.DestroySceneEntities(cur.ID())
		if err := cur.Dispose(w); err != nil {
			mgr.ReportError(cur, err, scene.PhaseDispose)
		}
		w.Events.Publish(scene.TopicSceneDispose, scene.SceneEvent{Scene: cur})
		w.Events.Publish(scene.TopicSceneUnload, scene.SceneEvent{Scene: cur})
	}
	if err := mgr.CompleteDisposal(); err != nil {
		mgr.ReportError(cur, err, scene.PhaseDispose)
	}
}
