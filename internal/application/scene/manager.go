package scene

import (
	"fmt"
	"log"
	"sync"

	"github.com/younwookim/sceneflow/internal/ecs"
)

// ManagerResource is the name under which the manager registers itself
// on the world, so the lifecycle driver can find it.
const ManagerResource = "scene-manager"

// StateSubscriber observes committed state changes.
type StateSubscriber func(s State)

type stateSub struct {
	id int
	fn StateSubscriber
}

// Manager owns the scene state machine: the current scene, the pending
// scene, and the stack of paused scenes beneath the current one.
//
// All mutations flow through SetState and the two completion hooks; the
// lifecycle driver never touches the fields directly. The game tick is
// the single logical writer, but the transition animator samples from
// its own goroutine, so the mutable fields are mutex-guarded. The mutex
// is never held across scene hooks, bus publishes or subscriber
// notifications, so handlers may call back into the manager.
type Manager struct {
	world *ecs.World

	mu        sync.Mutex
	state     State
	current   Scene
	pending   Scene
	stack     []Scene
	lastFrom  Scene
	subs      []stateSub
	nextSubID int
	validate  bool
}

// NewManager creates a manager in the Unloaded state and registers it on
// the world under ManagerResource.
func NewManager(w *ecs.World) *Manager {
	m := &Manager{
		world:    w,
		state:    StateUnloaded,
		validate: true,
	}
	w.RegisterResource(ManagerResource, m)
	return m
}

// SetValidation toggles transition-table checking. Production code
// leaves validation enabled; this exists for controlled test scenarios.
func (m *Manager) SetValidation(enabled bool) {
	m.mu.Lock()
	m.validate = enabled
	m.mu.Unlock()
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// CurrentScene returns the scene receiving per-tick updates, or nil.
func (m *Manager) CurrentScene() Scene {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// PendingScene returns the scene being loaded, or nil. Non-nil only
// while the state is Loading or Unloading.
func (m *Manager) PendingScene() Scene {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pending
}

// StackDepth returns the number of paused scenes (excluding current).
func (m *Manager) StackDepth() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.stack)
}

// Stack returns a copy of the paused scene stack, bottom to top.
func (m *Manager) Stack() []Scene {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Scene, len(m.stack))
	copy(out, m.stack)
	return out
}

// TotalSceneCount returns stack depth plus one if a scene is current.
func (m *Manager) TotalSceneCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := len(m.stack)
	if m.current != nil {
		n++
	}
	return n
}

// IsScenePaused reports whether a scene with the given id sits on the
// paused stack. The current scene is never considered paused.
func (m *Manager) IsScenePaused(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.stack {
		if s.ID() == id {
			return true
		}
	}
	return false
}

// SubscribeToStateChanges registers fn to be called with the new state
// on every committed change, and returns an unsubscribe handle.
func (m *Manager) SubscribeToStateChanges(fn StateSubscriber) func() {
	m.mu.Lock()
	m.nextSubID++
	id := m.nextSubID
	m.subs = append(m.subs, stateSub{id: id, fn: fn})
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, s := range m.subs {
			if s.id == id {
				m.subs = append(m.subs[:i:i], m.subs[i+1:]...)
				return
			}
		}
	}
}

// SetState commits a state change after checking it against the
// transition table. Setting the state to its current value is a no-op:
// no error, no notification. On success subscribers and the bus are
// notified; a panicking subscriber is logged and does not stop the rest.
func (m *Manager) SetState(to State) error {
	m.mu.Lock()
	from := m.state
	if from == to {
		m.mu.Unlock()
		return nil
	}
	if m.validate && !CanTransition(from, to) {
		m.mu.Unlock()
		return invalidTransitionError(from, to)
	}
	m.state = to
	subs := make([]stateSub, len(m.subs))
	copy(subs, m.subs)
	m.mu.Unlock()

	m.world.Events.Publish(TopicStateChanged, StateEvent{From: from, To: to})
	for _, s := range subs {
		notifyStateSub(s.fn, to)
	}
	return nil
}

// LoadScene requests that scene replace whatever is loaded. If a scene
// is currently active it must be torn down first, so the state moves to
// Unloading; otherwise loading begins immediately. The lifecycle driver
// performs the actual create/init/dispose work on subsequent ticks.
func (m *Manager) LoadScene(s Scene) error {
	m.mu.Lock()
	from := m.current
	target := StateLoading
	if from != nil {
		target = StateUnloading
	}
	if m.validate && m.state != target && !CanTransition(m.state, target) {
		state := m.state
		m.mu.Unlock()
		return invalidTransitionError(state, target)
	}
	m.mu.Unlock()

	m.world.Events.Publish(TopicTransitionStart, TransitionEvent{From: from, To: s, Type: TransitionLoad})

	m.mu.Lock()
	m.pending = s
	m.lastFrom = from
	m.mu.Unlock()
	return m.SetState(target)
}

// PushScene pauses the current scene, parks it on the stack and begins
// loading scene on top of it. Unlike LoadScene the previous scene is not
// disposed; PopScene restores it.
func (m *Manager) PushScene(s Scene) error {
	m.mu.Lock()
	from := m.current
	if m.validate && m.state != StateLoading && !CanTransition(m.state, StateLoading) {
		state := m.state
		m.mu.Unlock()
		return invalidTransitionError(state, StateLoading)
	}
	m.mu.Unlock()

	m.world.Events.Publish(TopicTransitionStart, TransitionEvent{From: from, To: s, Type: TransitionPush})

	if from != nil {
		if err := from.Pause(m.world); err != nil {
			m.ReportError(from, err, PhasePause)
		}
		m.world.Events.Publish(TopicScenePause, SceneEvent{Scene: from})
	}

	m.mu.Lock()
	if from != nil {
		m.stack = append(m.stack, from)
		m.current = nil
	}
	m.pending = s
	m.lastFrom = from
	m.mu.Unlock()
	return m.SetState(StateLoading)
}

// PopScene disposes the current scene and resumes the top of the paused
// stack. With an empty stack the manager settles at Unloaded. Calling
// PopScene with nothing loaded is a no-op.
func (m *Manager) PopScene() error {
	m.mu.Lock()
	cur := m.current
	if cur == nil && len(m.stack) == 0 {
		m.mu.Unlock()
		return nil
	}
	m.mu.Unlock()

	if cur != nil {
		if err := m.SetState(StateUnloading); err != nil {
			return err
		}
		m.world.DestroySceneEntities(cur.ID())
		if err := cur.Dispose(m.world); err != nil {
			m.ReportError(cur, err, PhaseDispose)
		}
		m.world.Events.Publish(TopicSceneDispose, SceneEvent{Scene: cur})
		m.mu.Lock()
		m.current = nil
		m.mu.Unlock()
	}

	m.mu.Lock()
	if len(m.stack) == 0 {
		m.mu.Unlock()
		return m.SetState(StateUnloaded)
	}
	top := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	m.current = top
	m.mu.Unlock()

	if err := m.SetState(StateActive); err != nil {
		return err
	}
	if err := top.Resume(m.world); err != nil {
		m.ReportError(top, err, PhaseResume)
	}
	m.world.Events.Publish(TopicSceneResume, SceneEvent{Scene: top})
	return nil
}

// ResetCurrentScene calls Reset on the current scene, but only while the
// state is exactly Active. Any other state (including nothing loaded) is
// a silent no-op.
func (m *Manager) ResetCurrentScene() {
	m.mu.Lock()
	cur := m.current
	active := m.state == StateActive
	m.mu.Unlock()
	if !active || cur == nil {
		return
	}
	if err := cur.Reset(m.world); err != nil {
		m.ReportError(cur, err, PhaseReset)
		return
	}
	m.world.Events.Publish(TopicSceneReset, SceneEvent{Scene: cur})
}

// CompleteLoad finalizes a load or push once the lifecycle driver has
// run Create/Init on the pending scene: the pending scene becomes
// current, the state moves to Active, and the loaded/complete events
// fire with the given transition type.
func (m *Manager) CompleteLoad(transitionType string) error {
	m.mu.Lock()
	p := m.pending
	if p == nil {
		m.mu.Unlock()
		return fmt.Errorf("scene: no pending scene to complete")
	}
	from := m.lastFrom
	m.current = p
	m.pending = nil
	m.lastFrom = nil
	m.mu.Unlock()

	if err := m.SetState(StateActive); err != nil {
		return err
	}
	m.world.Events.Publish(TopicSceneLoad, SceneEvent{Scene: p})
	m.world.Events.Publish(TopicTransitionComplete, TransitionEvent{From: from, To: p, Type: transitionType})
	return nil
}

// CompleteDisposal finalizes the teardown of the current scene once the
// lifecycle driver has disposed it. Depending on what is queued the
// manager then begins loading the pending scene, resumes the stack top,
// or settles at Unloaded.
func (m *Manager) CompleteDisposal() error {
	m.mu.Lock()
	m.current = nil
	hasPending := m.pending != nil
	var top Scene
	if !hasPending && len(m.stack) > 0 {
		top = m.stack[len(m.stack)-1]
		m.stack = m.stack[:len(m.stack)-1]
		m.current = top
	}
	m.mu.Unlock()

	switch {
	case hasPending:
		return m.SetState(StateLoading)
	case top != nil:
		if err := m.SetState(StateActive); err != nil {
			return err
		}
		if err := top.Resume(m.world); err != nil {
			m.ReportError(top, err, PhaseResume)
		}
		m.world.Events.Publish(TopicSceneResume, SceneEvent{Scene: top})
		return nil
	default:
		return m.SetState(StateUnloaded)
	}
}

// ReportError logs a scene hook failure and publishes it on the bus.
// Hook errors never abort a transition; callers continue after reporting.
func (m *Manager) ReportError(s Scene, err error, phase string) {
	id := "<none>"
	if s != nil {
		id = s.ID()
	}
	log.Printf("scene: %s hook failed for %q: %v", phase, id, err)
	m.world.Events.Publish(TopicSceneError, ErrorEvent{Scene: s, Err: err, Phase: phase})
}

// World returns the collaborator world the manager operates on.
func (m *Manager) World() *ecs.World {
	return m.world
}

func notifyStateSub(fn StateSubscriber, s State) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("scene: state subscriber panicked: %v", r)
		}
	}()
	fn(s)
}
