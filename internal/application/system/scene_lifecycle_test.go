package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/sceneflow/internal/application/scene"
	"github.com/younwookim/sceneflow/internal/ecs"
	"github.com/younwookim/sceneflow/internal/event"
)

// mockScene is a test double for the Scene interface
type mockScene struct {
	scene.BaseScene
	id string

	createCalled  int
	initCalled    int
	pauseCalled   int
	resumeCalled  int
	disposeCalled int
	updateCalled  int
	lastDT        float64
}

func (m *mockScene) ID() string { return m.id }

func (m *mockScene) Create() error { m.createCalled++; return nil }

func (m *mockScene) Init(w *ecs.World) error { m.initCalled++; return nil }

func (m *mockScene) Pause(w *ecs.World) error { m.pauseCalled++; return nil }

func (m *mockScene) Resume(w *ecs.World) error { m.resumeCalled++; return nil }

func (m *mockScene) Dispose(w *ecs.World) error { m.disposeCalled++; return nil }

func (m *mockScene) Update(w *ecs.World, dt float64) {
	m.updateCalled++
	m.lastDT = dt
}

// staticScene has no Update method, for exercising the optional Updater
// capability
type staticScene struct {
	scene.BaseScene
	id string
}

func (s *staticScene) ID() string { return s.id }

func newFixture() (*SceneLifecycle, *scene.Manager, *ecs.World) {
	w := ecs.NewWorld()
	mgr := scene.NewManager(w)
	return NewSceneLifecycle(), mgr, w
}

func TestSceneLifecycle_NoManagerIsNoop(t *testing.T) {
	driver := NewSceneLifecycle()
	w := ecs.NewWorld()

	assert.NotPanics(t, func() { driver.Update(w, 1.0/60) })
}

func TestSceneLifecycle_LoadFromEmpty_OneTick(t *testing.T) {
	driver, mgr, w := newFixture()
	var topics []string
	for _, topic := range []string{
		scene.TopicTransitionStart, scene.TopicSceneLoad, scene.TopicTransitionComplete,
	} {
		w.Events.Subscribe(topic, func(e event.Envelope) { topics = append(topics, e.Topic) })
	}

	a := &mockScene{id: "a"}
	require.NoError(t, mgr.LoadScene(a))
	require.Equal(t, scene.StateLoading, mgr.State())

	driver.Update(w, 1.0/60)

	assert.Equal(t, scene.StateActive, mgr.State())
	assert.Same(t, a, mgr.CurrentScene())
	assert.Equal(t, 1, a.createCalled)
	assert.Equal(t, 1, a.initCalled)
	assert.Equal(t, []string{
		scene.TopicTransitionStart, scene.TopicSceneLoad, scene.TopicTransitionComplete,
	}, topics)
}

func TestSceneLifecycle_ReplaceActiveScene_TwoTicks(t *testing.T) {
	driver, mgr, w := newFixture()
	a := &mockScene{id: "a"}
	require.NoError(t, mgr.LoadScene(a))
	driver.Update(w, 1.0/60)
	require.Same(t, a, mgr.CurrentScene())

	b := &mockScene{id: "b"}
	require.NoError(t, mgr.LoadScene(b))
	require.Equal(t, scene.StateUnloading, mgr.State())

	// Tick 1: a is torn down
	driver.Update(w, 1.0/60)
	assert.Equal(t, 1, a.disposeCalled)
	assert.Equal(t, scene.StateLoading, mgr.State())
	assert.Nil(t, mgr.CurrentScene())

	// Tick 2: b comes up
	driver.Update(w, 1.0/60)
	assert.Same(t, b, mgr.CurrentScene())
	assert.Equal(t, scene.StateActive, mgr.State())
	assert.Equal(t, 1, b.createCalled)
	assert.Equal(t, 1, b.initCalled)
}

func TestSceneLifecycle_UnloadDestroysOwnedEntities(t *testing.T) {
	driver, mgr, w := newFixture()
	a := &mockScene{id: "a"}
	require.NoError(t, mgr.LoadScene(a))
	driver.Update(w, 1.0/60)

	w.SpawnOwned("a")
	w.SpawnOwned("a")
	other := w.SpawnOwned("b")

	unloads := 0
	w.Events.Subscribe(scene.TopicSceneUnload, func(e event.Envelope) { unloads++ })

	require.NoError(t, mgr.LoadScene(&mockScene{id: "b"}))
	driver.Update(w, 1.0/60)

	assert.Equal(t, 1, w.EntityCount(), "only a's entities destroyed")
	assert.True(t, w.Exists(other))
	assert.Equal(t, 1, unloads)
}

func TestSceneLifecycle_PushPop(t *testing.T) {
	driver, mgr, w := newFixture()
	a := &mockScene{id: "a"}
	require.NoError(t, mgr.LoadScene(a))
	driver.Update(w, 1.0/60)

	b := &mockScene{id: "b"}
	require.NoError(t, mgr.PushScene(b))
	assert.Equal(t, 1, a.pauseCalled)
	assert.Equal(t, 1, mgr.StackDepth())

	var complete scene.TransitionEvent
	w.Events.Subscribe(scene.TopicTransitionComplete, func(e event.Envelope) {
		complete = e.Data.(scene.TransitionEvent)
	})

	driver.Update(w, 1.0/60)
	assert.Same(t, b, mgr.CurrentScene())
	assert.Equal(t, scene.StateActive, mgr.State())
	assert.Equal(t, 1, mgr.StackDepth(), "a stays on the stack")
	assert.Equal(t, scene.TransitionPush, complete.Type, "driver detects push by stack depth")

	require.NoError(t, mgr.PopScene())
	assert.Same(t, a, mgr.CurrentScene())
	assert.Equal(t, 1, a.resumeCalled)
	assert.Equal(t, 1, b.disposeCalled)
	assert.Equal(t, 0, mgr.StackDepth())
}

func TestSceneLifecycle_CreateOncePerInstance(t *testing.T) {
	driver, mgr, w := newFixture()
	a := &mockScene{id: "a"}

	require.NoError(t, mgr.LoadScene(a))
	driver.Update(w, 1.0/60)
	require.Equal(t, 1, a.createCalled)

	// Replace a with b, then load the same a instance again
	require.NoError(t, mgr.LoadScene(&mockScene{id: "b"}))
	driver.Update(w, 1.0/60)
	driver.Update(w, 1.0/60)
	require.NoError(t, mgr.LoadScene(a))
	driver.Update(w, 1.0/60)
	driver.Update(w, 1.0/60)

	assert.Same(t, a, mgr.CurrentScene())
	assert.Equal(t, 1, a.createCalled, "Create runs once per instance")
	assert.Equal(t, 2, a.initCalled, "Init runs on every load")
}

func TestSceneLifecycle_ActiveUpdatesCurrentScene(t *testing.T) {
	driver, mgr, w := newFixture()
	a := &mockScene{id: "a"}
	require.NoError(t, mgr.LoadScene(a))
	driver.Update(w, 1.0/60)

	driver.Update(w, 0.25)
	driver.Update(w, 0.25)

	assert.Equal(t, 2, a.updateCalled)
	assert.Equal(t, 0.25, a.lastDT)
}

func TestSceneLifecycle_SceneWithoutUpdaterIsFine(t *testing.T) {
	driver, mgr, w := newFixture()
	s := &staticScene{id: "static"}
	require.NoError(t, mgr.LoadScene(s))
	driver.Update(w, 1.0/60)
	require.Equal(t, scene.StateActive, mgr.State())

	assert.NotPanics(t, func() { driver.Update(w, 1.0/60) })
}

func TestSceneLifecycle_PausedTickIsNoop(t *testing.T) {
	driver, mgr, w := newFixture()
	a := &mockScene{id: "a"}
	require.NoError(t, mgr.LoadScene(a))
	driver.Update(w, 1.0/60)
	require.NoError(t, mgr.SetState(scene.StatePaused))

	driver.Update(w, 1.0/60)

	assert.Equal(t, 0, a.updateCalled)
	assert.Equal(t, scene.StatePaused, mgr.State())
}

func TestSceneLifecycle_LoadingWithoutPendingIsNoop(t *testing.T) {
	driver, mgr, w := newFixture()
	mgr.SetValidation(false)
	require.NoError(t, mgr.SetState(scene.StateLoading))

	driver.Update(w, 1.0/60)

	assert.Equal(t, scene.StateLoading, mgr.State())
}
