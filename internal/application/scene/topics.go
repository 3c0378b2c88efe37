package scene

import "time"

// Event topics published on the world's bus. Timestamps ride on the
// event envelope.
const (
	TopicTransitionStart    = "scene-transition-start"
	TopicTransitionComplete = "scene-transition-complete"
	TopicTransitionProgress = "scene-transition-progress"
	TopicTransitionFinished = "scene-transition-finished"
	TopicSceneLoad          = "scene-load"
	TopicSceneUnload        = "scene-unload"
	TopicScenePause         = "scene-pause"
	TopicSceneResume        = "scene-resume"
	TopicSceneDispose       = "scene-dispose"
	TopicSceneReset         = "scene-reset"
	TopicStateChanged       = "scene-state-changed"
	TopicSceneError         = "scene-error"
)

// Transition types carried by TransitionEvent.
const (
	TransitionLoad = "load"
	TransitionPush = "push"
)

// Lifecycle phases carried by ErrorEvent.
const (
	PhaseCreate     = "create"
	PhaseInit       = "init"
	PhasePause      = "pause"
	PhaseResume     = "resume"
	PhaseReset      = "reset"
	PhaseDispose    = "dispose"
	PhaseTransition = "transition"
)

// TransitionEvent is the payload for TopicTransitionStart and
// TopicTransitionComplete. From is nil when nothing was loaded.
type TransitionEvent struct {
	From Scene
	To   Scene
	Type string
}

// SceneEvent is the payload for the single-scene lifecycle topics
// (load, unload, pause, resume, dispose, reset).
type SceneEvent struct {
	Scene Scene
}

// StateEvent is the payload for TopicStateChanged.
type StateEvent struct {
	From State
	To   State
}

// ProgressEvent is the payload for TopicTransitionProgress.
type ProgressEvent struct {
	From     Scene
	To       Scene
	Progress float64
	Eased    float64
	Duration time.Duration
	Elapsed  time.Duration
}

// FinishedEvent is the payload for TopicTransitionFinished.
type FinishedEvent struct {
	From     Scene
	To       Scene
	Duration time.Duration
}

// ErrorEvent is the payload for TopicSceneError. Scene may be nil when
// the failure is not tied to a specific scene.
type ErrorEvent struct {
	Scene Scene
	Err   error
	Phase string
}
