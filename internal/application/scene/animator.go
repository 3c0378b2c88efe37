package scene

import (
	"log"
	"sync"
	"time"

	"github.com/younwookim/sceneflow/internal/tween"
)

// DefaultSampleInterval is how often a transition session samples its
// progress. Sampling runs on a wall-clock timer independent of the game
// tick, so transitions stay smooth even when ticks are infrequent.
const DefaultSampleInterval = 16 * time.Millisecond

// TransitionOptions configures an animated transition. A zero Duration
// makes TransitionToScene behave exactly like Manager.LoadScene.
type TransitionOptions struct {
	Duration time.Duration

	// Easing shapes the progress curve. Defaults to tween.QuadInOut.
	Easing tween.Easing

	// OnBefore runs before the first progress sample. It may block; the
	// session clock starts when it returns.
	OnBefore func(from, to Scene) error

	// OnProgress is invoked on every sample with the raw and eased
	// progress values.
	OnProgress func(progress, eased float64, elapsed, duration time.Duration)

	// OnAfter runs after the underlying load and the finished event. It
	// may block; the session completes when it returns.
	OnAfter func(from, to Scene) error
}

type transitionSession struct {
	from     Scene
	to       Scene
	duration time.Duration
	easing   tween.Easing
	opts     TransitionOptions
}

// Animator layers timed, eased transitions over the manager's instant
// load operation.
//
// At most one session is live at a time. Starting a new transition
// silently discards a live session: its remaining callbacks never run
// and no finished event fires for it, exactly as with an explicit
// cancel. Cancellation is cooperative; a callback already in flight when
// Cancel is called completes normally.
type Animator struct {
	mgr      *Manager
	interval time.Duration

	mu      sync.Mutex
	session *transitionSession
}

// NewAnimator creates an animator over the given manager.
func NewAnimator(mgr *Manager) *Animator {
	return &Animator{mgr: mgr, interval: DefaultSampleInterval}
}

// SetSampleInterval overrides the progress sampling interval.
func (a *Animator) SetSampleInterval(d time.Duration) {
	if d > 0 {
		a.interval = d
	}
}

// IsTransitioning reports whether a transition session is live.
func (a *Animator) IsTransitioning() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session != nil
}

// CancelTransition marks the live session cancelled and reports whether
// one was active. After it returns, no further progress or finished
// events fire for that session.
func (a *Animator) CancelTransition() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.session == nil {
		return false
	}
	a.session = nil
	return true
}

// TransitionToScene loads the given scene, animated over the configured
// duration. With no options or a non-positive duration it is an instant
// load and no session is created.
func (a *Animator) TransitionToScene(s Scene, opts *TransitionOptions) error {
	if opts == nil || opts.Duration <= 0 {
		return a.mgr.LoadScene(s)
	}

	easing := opts.Easing
	if easing == nil {
		easing = tween.QuadInOut
	}
	sess := &transitionSession{
		from:     a.mgr.CurrentScene(),
		to:       s,
		duration: opts.Duration,
		easing:   easing,
		opts:     *opts,
	}

	a.mu.Lock()
	// Replacing a live session discards it silently: the old goroutine
	// notices the identity change and stops without a finished event.
	a.session = sess
	a.mu.Unlock()

	go a.run(sess)
	return nil
}

func (a *Animator) run(sess *transitionSession) {
	if sess.opts.OnBefore != nil {
		runTransitionHook(a.mgr, sess.from, sess.to, sess.opts.OnBefore, "before")
	}
	if !a.live(sess) {
		return
	}

	bus := a.mgr.World().Events
	start := time.Now()
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		<-ticker.C
		if !a.live(sess) {
			return
		}
		elapsed := time.Since(start)
		progress := float64(elapsed) / float64(sess.duration)
		if progress > 1 {
			progress = 1
			elapsed = sess.duration
		}
		eased := sess.easing(progress)
		if sess.opts.OnProgress != nil {
			sess.opts.OnProgress(progress, eased, elapsed, sess.duration)
		}
		bus.Publish(TopicTransitionProgress, ProgressEvent{
			From:     sess.from,
			To:       sess.to,
			Progress: progress,
			Eased:    eased,
			Duration: sess.duration,
			Elapsed:  elapsed,
		})
		if progress >= 1 {
			break
		}
	}

	if !a.live(sess) {
		return
	}
	if err := a.mgr.LoadScene(sess.to); err != nil {
		log.Printf("scene: transition load failed: %v", err)
		a.mgr.ReportError(sess.to, err, PhaseTransition)
	}
	bus.Publish(TopicTransitionFinished, FinishedEvent{
		From:     sess.from,
		To:       sess.to,
		Duration: sess.duration,
	})
	if sess.opts.OnAfter != nil {
		runTransitionHook(a.mgr, sess.from, sess.to, sess.opts.OnAfter, "after")
	}

	a.mu.Lock()
	if a.session == sess {
		a.session = nil
	}
	a.mu.Unlock()
}

func (a *Animator) live(sess *transitionSession) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session == sess
}

// runTransitionHook isolates OnBefore/OnAfter failures: errors and
// panics are logged and reported, the transition itself continues.
func runTransitionHook(mgr *Manager, from, to Scene, hook func(from, to Scene) error, name string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("scene: transition %s hook panicked: %v", name, r)
		}
	}()
	if err := hook(from, to); err != nil {
		mgr.ReportError(to, err, PhaseTransition)
	}
}
