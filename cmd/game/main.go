package main

import (
	"embed"
	"flag"
	"io/fs"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/sceneflow/internal/application/game"
	"github.com/younwookim/sceneflow/internal/application/scene"
	"github.com/younwookim/sceneflow/internal/application/scene/gameplay"
	"github.com/younwookim/sceneflow/internal/application/scene/pause"
	"github.com/younwookim/sceneflow/internal/application/scene/title"
	"github.com/younwookim/sceneflow/internal/ecs"
	"github.com/younwookim/sceneflow/internal/infrastructure/config"
	"github.com/younwookim/sceneflow/internal/tween"
)

//go:embed configs
var configFS embed.FS

func main() {
	durationFlag := flag.Int("transition-ms", -1, "Override transition duration in milliseconds (0 = instant)")
	flag.Parse()

	// Load configuration using the embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	cfg, err := config.NewFSLoader(fsys).LoadEngine()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	durationMs := cfg.Transition.DurationMs
	if *durationFlag >= 0 {
		durationMs = *durationFlag
	}
	easing, ok := tween.ByName(cfg.Transition.Easing)
	if !ok {
		easing = tween.QuadInOut
	}

	screenW := cfg.Display.ScreenWidth
	screenH := cfg.Display.ScreenHeight

	// Root composition: world, manager, animator, scenes
	world := ecs.NewWorld()
	mgr := scene.NewManager(world)
	anim := scene.NewAnimator(mgr)

	opts := scene.TransitionOptions{
		Duration: time.Duration(durationMs) * time.Millisecond,
		Easing:   easing,
	}
	pauseScene := func() scene.Scene { return pause.New(screenW, screenH) }
	gameScene := func() scene.Scene { return gameplay.New(pauseScene, screenW, screenH) }
	titleScene := title.New(anim, gameScene, opts, screenW, screenH)

	if err := mgr.LoadScene(titleScene); err != nil {
		log.Fatalf("Failed to load title scene: %v", err)
	}

	g := game.New(world, mgr, screenW, screenH)
	g.SetDT(1.0 / float64(cfg.Display.Framerate))

	ebiten.SetWindowSize(screenW*cfg.Display.Scale, screenH*cfg.Display.Scale)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetTPS(cfg.Display.Framerate)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
