// Package config loads engine configuration from JSON files.
package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/younwookim/sceneflow/internal/tween"
)

// Loader loads engine configuration from JSON files using fs.FS interface
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a new config loader from a filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{fsys: os.DirFS(basePath)}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadEngine loads engine.json and validates it
func (l *Loader) LoadEngine() (*EngineConfig, error) {
	data, err := fs.ReadFile(l.fsys, "engine.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read engine.json: %w", err)
	}

	var cfg EngineConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse engine.json: %w", err)
	}

	if cfg.Display.ScreenWidth <= 0 || cfg.Display.ScreenHeight <= 0 {
		return nil, fmt.Errorf("engine.json: invalid screen size %dx%d",
			cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	}
	if cfg.Display.Framerate <= 0 {
		cfg.Display.Framerate = 60
	}
	if cfg.Display.Scale <= 0 {
		cfg.Display.Scale = 1
	}
	if cfg.Transition.Easing != "" {
		if _, ok := tween.ByName(cfg.Transition.Easing); !ok {
			return nil, fmt.Errorf("engine.json: unknown easing %q", cfg.Transition.Easing)
		}
	}

	return &cfg, nil
}
