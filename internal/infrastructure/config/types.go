package config

// EngineConfig holds all loaded configuration
type EngineConfig struct {
	Display    DisplayConfig    `json:"display"`
	Transition TransitionConfig `json:"transition"`
}

// DisplayConfig holds window and tick settings
type DisplayConfig struct {
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Scale        int    `json:"scale"`
	Framerate    int    `json:"framerate"`
	Title        string `json:"title"`
}

// TransitionConfig holds the default animated-transition settings
type TransitionConfig struct {
	DurationMs int    `json:"durationMs"`
	Easing     string `json:"easing"`
}
