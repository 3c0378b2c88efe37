package ecs

// Position is an entity's location in screen pixels
type Position struct {
	X, Y float64
}

// Velocity is an entity's movement in pixels per second
type Velocity struct {
	VX, VY float64
}

// Visual carries the minimal data the demo scenes need to draw an
// entity as a colored rectangle
type Visual struct {
	W, H    float64
	R, G, B uint8
}
