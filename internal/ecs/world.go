package ecs

import (
	"github.com/younwookim/sceneflow/internal/event"
)

// EntityID is a unique identifier for an entity (never recycled)
type EntityID uint64

// World holds component maps, named resources and the event bus.
//
// Scenes receive the world in their lifecycle hooks. Every entity a
// scene spawns carries that scene's id in the SceneOwner tag, which is
// how the lifecycle driver knows what to destroy when the scene unloads.
type World struct {
	nextID EntityID

	// Components
	Position map[EntityID]Position
	Velocity map[EntityID]Velocity
	Visual   map[EntityID]Visual

	// SceneOwner tags an entity with the id of the scene that owns it
	SceneOwner map[EntityID]string

	// Events is the process-wide lifecycle bus
	Events *event.Bus

	resources map[string]any
}

// NewWorld creates a new empty world with its own event bus
func NewWorld() *World {
	return &World{
		nextID:     1, // 0 is "nil"
		Position:   make(map[EntityID]Position),
		Velocity:   make(map[EntityID]Velocity),
		Visual:     make(map[EntityID]Visual),
		SceneOwner: make(map[EntityID]string),
		Events:     event.NewBus(),
		resources:  make(map[string]any),
	}
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// SpawnOwned creates an entity tagged as owned by the given scene
func (w *World) SpawnOwned(sceneID string) EntityID {
	id := w.NewEntity()
	w.SceneOwner[id] = sceneID
	return id
}

// DestroyEntity removes all components for an entity
func (w *World) DestroyEntity(id EntityID) {
	delete(w.Position, id)
	delete(w.Velocity, id)
	delete(w.Visual, id)
	delete(w.SceneOwner, id)
}

// DestroySceneEntities destroys every entity owned by the given scene
// and returns how many were removed
func (w *World) DestroySceneEntities(sceneID string) int {
	var doomed []EntityID
	for id, owner := range w.SceneOwner {
		if owner == sceneID {
			doomed = append(doomed, id)
		}
	}
	for _, id := range doomed {
		w.DestroyEntity(id)
	}
	return len(doomed)
}

// Exists checks if an entity has any component
func (w *World) Exists(id EntityID) bool {
	if _, ok := w.Position[id]; ok {
		return true
	}
	if _, ok := w.Velocity[id]; ok {
		return true
	}
	if _, ok := w.Visual[id]; ok {
		return true
	}
	_, ok := w.SceneOwner[id]
	return ok
}

// EntityCount returns the number of scene-owned entities
func (w *World) EntityCount() int {
	return len(w.SceneOwner)
}

// RegisterResource stores a named singleton on the world. The scene
// manager registers itself this way so systems can look it up without
// holding a direct reference.
func (w *World) RegisterResource(name string, res any) {
	w.resources[name] = res
}

// Resource retrieves a named resource, or nil if absent
func (w *World) Resource(name string) any {
	return w.resources[name]
}

// RemoveResource deletes a named resource
func (w *World) RemoveResource(name string) {
	delete(w.resources, name)
}
