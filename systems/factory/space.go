package factory

import (
	"github.com/automoto/gunner/archetypes"
	"github.com/automoto/gunner/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the collision space singleton. Objects created before
// it exists are not tracked.
func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	entry := archetypes.Space.Spawn(ecs)
	components.Space.Set(entry, resolv.NewSpace(width, height, cellWidth, cellHeight))
	return entry
}

// attachBody gives entry a rectangular collision object at (x, y) and
// registers it with the space.
func attachBody(ecs *ecs.ECS, entry *donburi.Entry, x, y, w, h float64, tag string) *resolv.Object {
	obj := resolv.NewObject(x, y, w, h, tag)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)
	return obj
}

// addToSpace registers obj with the world's collision space, if one exists.
func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}

// Destroy removes an entity and its collision object.
func Destroy(ecs *ecs.ECS, entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	if entry.HasComponent(components.Object) {
		obj := components.Object.Get(entry)
		if obj != nil && obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	ecs.World.Remove(entry.Entity())
}
