package systems

import (
	"github.com/automoto/gunner/components"
	"github.com/automoto/gunner/tags"
	"github.com/solarlune/resolv"
)

// Every overlap test in the game uses the same rule: strict AABB overlap via
// components.Rect. Landing is the only test that also looks at motion: a body
// lands on a solid when it is not rising, overlaps it horizontally and its
// bottom edge crossed the solid's top edge during the tick. Solids are
// one-way, so bodies jump up through them.

// resolveLanding snaps obj onto the highest solid it landed on this tick.
// obj must already be at its new position; prevBottom is its bottom edge
// before the move.
func resolveLanding(obj *resolv.Object, phys *components.PhysicsData, prevBottom float64) bool {
	phys.OnGround = nil
	if phys.SpeedY < 0 {
		return false
	}

	check := obj.Check(0, 1, tags.ResolvSolid)
	if check == nil {
		return false
	}

	body := components.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
	var ground *resolv.Object
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		top := solid.Y
		if !body.OverlapsX(components.Rect{X: solid.X, Y: solid.Y, W: solid.W, H: solid.H}) {
			continue
		}
		if prevBottom > top || body.Bottom() < top {
			continue
		}
		if ground == nil || top < ground.Y {
			ground = solid
		}
	}
	if ground == nil {
		return false
	}

	obj.Y = ground.Y - obj.H
	obj.Update()
	phys.SpeedY = 0
	phys.OnGround = ground
	return true
}

// applyGravity accelerates a body downward up to the terminal speed.
func applyGravity(phys *components.PhysicsData, maxFall float64) {
	phys.SpeedY += phys.Gravity
	if phys.SpeedY > maxFall {
		phys.SpeedY = maxFall
	}
}

// overlapping returns the objects in the broadphase cells around obj that
// carry tag and strictly overlap it.
func overlapping(obj *resolv.Object, tag string) []*resolv.Object {
	check := obj.Check(0, 0, tag)
	if check == nil {
		return nil
	}
	body := components.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
	var hits []*resolv.Object
	for _, o := range check.ObjectsByTags(tag) {
		if body.Overlaps(components.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}) {
			hits = append(hits, o)
		}
	}
	return hits
}
