package systems

import (
	"math/rand"

	"github.com/automoto/gunner/components"
	"github.com/automoto/gunner/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// tickContext bundles the run state each gameplay system mutates so the
// systems never reach for it through the entities themselves.
type tickContext struct {
	ecs     *ecs.ECS
	session *components.SessionData
	player  *donburi.Entry
	space   *resolv.Space
	rng     *rand.Rand
}

// newTickContext returns false until the session and player exist.
func newTickContext(e *ecs.ECS) (*tickContext, bool) {
	sessionEntry, ok := components.Session.First(e.World)
	if !ok {
		return nil, false
	}
	player, ok := tags.Player.First(e.World)
	if !ok {
		return nil, false
	}

	ctx := &tickContext{
		ecs:     e,
		session: components.Session.Get(sessionEntry),
		player:  player,
		rng:     components.Random.Get(sessionEntry).Rand,
	}
	if spaceEntry, ok := components.Space.First(e.World); ok {
		ctx.space = components.Space.Get(spaceEntry)
	}
	return ctx, true
}

func (c *tickContext) playerRect() components.Rect {
	return components.Object.Get(c.player).Rect()
}

// GetSession returns the run state, or nil before a run starts.
func GetSession(e *ecs.ECS) *components.SessionData {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return nil
	}
	return components.Session.Get(entry)
}
