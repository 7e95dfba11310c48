package systems

import (
	"testing"

	"github.com/automoto/gunner/components"
	cfg "github.com/automoto/gunner/config"
	"github.com/automoto/gunner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// newTestRun builds a world the way the world scene does, with a fixed seed.
func newTestRun(t *testing.T, level int) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	StartRun(e, level, 1)
	return e
}

func mustContext(t *testing.T, e *ecs.ECS) *tickContext {
	t.Helper()
	ctx, ok := newTickContext(e)
	if !ok {
		t.Fatal("world has no session or player")
	}
	return ctx
}

// press starts a new input frame with exactly the given actions held.
func press(e *ecs.ECS, actions ...cfg.ActionID) *components.InputData {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, a := range actions {
		input.Current[a] = true
	}
	return input
}

func entries(e *ecs.ECS, tag donburi.IComponentType) []*donburi.Entry {
	var out []*donburi.Entry
	donburi.NewQuery(filter.Contains(tag)).Each(e.World, func(entry *donburi.Entry) {
		out = append(out, entry)
	})
	return out
}

func enemiesOfKind(e *ecs.ECS, kind components.EnemyKind) []*donburi.Entry {
	var out []*donburi.Entry
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		if components.Enemy.Get(entry).Kind == kind {
			out = append(out, entry)
		}
	})
	return out
}

func playerEntry(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	p, ok := tags.Player.First(e.World)
	if !ok {
		t.Fatal("no player")
	}
	return p
}
