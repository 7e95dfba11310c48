package systems

import (
	"github.com/automoto/gunner/components"
	"github.com/automoto/gunner/systems/factory"
	"github.com/automoto/gunner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSweep removes dead enemies and credits their rewards.
func UpdateSweep(e *ecs.ECS) {
	ctx, ok := newTickContext(e)
	if !ok {
		return
	}
	sweepDeadEnemies(ctx)
}

func sweepDeadEnemies(ctx *tickContext) {
	var dead []*donburi.Entry
	tags.Enemy.Each(ctx.ecs.World, func(entry *donburi.Entry) {
		if components.Health.Get(entry).Dead() {
			dead = append(dead, entry)
		}
	})

	for _, entry := range dead {
		enemy := components.Enemy.Get(entry)
		ctx.session.Coins += enemy.Stats.CoinValue
		ctx.session.Score += enemy.Stats.ScoreValue

		if boss := ctx.session.Boss; boss != nil && boss.Entity() == entry.Entity() {
			ctx.session.Boss = nil
		}
		factory.Destroy(ctx.ecs, entry)
	}
}
