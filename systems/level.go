package systems

import (
	"errors"
	"fmt"
	"log"

	"github.com/automoto/gunner/assets"
	"github.com/automoto/gunner/components"
	cfg "github.com/automoto/gunner/config"
	"github.com/automoto/gunner/systems/factory"
	"github.com/automoto/gunner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LevelKey maps a level number to its layout key. Every BossEvery-th level
// is a boss arena.
func LevelKey(n int) string {
	if every := cfg.Level.BossEvery; every > 0 && n%every == 0 {
		return fmt.Sprintf("boss_%d", n/every)
	}
	return fmt.Sprintf("level_%d", n)
}

// LoadLevel replaces the level geometry with the layout stored under key.
// Unknown keys load the default layout. The new layout is fully parsed
// before anything in the world is touched.
func LoadLevel(e *ecs.ECS, key string) (*components.LevelData, error) {
	layout, err := assets.LoadLayout(key)
	if errors.Is(err, assets.ErrUnknownLayout) {
		log.Printf("Warning: no layout for %q, using %q", key, cfg.Level.DefaultLayout)
		layout, err = assets.LoadLayout(cfg.Level.DefaultLayout)
	}
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", key, err)
	}

	var old []*donburi.Entry
	tags.Platform.Each(e.World, func(entry *donburi.Entry) {
		old = append(old, entry)
	})
	tags.Checkpoint.Each(e.World, func(entry *donburi.Entry) {
		old = append(old, entry)
	})
	for _, entry := range old {
		factory.Destroy(e, entry)
	}

	level := factory.BuildLevel(e, key, layout)
	return components.Level.Get(level), nil
}

// UpdateLevel moves the moving platforms and activates checkpoints.
func UpdateLevel(e *ecs.ECS) {
	updateMovingPlatforms(e)

	ctx, ok := newTickContext(e)
	if !ok {
		return
	}
	updateCheckpoints(ctx)
}

func updateMovingPlatforms(e *ecs.ECS) {
	tags.Platform.Each(e.World, func(entry *donburi.Entry) {
		platform := components.Platform.Get(entry)
		if !platform.Moving {
			return
		}
		obj := components.Object.Get(entry).Object
		obj.X += platform.Direction * cfg.Level.MovingPlatformSpeed
		if obj.X > cfg.Level.MovingPlatformMaxX || obj.X < cfg.Level.MovingPlatformMinX {
			platform.Direction = -platform.Direction
		}
		obj.Update()
	})
}

// updateCheckpoints latches every checkpoint the player touches. Only a
// newly latched checkpoint moves the respawn point.
func updateCheckpoints(ctx *tickContext) {
	obj := components.Object.Get(ctx.player).Object
	for _, o := range overlapping(obj, tags.ResolvCheckpoint) {
		entry, ok := o.Data.(*donburi.Entry)
		if !ok || entry == nil || !entry.Valid() {
			continue
		}
		if components.Checkpoint.Get(entry).Activate() {
			ctx.session.CheckpointX = o.X
			ctx.session.CheckpointY = o.Y - cfg.Level.RespawnOffsetY
		}
	}
}
