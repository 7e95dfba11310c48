package systems

import (
	"testing"

	"github.com/automoto/gunner/components"
	"github.com/automoto/gunner/tags"
	"github.com/yohamta/donburi"
)

func TestLevelKey(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "level_1"},
		{2, "level_2"},
		{3, "boss_1"},
		{4, "level_4"},
		{6, "boss_2"},
	}
	for _, tt := range tests {
		if got := LevelKey(tt.n); got != tt.want {
			t.Errorf("LevelKey(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestLoadLevelReplacesGeometry(t *testing.T) {
	e := newTestRun(t, 1)

	level, err := LoadLevel(e, "level_2")
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	if level.Layout != "level_2" {
		t.Errorf("layout = %q", level.Layout)
	}
	if n := len(entries(e, tags.Platform)); n != 7 {
		t.Errorf("platforms = %d, want 7", n)
	}
	if n := len(entries(e, tags.Checkpoint)); n != 2 {
		t.Errorf("checkpoints = %d, want 2", n)
	}

	if _, err := LoadLevel(e, "level_1"); err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	if n := len(entries(e, tags.Platform)); n != 4 {
		t.Errorf("platforms = %d, want 4", n)
	}
	if n := len(entries(e, tags.Checkpoint)); n != 1 {
		t.Errorf("checkpoints = %d, want 1", n)
	}

	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		t.Fatal("no space")
	}
	space := components.Space.Get(spaceEntry)
	if n := len(space.Objects()); n != 4+1+1+5 {
		// floor and platforms, checkpoint, player, level 1 wave
		t.Errorf("space holds %d objects, want 11", n)
	}
}

func TestLoadLevelFallsBackToDefault(t *testing.T) {
	e := newTestRun(t, 1)

	level, err := LoadLevel(e, "level_99")
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	if level.Key != "level_99" || level.Layout != "default" {
		t.Errorf("key=%q layout=%q", level.Key, level.Layout)
	}
	platforms := entries(e, tags.Platform)
	if len(platforms) != 1 {
		t.Fatalf("platforms = %d, want 1", len(platforms))
	}
	floor := components.Object.Get(platforms[0]).Rect()
	if floor != (components.Rect{X: 0, Y: 650, W: 1280, H: 70}) {
		t.Errorf("floor = %+v", floor)
	}
}

func TestMovingPlatformReverses(t *testing.T) {
	e := newTestRun(t, 2)

	var moving *donburi.Entry
	tags.Platform.Each(e.World, func(entry *donburi.Entry) {
		if components.Platform.Get(entry).Moving {
			moving = entry
		}
	})
	if moving == nil {
		t.Fatal("level 2 has no moving platform")
	}
	obj := components.Object.Get(moving).Object
	platform := components.Platform.Get(moving)

	updateMovingPlatforms(e)
	if obj.X != 402 {
		t.Fatalf("x = %v, want 402", obj.X)
	}

	obj.X = 800
	updateMovingPlatforms(e)
	if obj.X != 802 || platform.Direction != -1 {
		t.Fatalf("x = %v dir = %v, want 802 and -1", obj.X, platform.Direction)
	}
	updateMovingPlatforms(e)
	if obj.X != 800 {
		t.Errorf("x = %v, want 800", obj.X)
	}
}

func TestCheckpointLatchesOnce(t *testing.T) {
	e := newTestRun(t, 1)
	ctx := mustContext(t, e)

	obj := components.Object.Get(ctx.player).Object
	obj.X, obj.Y = 905, 590
	obj.Update()

	updateCheckpoints(ctx)
	if ctx.session.CheckpointX != 900 || ctx.session.CheckpointY != 520 {
		t.Fatalf("checkpoint = (%v, %v), want (900, 520)", ctx.session.CheckpointX, ctx.session.CheckpointY)
	}
	cp := components.Checkpoint.Get(entries(e, tags.Checkpoint)[0])
	if !cp.Active {
		t.Error("checkpoint not active")
	}

	// Touching an active checkpoint again does not move the respawn point.
	ctx.session.CheckpointX, ctx.session.CheckpointY = 1, 1
	updateCheckpoints(ctx)
	if ctx.session.CheckpointX != 1 || ctx.session.CheckpointY != 1 {
		t.Errorf("respawn moved to (%v, %v)", ctx.session.CheckpointX, ctx.session.CheckpointY)
	}
}

func TestCheckpointNeedsOverlap(t *testing.T) {
	e := newTestRun(t, 1)
	ctx := mustContext(t, e)

	obj := components.Object.Get(ctx.player).Object
	// Standing right next to the checkpoint.
	obj.X, obj.Y = 860, 590
	obj.Update()

	updateCheckpoints(ctx)
	if ctx.session.CheckpointX != 100 || ctx.session.CheckpointY != 500 {
		t.Errorf("checkpoint = (%v, %v), want the start", ctx.session.CheckpointX, ctx.session.CheckpointY)
	}
}
