package systems

import (
	"testing"

	"github.com/automoto/gunner/components"
	cfg "github.com/automoto/gunner/config"
	"github.com/automoto/gunner/tags"
)

// settle runs player ticks with no input until the player stands on
// something.
func settle(t *testing.T, ctx *tickContext) {
	t.Helper()
	input := press(ctx.ecs)
	for i := 0; i < 120; i++ {
		updatePlayer(ctx, input)
		if components.Physics.Get(ctx.player).OnGround != nil {
			return
		}
	}
	t.Fatal("player never landed")
}

func TestPlayerLandsOnFloor(t *testing.T) {
	e := newTestRun(t, 1)
	ctx := mustContext(t, e)
	settle(t, ctx)

	obj := components.Object.Get(ctx.player).Object
	if bottom := obj.Y + obj.H; bottom != 650 {
		t.Errorf("bottom = %v, want 650", bottom)
	}
	if vy := components.Physics.Get(ctx.player).SpeedY; vy != 0 {
		t.Errorf("vy = %v, want 0", vy)
	}
	if !components.Player.Get(ctx.player).DoubleJumpReady {
		t.Error("double jump not restored on landing")
	}
}

func TestPlayerJumpAndDoubleJump(t *testing.T) {
	e := newTestRun(t, 1)
	ctx := mustContext(t, e)
	settle(t, ctx)

	player := components.Player.Get(ctx.player)
	physics := components.Physics.Get(ctx.player)
	g := cfg.Player.Gravity

	updatePlayer(ctx, press(e, cfg.ActionJump))
	if physics.SpeedY != -cfg.Player.JumpSpeed+g {
		t.Fatalf("vy after jump = %v, want %v", physics.SpeedY, -cfg.Player.JumpSpeed+g)
	}
	if physics.OnGround != nil {
		t.Fatal("still on ground after jumping")
	}

	// Holding jump is not a new press.
	updatePlayer(ctx, press(e, cfg.ActionJump))
	if !player.DoubleJumpReady {
		t.Fatal("held jump consumed the double jump")
	}

	updatePlayer(ctx, press(e))
	updatePlayer(ctx, press(e, cfg.ActionJump))
	want := -cfg.Player.JumpSpeed*cfg.Player.DoubleJumpFactor + g
	if physics.SpeedY != want {
		t.Fatalf("vy after double jump = %v, want %v", physics.SpeedY, want)
	}
	if player.DoubleJumpReady {
		t.Fatal("double jump still ready")
	}

	// A third press in the air does nothing.
	updatePlayer(ctx, press(e))
	before := physics.SpeedY
	updatePlayer(ctx, press(e, cfg.ActionJump))
	if physics.SpeedY != before+g {
		t.Errorf("vy = %v, want %v", physics.SpeedY, before+g)
	}
}

func TestPlayerMovesAndFaces(t *testing.T) {
	e := newTestRun(t, 1)
	ctx := mustContext(t, e)
	settle(t, ctx)

	obj := components.Object.Get(ctx.player).Object
	player := components.Player.Get(ctx.player)
	x := obj.X

	updatePlayer(ctx, press(e, cfg.ActionMoveLeft))
	if obj.X != x-cfg.Player.Speed {
		t.Errorf("x = %v, want %v", obj.X, x-cfg.Player.Speed)
	}
	if player.Facing != cfg.DirectionLeft {
		t.Errorf("facing = %v, want left", player.Facing)
	}

	// The level edge stops the player.
	for i := 0; i < 100; i++ {
		updatePlayer(ctx, press(e, cfg.ActionMoveLeft))
	}
	if obj.X != 0 {
		t.Errorf("x = %v, want 0", obj.X)
	}
}

func TestShootSpawnsAndCoolsDown(t *testing.T) {
	e := newTestRun(t, 1)
	ctx := mustContext(t, e)
	settle(t, ctx)

	obj := components.Object.Get(ctx.player).Object
	player := components.Player.Get(ctx.player)

	if !Shoot(e, ctx.player) {
		t.Fatal("first shot failed")
	}
	shots := entries(e, tags.Projectile)
	if len(shots) != 1 {
		t.Fatalf("projectiles = %d, want 1", len(shots))
	}
	p := components.Projectile.Get(shots[0])
	if p.X != obj.X+40 || p.Y != obj.Y+25 {
		t.Errorf("spawned at (%v, %v), want (%v, %v)", p.X, p.Y, obj.X+40, obj.Y+25)
	}
	if p.VelX != 10 || p.Damage != 10 || p.Lifetime != 180 {
		t.Errorf("projectile %+v", p)
	}
	if player.ShootCooldown != 20 {
		t.Errorf("cooldown = %d, want 20", player.ShootCooldown)
	}

	if Shoot(e, ctx.player) {
		t.Error("fired during cooldown")
	}

	player.ShootCooldown = 0
	player.Facing = cfg.DirectionLeft
	Shoot(e, ctx.player)
	for _, entry := range entries(e, tags.Projectile) {
		if p := components.Projectile.Get(entry); p.VelX < 0 && p.X != obj.X-10 {
			t.Errorf("left shot at x=%v, want %v", p.X, obj.X-10)
		}
	}
}

func TestHoldingShootFiresAtWeaponRate(t *testing.T) {
	e := newTestRun(t, 1)
	ctx := mustContext(t, e)
	settle(t, ctx)

	for i := 0; i < 21; i++ {
		updatePlayer(ctx, press(e, cfg.ActionShoot))
	}
	if n := len(entries(e, tags.Projectile)); n != 2 {
		t.Errorf("projectiles = %d, want 2", n)
	}
}

func TestSwitchWeaponCycles(t *testing.T) {
	e := newTestRun(t, 1)
	ctx := mustContext(t, e)
	player := components.Player.Get(ctx.player)

	updatePlayer(ctx, press(e, cfg.ActionSwitchWeapon))
	if player.Equipped != 0 {
		t.Fatalf("equipped = %d with one weapon", player.Equipped)
	}

	player.Weapons = append(player.Weapons, components.NewWeapon(cfg.Weapon.Catalog[1]))
	updatePlayer(ctx, press(e))
	updatePlayer(ctx, press(e, cfg.ActionSwitchWeapon))
	if player.Equipped != 1 {
		t.Errorf("equipped = %d, want 1", player.Equipped)
	}
	updatePlayer(ctx, press(e))
	updatePlayer(ctx, press(e, cfg.ActionSwitchWeapon))
	if player.Equipped != 0 {
		t.Errorf("equipped = %d, want 0", player.Equipped)
	}
}

func TestFallingOffEndsRun(t *testing.T) {
	e := newTestRun(t, 1)
	ctx := mustContext(t, e)

	obj := components.Object.Get(ctx.player).Object
	obj.Y = 730
	obj.Update()
	updatePlayer(ctx, press(e))

	if !ctx.session.GameOver {
		t.Error("run not over")
	}
	if hp := components.Health.Get(ctx.player).Current; hp != 0 {
		t.Errorf("health = %d, want 0", hp)
	}
}

func TestDamagePlayerClampsAndEndsRun(t *testing.T) {
	e := newTestRun(t, 1)
	health := components.Health.Get(playerEntry(t, e))

	DamagePlayer(e, 30)
	if health.Current != 70 || GetSession(e).GameOver {
		t.Fatalf("health = %d gameOver = %v", health.Current, GetSession(e).GameOver)
	}
	DamagePlayer(e, 250)
	if health.Current != 0 {
		t.Errorf("health = %d, want 0", health.Current)
	}
	if !GetSession(e).GameOver {
		t.Error("run not over")
	}
}
