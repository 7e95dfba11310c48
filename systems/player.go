package systems

import (
	"github.com/automoto/gunner/components"
	cfg "github.com/automoto/gunner/config"
	"github.com/automoto/gunner/systems/factory"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePlayer(e *ecs.ECS) {
	ctx, ok := newTickContext(e)
	if !ok {
		return
	}
	updatePlayer(ctx, getOrCreateInput(e))
}

func updatePlayer(ctx *tickContext, input *components.InputData) {
	player := components.Player.Get(ctx.player)
	physics := components.Physics.Get(ctx.player)
	obj := components.Object.Get(ctx.player).Object

	if player.ShootCooldown > 0 {
		player.ShootCooldown--
	}

	handleMovementInput(input, player, physics)
	handleJumpInput(input, player, physics)

	applyGravity(physics, cfg.Physics.MaxFallSpeed)

	prevBottom := obj.Y + obj.H
	obj.X += physics.SpeedX
	obj.Y += physics.SpeedY
	clampToLevel(ctx, obj)
	obj.Update()

	if resolveLanding(obj, physics, prevBottom) && cfg.Player.DoubleJumpEnabled {
		player.DoubleJumpReady = true
	}

	if obj.Y > float64(cfg.C.Height) {
		killPlayer(ctx)
		return
	}

	if GetAction(input, cfg.ActionSwitchWeapon).JustPressed && len(player.Weapons) > 1 {
		player.Equipped = (player.Equipped + 1) % len(player.Weapons)
	}

	if GetAction(input, cfg.ActionShoot).Pressed {
		Shoot(ctx.ecs, ctx.player)
	}
}

func handleMovementInput(input *components.InputData, player *components.PlayerData, physics *components.PhysicsData) {
	physics.SpeedX = 0
	if GetAction(input, cfg.ActionMoveLeft).Pressed {
		physics.SpeedX = -cfg.Player.Speed
		player.Facing = cfg.DirectionLeft
	}
	if GetAction(input, cfg.ActionMoveRight).Pressed {
		physics.SpeedX = cfg.Player.Speed
		player.Facing = cfg.DirectionRight
	}
}

func handleJumpInput(input *components.InputData, player *components.PlayerData, physics *components.PhysicsData) {
	if !GetAction(input, cfg.ActionJump).JustPressed {
		return
	}

	if physics.OnGround != nil {
		physics.SpeedY = -cfg.Player.JumpSpeed
		physics.OnGround = nil
		player.DoubleJumpReady = cfg.Player.DoubleJumpEnabled
		return
	}

	if cfg.Player.DoubleJumpEnabled && player.DoubleJumpReady {
		physics.SpeedY = -cfg.Player.JumpSpeed * cfg.Player.DoubleJumpFactor
		player.DoubleJumpReady = false
	}
}

// clampToLevel keeps the player inside the level horizontally.
func clampToLevel(ctx *tickContext, obj *resolv.Object) {
	width := float64(cfg.C.Width)
	if level, ok := components.Level.First(ctx.ecs.World); ok {
		if w := components.Level.Get(level).Width; w > 0 {
			width = w
		}
	}
	if obj.X < 0 {
		obj.X = 0
	}
	if obj.X > width-obj.W {
		obj.X = width - obj.W
	}
}

// Shoot fires the equipped weapon. It does nothing while the cooldown runs.
func Shoot(e *ecs.ECS, playerEntry *donburi.Entry) bool {
	player := components.Player.Get(playerEntry)
	if player.ShootCooldown > 0 {
		return false
	}
	weapon := player.CurrentWeapon()
	if weapon == nil {
		return false
	}
	obj := components.Object.Get(playerEntry).Object

	x := obj.X + cfg.Projectile.OffsetRight
	if player.Facing == cfg.DirectionLeft {
		x = obj.X + cfg.Projectile.OffsetLeft
	}

	factory.CreateProjectile(e, components.ProjectileData{
		X:        x,
		Y:        obj.Y + cfg.Projectile.OffsetY,
		VelX:     weapon.Speed * player.Facing,
		Damage:   weapon.Damage,
		Size:     weapon.BulletSize,
		Color:    weapon.BulletColor,
		Lifetime: cfg.Projectile.Lifetime,
	})

	player.ShootCooldown = weapon.Cooldown
	return true
}

// DamagePlayer applies damage and ends the run when health reaches zero.
func DamagePlayer(e *ecs.ECS, amount int) {
	ctx, ok := newTickContext(e)
	if !ok {
		return
	}
	damagePlayer(ctx, amount)
}

func damagePlayer(ctx *tickContext, amount int) {
	health := components.Health.Get(ctx.player)
	health.Damage(amount)
	if health.Dead() {
		ctx.session.GameOver = true
	}
}

func killPlayer(ctx *tickContext) {
	health := components.Health.Get(ctx.player)
	health.Current = 0
	ctx.session.GameOver = true
}
