package systems

import (
	"image/color"

	"github.com/automoto/gunner/components"
	cfg "github.com/automoto/gunner/config"
	"github.com/automoto/gunner/fonts"
	"github.com/automoto/gunner/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawLevel renders the background, platforms and checkpoints.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Level.BackgroundColor)

	tags.Platform.Each(e.World, func(entry *donburi.Entry) {
		platform := components.Platform.Get(entry)
		fillRect(screen, components.Object.Get(entry).Rect(), platform.Color)
	})

	tags.Checkpoint.Each(e.World, func(entry *donburi.Entry) {
		c := cfg.Level.CheckpointColor
		if components.Checkpoint.Get(entry).Active {
			c = cfg.Level.CheckpointOnColor
		}
		fillRect(screen, components.Object.Get(entry).Rect(), c)
	})
}

// DrawEntities renders the player, enemies, the boss and every projectile.
func DrawEntities(e *ecs.ECS, screen *ebiten.Image) {
	tags.Projectile.Each(e.World, func(entry *donburi.Entry) {
		drawProjectile(screen, components.Projectile.Get(entry))
	})

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		r := components.Object.Get(entry).Rect()
		fillRect(screen, r, enemy.Stats.Color)

		if entry.HasComponent(components.Boss) {
			boss := components.Boss.Get(entry)
			for i := range boss.Projectiles {
				drawProjectile(screen, &boss.Projectiles[i])
			}
			return
		}

		// Regular enemies carry a small bar over their heads.
		hp := components.Health.Get(entry)
		drawBar(screen, r.X, r.Y-cfg.UI.EnemyBarGap, r.W, cfg.UI.EnemyBarHeight, hp.Ratio())
	})

	if playerEntry, ok := tags.Player.First(e.World); ok {
		drawPlayer(screen, playerEntry)
	}
}

func drawPlayer(screen *ebiten.Image, entry *donburi.Entry) {
	player := components.Player.Get(entry)
	r := components.Object.Get(entry).Rect()
	fillRect(screen, r, cfg.Player.Color)

	gun := components.Rect{X: r.Right(), Y: r.Y + 20, W: 30, H: 10}
	if player.Facing == cfg.DirectionLeft {
		gun.X = r.X - 20
	}
	fillRect(screen, gun, cfg.Player.WeaponColor)
}

func drawProjectile(screen *ebiten.Image, p *components.ProjectileData) {
	vector.FillCircle(screen, float32(p.X), float32(p.Y), float32(p.Size), p.Color, true)
}

func fillRect(screen *ebiten.Image, r components.Rect, c color.Color) {
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s)
	return int((screenWidth - float64(bounds.Dx())) / 2)
}

// drawMenuOptions renders a vertical, centred list with one highlighted row.
func drawMenuOptions(screen *ebiten.Image, options []string, selected int, startY, itemHeight, gap float64, normal, highlight color.Color) {
	face := fonts.Bold.Get()
	width := float64(screen.Bounds().Dx())
	for i, option := range options {
		y := startY + float64(i)*(itemHeight+gap)
		c := normal
		if i == selected {
			c = highlight
		}
		text.Draw(screen, option, face, centerTextX(option, face, width), int(y+itemHeight), c)
	}
}
