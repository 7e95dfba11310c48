package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/gunner/components"
	cfg "github.com/automoto/gunner/config"
	"github.com/automoto/gunner/fonts"
	"github.com/automoto/gunner/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

func tickSeconds() float32 {
	return 1 / float32(ebiten.TPS())
}

func getHUD(e *ecs.ECS) *components.HUDData {
	entry, ok := components.HUD.First(e.World)
	if !ok {
		return nil
	}
	return components.HUD.Get(entry)
}

// UpdateHUD advances the coin counter and the level banner.
func UpdateHUD(e *ecs.ECS) {
	hud := getHUD(e)
	session := GetSession(e)
	if hud == nil || session == nil {
		return
	}
	dt := tickSeconds()

	if session.Coins != hud.TargetCoins {
		hud.TargetCoins = session.Coins
		hud.CoinTween = gween.New(hud.DisplayedCoins, float32(session.Coins), cfg.UI.CoinTweenSeconds, ease.OutQuad)
	}
	if hud.CoinTween != nil {
		v, done := hud.CoinTween.Update(dt)
		hud.DisplayedCoins = v
		if done {
			hud.CoinTween = nil
		}
	}

	if hud.BannerTween != nil {
		v, done := hud.BannerTween.Update(dt)
		hud.BannerAlpha = v
		if done {
			hud.BannerTween = nil
			hud.BannerAlpha = 0
		}
	}
}

// ShowBanner displays msg in the middle of the screen and fades it out.
func ShowBanner(e *ecs.ECS, msg string) {
	hud := getHUD(e)
	if hud == nil {
		return
	}
	seconds := float32(cfg.Level.BannerFrames) / float32(ebiten.TPS())
	hud.BannerText = msg
	hud.BannerAlpha = 1
	hud.BannerTween = gween.New(1, 0, seconds, ease.InQuad)
}

// DrawHUD renders the player's status, the run totals and the boss bar.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	session := GetSession(e)
	playerEntry, ok := tags.Player.First(e.World)
	if session == nil || !ok {
		return
	}
	ui := cfg.UI
	hp := components.Health.Get(playerEntry)
	player := components.Player.Get(playerEntry)

	drawBar(screen, ui.HealthBarX, ui.HealthBarY, ui.HealthBarWidth, ui.HealthBarHeight, hp.Ratio())

	face := fonts.Regular.Get()
	small := fonts.Small.Get()
	y := int(ui.HealthBarY + ui.HealthBarHeight + 24)

	coins := session.Coins
	if hud := getHUD(e); hud != nil && hud.CoinTween != nil {
		coins = int(hud.DisplayedCoins + 0.5)
	}
	text.Draw(screen, fmt.Sprintf("Coins: %d", coins), face, int(ui.HealthBarX), y, ui.CoinColor)
	text.Draw(screen, fmt.Sprintf("Score: %d", session.Score), face, int(ui.HealthBarX), y+24, ui.TextColor)
	text.Draw(screen, fmt.Sprintf("Level: %d", session.CurrentLevel), face, int(ui.HealthBarX), y+48, ui.TextColor)

	if w := player.CurrentWeapon(); w != nil {
		label := fmt.Sprintf("%s Lv.%d", w.Name, w.UpgradeLevel)
		text.Draw(screen, label, face, int(ui.HealthBarX), y+72, ui.WeaponTextColor)
	}

	width := float64(screen.Bounds().Dx())
	hint := "E: Shop   Q: Switch Weapon"
	text.Draw(screen, hint, small, int(width)-len(hint)*8-20, int(ui.HealthBarY)+14, ui.TextColor)

	drawBossBar(e, screen)
	drawBanner(e, screen)
}

func drawBossBar(e *ecs.ECS, screen *ebiten.Image) {
	session := GetSession(e)
	if session.Boss == nil || !session.Boss.Valid() {
		return
	}
	ui := cfg.UI
	hp := components.Health.Get(session.Boss)
	boss := components.Boss.Get(session.Boss)

	drawBar(screen, ui.BossBarX, ui.BossBarY, ui.BossBarWidth, ui.BossBarHeight, hp.Ratio())
	label := fmt.Sprintf("BOSS  Phase %d", boss.Phase)
	text.Draw(screen, label, fonts.Regular.Get(), int(ui.BossBarX), int(ui.BossBarY)-6, ui.TextColor)
}

func drawBanner(e *ecs.ECS, screen *ebiten.Image) {
	hud := getHUD(e)
	if hud == nil || hud.BannerAlpha <= 0 || hud.BannerText == "" {
		return
	}
	face := fonts.Title.Get()
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	c := cfg.UI.TextColor
	c.A = uint8(255 * clamp01(float64(hud.BannerAlpha)))
	x := centerTextX(hud.BannerText, face, width)
	text.Draw(screen, hud.BannerText, face, x, int(height/3), premultiply(c))
}

// drawBar draws a red background with a green fill proportional to ratio.
func drawBar(screen *ebiten.Image, x, y, w, h, ratio float64) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), cfg.UI.HealthBarBgColor, false)
	vector.FillRect(screen, float32(x), float32(y), float32(w*clamp01(ratio)), float32(h), cfg.UI.HealthBarFgColor, false)
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// premultiply scales the color channels by alpha, as ebiten expects.
func premultiply(c color.RGBA) color.RGBA {
	a := uint16(c.A)
	return color.RGBA{
		R: uint8(uint16(c.R) * a / 255),
		G: uint8(uint16(c.G) * a / 255),
		B: uint8(uint16(c.B) * a / 255),
		A: c.A,
	}
}
