package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HUDData holds the animated parts of the HUD.
type HUDData struct {
	// Coin counter rolls toward the session total.
	CoinTween      *gween.Tween
	DisplayedCoins float32
	TargetCoins    int

	// Level banner fades out after a level starts.
	BannerTween *gween.Tween
	BannerAlpha float32
	BannerText  string
}

var HUD = donburi.NewComponentType[HUDData]()
