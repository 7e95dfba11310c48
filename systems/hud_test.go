package systems

import (
	"testing"
)

func TestCoinCounterRollsToTotal(t *testing.T) {
	e := newTestRun(t, 1)
	hud := getHUD(e)

	GetSession(e).Coins = 100
	UpdateHUD(e)
	if hud.DisplayedCoins <= 0 || hud.DisplayedCoins >= 100 {
		t.Fatalf("displayed = %v after one tick", hud.DisplayedCoins)
	}

	for i := 0; i < 120; i++ {
		UpdateHUD(e)
	}
	if hud.DisplayedCoins != 100 || hud.CoinTween != nil {
		t.Errorf("displayed = %v tween = %v", hud.DisplayedCoins, hud.CoinTween)
	}
}

func TestBannerFadesOut(t *testing.T) {
	e := newTestRun(t, 1)
	hud := getHUD(e)

	UpdateHUD(e)
	if hud.BannerAlpha >= 1 || hud.BannerAlpha <= 0 {
		t.Fatalf("alpha = %v after one tick", hud.BannerAlpha)
	}
	for i := 0; i < 200; i++ {
		UpdateHUD(e)
	}
	if hud.BannerAlpha != 0 || hud.BannerTween != nil {
		t.Errorf("alpha = %v", hud.BannerAlpha)
	}
}
