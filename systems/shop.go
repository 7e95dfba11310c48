package systems

import (
	"fmt"

	"github.com/automoto/gunner/components"
	cfg "github.com/automoto/gunner/config"
	"github.com/automoto/gunner/tags"
	"github.com/yohamta/donburi/ecs"
)

// BuyWeapon buys catalog entry index. It fails without touching anything
// when the index is out of range or the player cannot afford it; on success
// the price is debited and a fresh copy of the weapon is equipped.
func BuyWeapon(session *components.SessionData, player *components.PlayerData, index int) bool {
	if index < 0 || index >= len(cfg.Weapon.Catalog) {
		return false
	}
	weapon := components.NewWeapon(cfg.Weapon.Catalog[index])
	if session.Coins < weapon.Price {
		return false
	}

	session.Coins -= weapon.Price
	player.Weapons = append(player.Weapons, weapon)
	player.Equipped = len(player.Weapons) - 1
	return true
}

// UpgradeWeapon upgrades owned weapon index in place, under the same rules
// as BuyWeapon.
func UpgradeWeapon(session *components.SessionData, player *components.PlayerData, index int) bool {
	if index < 0 || index >= len(player.Weapons) {
		return false
	}
	weapon := &player.Weapons[index]
	if session.Coins < weapon.Price {
		return false
	}

	session.Coins -= weapon.Price
	weapon.Upgrade()
	return true
}

func getShop(e *ecs.ECS) *components.ShopData {
	entry, ok := components.Shop.First(e.World)
	if !ok {
		return nil
	}
	return components.Shop.Get(entry)
}

func IsShopOpen(e *ecs.ECS) bool {
	shop := getShop(e)
	return shop != nil && shop.IsOpen
}

func ToggleShop(e *ecs.ECS) {
	shop := getShop(e)
	if shop == nil {
		return
	}
	shop.IsOpen = !shop.IsOpen
	shop.Message = ""
}

// Buy runs BuyWeapon for the current player and reports the outcome in the
// shop message.
func Buy(e *ecs.ECS, index int) bool {
	ctx, ok := newTickContext(e)
	shop := getShop(e)
	if !ok || shop == nil {
		return false
	}
	player := components.Player.Get(ctx.player)
	if !BuyWeapon(ctx.session, player, index) {
		shop.Message = "Not enough coins"
		return false
	}
	shop.Message = fmt.Sprintf("Bought %s", player.CurrentWeapon().Name)
	return true
}

// Upgrade runs UpgradeWeapon on the equipped weapon.
func Upgrade(e *ecs.ECS) bool {
	ctx, ok := newTickContext(e)
	shop := getShop(e)
	if !ok || shop == nil {
		return false
	}
	player := components.Player.Get(ctx.player)
	if !UpgradeWeapon(ctx.session, player, player.Equipped) {
		shop.Message = "Not enough coins"
		return false
	}
	w := player.CurrentWeapon()
	shop.Message = fmt.Sprintf("%s upgraded to Lv.%d", w.Name, w.UpgradeLevel)
	return true
}

// UpdateShop toggles the shop and handles its keyboard controls.
func UpdateShop(e *ecs.ECS) {
	shop := getShop(e)
	if shop == nil {
		return
	}
	if session := GetSession(e); session != nil && session.GameOver {
		return
	}
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionShop).JustPressed {
		ToggleShop(e)
		return
	}
	if !shop.IsOpen {
		return
	}

	n := len(cfg.Weapon.Catalog)
	if n > 0 {
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			shop.SelectedIndex = (shop.SelectedIndex - 1 + n) % n
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			shop.SelectedIndex = (shop.SelectedIndex + 1) % n
		}
	}

	switch {
	case GetAction(input, cfg.ActionMenuSelect).JustPressed:
		Buy(e, shop.SelectedIndex)
	case GetAction(input, cfg.ActionUpgrade).JustPressed:
		Upgrade(e)
	case GetAction(input, cfg.ActionSwitchWeapon).JustPressed:
		if playerEntry, ok := tags.Player.First(e.World); ok {
			player := components.Player.Get(playerEntry)
			if len(player.Weapons) > 1 {
				player.Equipped = (player.Equipped + 1) % len(player.Weapons)
			}
		}
	case GetAction(input, cfg.ActionMenuBack).JustPressed:
		shop.IsOpen = false
	}
}
