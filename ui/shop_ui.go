package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/gunner/components"
	cfg "github.com/automoto/gunner/config"
	"github.com/automoto/gunner/systems"
	"github.com/automoto/gunner/tags"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/gofont/goregular"
)

// ShopUI is the mouse-driven weapon shop overlay. Keyboard controls are
// handled by systems.UpdateShop; both go through the same transactions.
type ShopUI struct {
	UI  *ebitenui.UI
	ecs *ecs.ECS

	rowLabels     []*widget.Label
	buyButtons    []*widget.Button
	upgradeButton *widget.Button
	coinsLabel    *widget.Label
	equippedLabel *widget.Label
	messageLabel  *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewShopUI(e *ecs.ECS) *ShopUI {
	sui := &ShopUI{ecs: e}
	sui.loadFonts()
	sui.buildUI()
	return sui
}

func (sui *ShopUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	sui.titleFace = &text.GoTextFace{Source: fontSource, Size: 32}
	sui.normalFace = &text.GoTextFace{Source: fontSource, Size: 20}
	sui.smallFace = &text.GoTextFace{Source: fontSource, Size: 16}
}

func (sui *ShopUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.BlackOverlay)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Shop.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(20)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("WEAPON SHOP", &sui.titleFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	))

	sui.coinsLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &sui.normalFace, &widget.LabelColor{
			Idle: cfg.UI.CoinColor,
		}),
	)
	panel.AddChild(sui.coinsLabel)

	for i := range cfg.Weapon.Catalog {
		panel.AddChild(sui.buildWeaponRow(i))
	}

	sui.equippedLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &sui.normalFace, &widget.LabelColor{
			Idle: cfg.UI.WeaponTextColor,
		}),
	)
	panel.AddChild(sui.equippedLabel)

	panel.AddChild(sui.buildButtonsContainer())

	sui.messageLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &sui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 150, 255},
		}),
	)
	panel.AddChild(sui.messageLabel)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Up/Down: Select   Enter: Buy   U: Upgrade   Q: Switch   E/Backspace: Close", &sui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 180, 255},
		}),
	))

	rootContainer.AddChild(panel)

	sui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (sui *ShopUI) buildWeaponRow(index int) *widget.Container {
	padding := widget.Insets{Top: 4, Bottom: 4, Left: 8, Right: 8}
	row := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(12),
		)),
	)

	label := widget.NewLabel(
		widget.LabelOpts.Text(weaponRowText(index, false), &sui.normalFace, &widget.LabelColor{
			Idle: cfg.White,
		}),
	)
	sui.rowLabels = append(sui.rowLabels, label)
	row.AddChild(label)

	idx := index
	buy := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(90, 28)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text("Buy", &sui.normalFace, &widget.ButtonTextColor{
			Idle:     cfg.Shop.AffordableColor,
			Hover:    color.RGBA{200, 255, 200, 255},
			Pressed:  color.RGBA{150, 200, 150, 255},
			Disabled: cfg.Shop.TooPoorColor,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			systems.Buy(sui.ecs, idx)
			sui.UpdateUI()
		}),
	)
	sui.buyButtons = append(sui.buyButtons, buy)
	row.AddChild(buy)

	return row
}

func (sui *ShopUI) buildButtonsContainer() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	sui.upgradeButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(180, 32)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text("Upgrade", &sui.normalFace, &widget.ButtonTextColor{
			Idle:     cfg.White,
			Hover:    color.RGBA{255, 255, 200, 255},
			Pressed:  color.RGBA{200, 200, 200, 255},
			Disabled: cfg.Shop.TooPoorColor,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			systems.Upgrade(sui.ecs)
			sui.UpdateUI()
		}),
	)
	container.AddChild(sui.upgradeButton)

	closeButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(100, 32)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text("Close", &sui.normalFace, &widget.ButtonTextColor{
			Idle:    cfg.White,
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			systems.ToggleShop(sui.ecs)
		}),
	)
	container.AddChild(closeButton)

	return container
}

func (sui *ShopUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(cfg.UI.ShopButtonColor),
		Hover:    image.NewNineSliceColor(color.RGBA{120, 120, 220, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{70, 70, 160, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{50, 50, 60, 255}),
	}
}

func weaponRowText(index int, selected bool) string {
	w := components.NewWeapon(cfg.Weapon.Catalog[index])
	marker := "  "
	if selected {
		marker = "> "
	}
	return fmt.Sprintf("%s%-16s dmg %-3d cd %-3d $%d", marker, w.Name, w.Damage, w.Cooldown, w.Price)
}

// UpdateUI refreshes every widget from the session, player and shop state.
func (sui *ShopUI) UpdateUI() {
	session := systems.GetSession(sui.ecs)
	shopEntry, ok := components.Shop.First(sui.ecs.World)
	if session == nil || !ok {
		return
	}
	shop := components.Shop.Get(shopEntry)

	sui.coinsLabel.Label = fmt.Sprintf("Coins: %d", session.Coins)

	for i, label := range sui.rowLabels {
		if i >= len(cfg.Weapon.Catalog) {
			break
		}
		label.Label = weaponRowText(i, i == shop.SelectedIndex)
		price := components.NewWeapon(cfg.Weapon.Catalog[i]).Price
		sui.buyButtons[i].GetWidget().Disabled = session.Coins < price
	}

	sui.equippedLabel.Label = ""
	sui.upgradeButton.GetWidget().Disabled = true
	if playerEntry, ok := tags.Player.First(sui.ecs.World); ok {
		if w := components.Player.Get(playerEntry).CurrentWeapon(); w != nil {
			sui.equippedLabel.Label = fmt.Sprintf("Equipped: %s Lv.%d (dmg %d, cd %d)", w.Name, w.UpgradeLevel, w.Damage, w.Cooldown)
			if label := sui.upgradeButton.Text(); label != nil {
				label.Label = fmt.Sprintf("Upgrade $%d", w.Price)
			}
			sui.upgradeButton.GetWidget().Disabled = session.Coins < w.Price
		}
	}

	sui.messageLabel.Label = shop.Message
}
