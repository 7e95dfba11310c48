package components

import "github.com/yohamta/donburi"

type ShopData struct {
	IsOpen        bool
	SelectedIndex int
	Message       string
}

var Shop = donburi.NewComponentType[ShopData]()
