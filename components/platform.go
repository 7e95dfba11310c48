package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

type PlatformData struct {
	Color     color.RGBA
	Moving    bool
	Direction float64 // +1 or -1, only used when Moving
}

var Platform = donburi.NewComponentType[PlatformData]()
