package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// ProjectileData is a round shot. X and Y are the centre and Size is the
// radius.
type ProjectileData struct {
	X, Y       float64
	VelX, VelY float64
	Damage     int
	Size       float64
	Color      color.RGBA
	Lifetime   int
}

// Step moves the projectile one tick and ages it.
func (p *ProjectileData) Step() {
	p.X += p.VelX
	p.Y += p.VelY
	p.Lifetime--
}

func (p *ProjectileData) Expired() bool {
	return p.Lifetime <= 0
}

// Rect is the square that encloses the projectile's circle.
func (p *ProjectileData) Rect() Rect {
	return Rect{X: p.X - p.Size, Y: p.Y - p.Size, W: p.Size * 2, H: p.Size * 2}
}

var Projectile = donburi.NewComponentType[ProjectileData]()
