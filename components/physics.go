package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	SpeedX  float64
	SpeedY  float64
	Gravity float64

	// OnGround is the platform the entity is standing on, nil while airborne.
	OnGround *resolv.Object
}

var Physics = donburi.NewComponentType[PhysicsData]()
