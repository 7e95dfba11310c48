package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

type RandomData struct {
	*rand.Rand
}

var Random = donburi.NewComponentType[RandomData]()
