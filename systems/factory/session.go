package factory

import (
	"math/rand"
	"time"

	"github.com/automoto/gunner/archetypes"
	"github.com/automoto/gunner/components"
	cfg "github.com/automoto/gunner/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession creates the run state. A zero seed picks one from the clock.
func CreateSession(ecs *ecs.ECS, level int, seed int64) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	components.Session.SetValue(session, components.SessionData{
		CurrentLevel: level,
		CheckpointX:  cfg.Player.StartX,
		CheckpointY:  cfg.Player.StartY,
	})
	components.Random.SetValue(session, components.RandomData{Rand: rand.New(rand.NewSource(seed))})
	return session
}
