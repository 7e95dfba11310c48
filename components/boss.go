package components

import "github.com/yohamta/donburi"

// BossData extends EnemyData for the boss. Its projectiles live here rather
// than in the world so they age and get pruned with the boss.
type BossData struct {
	Phase        int
	Pattern      int
	PatternTimer int
	Projectiles  []ProjectileData
}

var Boss = donburi.NewComponentType[BossData]()
