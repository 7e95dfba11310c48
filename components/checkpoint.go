package components

import "github.com/yohamta/donburi"

type CheckpointData struct {
	Active bool
}

// Activate latches the checkpoint. It returns true only on the first call.
func (c *CheckpointData) Activate() bool {
	if c.Active {
		return false
	}
	c.Active = true
	return true
}

var Checkpoint = donburi.NewComponentType[CheckpointData]()
