package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

// Damage subtracts amount and clamps at zero. It returns true when this
// call brought health to zero.
func (h *HealthData) Damage(amount int) bool {
	if h.Current <= 0 {
		h.Current = 0
		return false
	}
	h.Current -= amount
	if h.Current <= 0 {
		h.Current = 0
		return true
	}
	return false
}

func (h *HealthData) Dead() bool {
	return h.Current <= 0
}

// Ratio is Current/Max, always in [0,1].
func (h *HealthData) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	r := float64(h.Current) / float64(h.Max)
	switch {
	case r < 0:
		return 0
	case r > 1:
		return 1
	}
	return r
}

var Health = donburi.NewComponentType[HealthData]()
