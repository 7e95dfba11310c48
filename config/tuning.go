package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Tuning is an optional set of overrides for the stats table and the
// weapon catalog. Every field is optional; nil means "keep the default".
type Tuning struct {
	Enemies map[string]EnemyTuning `yaml:"enemies"`
	Weapons []WeaponTuning         `yaml:"weapons"`
	Boss    *BossTuning            `yaml:"boss"`
}

type EnemyTuning struct {
	Health *int     `yaml:"health"`
	Speed  *float64 `yaml:"speed"`
	Damage *int     `yaml:"damage"`
	Coins  *int     `yaml:"coins"`
	Score  *int     `yaml:"score"`
}

// WeaponTuning overrides the catalog entry with the same name, or appends a
// new catalog entry when no weapon by that name exists.
type WeaponTuning struct {
	Name       string     `yaml:"name"`
	Damage     *int       `yaml:"damage"`
	Speed      *float64   `yaml:"speed"`
	Cooldown   *int       `yaml:"cooldown"`
	BulletSize *float64   `yaml:"bullet_size"`
	Color      *YAMLColor `yaml:"color"`
}

type BossTuning struct {
	PhaseSpeeds  []float64 `yaml:"phase_speeds"`
	PhaseCadence []int     `yaml:"phase_cadence"`
}

// LoadTuning reads and validates a tuning file without applying it.
func LoadTuning(path string) (*Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read tuning %s: %w", path, err)
	}
	return ParseTuning(data)
}

func ParseTuning(data []byte) (*Tuning, error) {
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("config: unmarshal tuning: %w", err)
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

func (t *Tuning) validate() error {
	for kind, et := range t.Enemies {
		if _, ok := Enemy.Types[kind]; !ok {
			return fmt.Errorf("config: unknown enemy kind %q", kind)
		}
		if et.Health != nil && *et.Health <= 0 {
			return fmt.Errorf("config: enemy %s: health must be positive", kind)
		}
	}
	for i, wt := range t.Weapons {
		if wt.Name == "" {
			return fmt.Errorf("config: weapon %d: missing name", i)
		}
		if wt.Cooldown != nil && *wt.Cooldown < 0 {
			return fmt.Errorf("config: weapon %s: negative cooldown", wt.Name)
		}
	}
	if t.Boss != nil {
		if n := len(t.Boss.PhaseSpeeds); n != 0 && n != 3 {
			return fmt.Errorf("config: boss phase_speeds needs 3 values, got %d", n)
		}
		if n := len(t.Boss.PhaseCadence); n != 0 && n != 3 {
			return fmt.Errorf("config: boss phase_cadence needs 3 values, got %d", n)
		}
	}
	return nil
}

// Apply writes the overrides into the global configuration. Entities that
// already exist keep the stats they were built with.
func (t *Tuning) Apply() {
	for kind, et := range t.Enemies {
		stats := Enemy.Types[kind]
		if et.Health != nil {
			stats.Health = *et.Health
		}
		if et.Speed != nil {
			stats.Speed = *et.Speed
		}
		if et.Damage != nil {
			stats.Damage = *et.Damage
		}
		if et.Coins != nil {
			stats.CoinValue = *et.Coins
		}
		if et.Score != nil {
			stats.ScoreValue = *et.Score
		}
		Enemy.Types[kind] = stats
	}

	for _, wt := range t.Weapons {
		idx := catalogIndex(wt.Name)
		if idx < 0 {
			Weapon.Catalog = append(Weapon.Catalog, WeaponSpec{
				Name:        wt.Name,
				Speed:       10,
				Cooldown:    20,
				BulletSize:  Projectile.DefaultSize,
				BulletColor: Projectile.DefaultColor,
			})
			idx = len(Weapon.Catalog) - 1
		}
		spec := &Weapon.Catalog[idx]
		if wt.Damage != nil {
			spec.Damage = *wt.Damage
		}
		if wt.Speed != nil {
			spec.Speed = *wt.Speed
		}
		if wt.Cooldown != nil {
			spec.Cooldown = *wt.Cooldown
		}
		if wt.BulletSize != nil {
			spec.BulletSize = *wt.BulletSize
		}
		if wt.Color != nil {
			spec.BulletColor = wt.Color.RGBA
		}
	}

	if t.Boss != nil {
		if len(t.Boss.PhaseSpeeds) == 3 {
			copy(Boss.PhaseSpeeds[:], t.Boss.PhaseSpeeds)
		}
		if len(t.Boss.PhaseCadence) == 3 {
			copy(Boss.PhaseCadence[:], t.Boss.PhaseCadence)
		}
	}
}

func catalogIndex(name string) int {
	for i, spec := range Weapon.Catalog {
		if strings.EqualFold(spec.Name, name) {
			return i
		}
	}
	return -1
}

// YAMLColor decodes "#rrggbb" or "#rrggbbaa".
type YAMLColor struct {
	color.RGBA
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	rgba, err := ParseHexColor(value.Value)
	if err != nil {
		return err
	}
	c.RGBA = rgba
	return nil
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa". The leading '#' is optional.
func ParseHexColor(v string) (color.RGBA, error) {
	s := strings.TrimPrefix(v, "#")
	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color format: %s", v)
	}

	parse := func(start int) (uint8, error) {
		n, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(n), err
	}

	rgba := [4]uint8{3: 255}
	for i := 0; i < len(s)/2; i++ {
		n, err := parse(i * 2)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color format: %s: %w", v, err)
		}
		rgba[i] = n
	}
	return color.RGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}, nil
}
