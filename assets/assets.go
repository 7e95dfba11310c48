package assets

import (
	"embed"
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/gunner/config"
	"github.com/lafriks/go-tiled"
)

//go:embed all:levels
var assetFS embed.FS

// ErrUnknownLayout is returned when no layout file matches a level key.
var ErrUnknownLayout = errors.New("unknown level layout")

// Object group names in the .tmx files.
const (
	groupPlatforms       = "Platforms"
	groupMovingPlatforms = "MovingPlatforms"
	groupCheckpoints     = "Checkpoint"
	groupEnemySpawns     = "EnemySpawn"
)

// Layout is the parsed geometry of one level.
type Layout struct {
	Name        string
	Width       float64
	Height      float64
	Platforms   []PlatformSpawn
	Checkpoints []CheckpointSpawn
	EnemySpawns []EnemySpawn
}

type PlatformSpawn struct {
	X, Y, Width, Height float64
	Color               color.RGBA
	Moving              bool
}

type CheckpointSpawn struct {
	X, Y, Width, Height float64
}

// EnemySpawn is an extra enemy placed by the level on top of the wave.
type EnemySpawn struct {
	X, Y      float64
	EnemyType string
}

// LayoutNames lists the embedded layouts by key, sorted.
func LayoutNames() []string {
	entries, err := fs.ReadDir(assetFS, "levels")
	if err != nil {
		return nil
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".tmx" {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".tmx"))
	}
	sort.Strings(names)
	return names
}

// HasLayout reports whether a layout exists for key.
func HasLayout(key string) bool {
	_, err := fs.Stat(assetFS, layoutPath(key))
	return err == nil
}

// LoadLayout parses the layout stored under key. The whole layout is built
// before it is returned so callers never see a partial level.
func LoadLayout(key string) (Layout, error) {
	if !HasLayout(key) {
		return Layout{}, fmt.Errorf("assets: %q: %w", key, ErrUnknownLayout)
	}

	levelMap, err := tiled.LoadFile(layoutPath(key), tiled.WithFileSystem(assetFS))
	if err != nil {
		return Layout{}, fmt.Errorf("assets: parse %q: %w", key, err)
	}

	layout := Layout{
		Name:   key,
		Width:  float64(levelMap.Width * levelMap.TileWidth),
		Height: float64(levelMap.Height * levelMap.TileHeight),
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case groupPlatforms, groupMovingPlatforms:
			moving := og.Name == groupMovingPlatforms
			for _, o := range og.Objects {
				c := config.Level.PlatformColor
				if hex := o.Properties.GetString("color"); hex != "" {
					c, err = config.ParseHexColor(hex)
					if err != nil {
						return Layout{}, fmt.Errorf("assets: %q: platform %d: %w", key, o.ID, err)
					}
				}
				layout.Platforms = append(layout.Platforms, PlatformSpawn{
					X:      o.X,
					Y:      o.Y,
					Width:  o.Width,
					Height: o.Height,
					Color:  c,
					Moving: moving,
				})
			}
		case groupCheckpoints:
			for _, o := range og.Objects {
				w, h := o.Width, o.Height
				if w == 0 || h == 0 {
					w, h = config.Level.CheckpointWidth, config.Level.CheckpointHeight
				}
				layout.Checkpoints = append(layout.Checkpoints, CheckpointSpawn{
					X:      o.X,
					Y:      o.Y,
					Width:  w,
					Height: h,
				})
			}
		case groupEnemySpawns:
			for _, o := range og.Objects {
				enemyType := o.Properties.GetString("enemyType")
				if enemyType == "" {
					enemyType = config.KindBasic
				}
				layout.EnemySpawns = append(layout.EnemySpawns, EnemySpawn{
					X:         o.X,
					Y:         o.Y,
					EnemyType: enemyType,
				})
			}
		}
	}

	if len(layout.Platforms) == 0 {
		return Layout{}, fmt.Errorf("assets: %q has no platforms", key)
	}

	return layout, nil
}

func layoutPath(key string) string {
	return path.Join("levels", key+".tmx")
}
