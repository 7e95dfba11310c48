package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer every entity is spawned on.
const Default ecs.LayerID = 0

// Enemy kind names used as keys into Enemy.Types and in level data.
const (
	KindBasic  = "basic"
	KindFlying = "flying"
	KindTank   = "tank"
	KindBoss   = "boss"
)

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Speed             float64
	JumpSpeed         float64
	DoubleJumpFactor  float64
	Gravity           float64
	DoubleJumpEnabled bool
	StartX            float64
	StartY            float64

	// Combat
	Health int

	// Dimensions
	Width  float64
	Height float64

	Color       color.RGBA
	WeaponColor color.RGBA
}

// EnemyTypeConfig is the immutable stats record for one enemy kind.
type EnemyTypeConfig struct {
	Name       string
	Health     int
	Speed      float64
	Damage     int
	CoinValue  int
	ScoreValue int
	Width      float64
	Height     float64
	Gravity    float64
	Color      color.RGBA
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types map[string]EnemyTypeConfig

	ContactCooldown int // frames between two melee hits from the same enemy
	TurnTimerMin    int // frames, inclusive
	TurnTimerMax    int // frames, inclusive
}

// BossConfig contains per-phase tuning for the boss.
type BossConfig struct {
	SpawnX float64
	SpawnY float64

	// Indexed by phase-1.
	PhaseSpeeds  [3]float64
	PhaseCadence [3]int

	Phase2Threshold float64 // health fraction below which phase 2 starts
	Phase3Threshold float64 // health fraction below which phase 3 starts

	RotatingPatterns int // patterns cycled through in phase 2
	TotalPatterns    int // patterns drawn from in phase 3

	ProjectileSpeed  float64
	ProjectileDamage int
	HeavyDamage      int
	ProjectileSize   float64
	HeavySize        float64
	ProjectileColor  color.RGBA
	HeavyColor       color.RGBA

	SpreadCount  int
	SpreadArc    float64 // radians, total
	RingCount    int
	BurstCount   int
	BurstSpacing float64 // pixels between shots of a burst
	RainCount    int
	RainSpacing  float64
	RainHeight   float64 // y the rain starts from
}

// WeaponSpec is one entry of the shop catalog.
type WeaponSpec struct {
	Name        string
	Damage      int
	Speed       float64
	Cooldown    int
	BulletSize  float64
	BulletColor color.RGBA
}

// WeaponConfig contains weapon catalog and upgrade rules
type WeaponConfig struct {
	Catalog []WeaponSpec

	UpgradeDamage   int
	UpgradeCooldown int
	MinCooldown     int
	PricePerLevel   int
}

// ProjectileConfig contains projectile spawn and lifetime values
type ProjectileConfig struct {
	Lifetime     int
	OffsetRight  float64 // spawn x offset from the player's left edge when facing right
	OffsetLeft   float64 // spawn x offset when facing left
	OffsetY      float64
	DefaultSize  float64
	DefaultColor color.RGBA
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	MaxFallSpeed float64
}

// LevelConfig contains level geometry and wave composition values
type LevelConfig struct {
	MovingPlatformSpeed float64
	MovingPlatformMinX  float64
	MovingPlatformMaxX  float64

	CheckpointWidth  float64
	CheckpointHeight float64
	RespawnOffsetY   float64

	PlatformColor     color.RGBA
	CheckpointColor   color.RGBA
	CheckpointOnColor color.RGBA
	BackgroundColor   color.RGBA

	BossEvery int

	BasicWaveCount   int
	BasicWaveX       float64
	BasicWaveSpacing float64
	BasicWaveY       float64

	FlyingWaveCount   int
	FlyingWaveX       float64
	FlyingWaveSpacing float64
	FlyingWaveY       float64
	FlyingFromLevel   int

	DefaultLayout string

	BannerFrames int
}

// UIConfig contains HUD configuration values
type UIConfig struct {
	HealthBarX      float64
	HealthBarY      float64
	HealthBarWidth  float64
	HealthBarHeight float64

	BossBarX      float64
	BossBarY      float64
	BossBarWidth  float64
	BossBarHeight float64

	EnemyBarHeight float64
	EnemyBarGap    float64

	HealthBarBgColor color.RGBA
	HealthBarFgColor color.RGBA
	CoinColor        color.RGBA
	TextColor        color.RGBA
	WeaponTextColor  color.RGBA
	ShopButtonColor  color.RGBA

	CoinTweenSeconds float32
}

// ShopConfig contains weapon shop overlay configuration values
type ShopConfig struct {
	PanelColor      color.RGBA
	AffordableColor color.RGBA
	TooPoorColor    color.RGBA
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	Title             string
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// GameOverConfig contains game over screen configuration values
type GameOverConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu      bool  // Skip menu and go directly to game
	StartLevel    int   // Level number the run starts on
	Seed          int64 // RNG seed, 0 picks one from the clock
	TuningFile    string
	WatchTuning   bool
	ShowColliders bool // Outline collision boxes
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Boss BossConfig
var Weapon WeaponConfig
var Projectile ProjectileConfig
var Physics PhysicsConfig
var Level LevelConfig
var UI UIConfig
var Shop ShopConfig
var Pause PauseConfig
var Menu MenuConfig
var GameOver GameOverConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Gold         = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 150, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Gray         = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
	}

	Physics = PhysicsConfig{
		MaxFallSpeed: 16.0,
	}

	Player = PlayerConfig{
		Speed:             5.0,
		JumpSpeed:         15.0,
		DoubleJumpFactor:  0.8,
		Gravity:           0.8,
		DoubleJumpEnabled: true,
		StartX:            100,
		StartY:            500,

		Health: 100,

		Width:  40,
		Height: 60,

		Color:       color.RGBA{R: 100, G: 200, B: 100, A: 255},
		WeaponColor: color.RGBA{R: 150, G: 150, B: 150, A: 255},
	}

	Enemy = EnemyConfig{
		Types: map[string]EnemyTypeConfig{
			KindBasic: {
				Name: "Basic", Health: 30, Speed: 2, Damage: 10, CoinValue: 5, ScoreValue: 100,
				Width: 50, Height: 50, Gravity: 0.8,
				Color: color.RGBA{R: 200, G: 50, B: 50, A: 255},
			},
			KindFlying: {
				Name: "Flying", Health: 20, Speed: 3, Damage: 5, CoinValue: 3, ScoreValue: 150,
				Width: 50, Height: 50,
				Color: color.RGBA{R: 50, G: 50, B: 200, A: 255},
			},
			KindTank: {
				Name: "Tank", Health: 100, Speed: 1, Damage: 20, CoinValue: 10, ScoreValue: 200,
				Width: 50, Height: 50, Gravity: 0.8,
				Color: color.RGBA{R: 150, G: 50, B: 150, A: 255},
			},
			KindBoss: {
				Name: "Boss", Health: 500, Speed: 1, Damage: 20, CoinValue: 50, ScoreValue: 1000,
				Width: 100, Height: 100,
				Color: color.RGBA{R: 180, G: 50, B: 180, A: 255},
			},
		},
		ContactCooldown: 60,
		TurnTimerMin:    60,
		TurnTimerMax:    180,
	}

	Boss = BossConfig{
		SpawnX: 800,
		SpawnY: 400,

		PhaseSpeeds:  [3]float64{1, 2, 3},
		PhaseCadence: [3]int{120, 90, 60},

		Phase2Threshold: 0.6,
		Phase3Threshold: 0.3,

		RotatingPatterns: 3,
		TotalPatterns:    5,

		ProjectileSpeed:  5,
		ProjectileDamage: 10,
		HeavyDamage:      25,
		ProjectileSize:   8,
		HeavySize:        16,
		ProjectileColor:  color.RGBA{R: 255, G: 80, B: 200, A: 255},
		HeavyColor:       color.RGBA{R: 255, G: 40, B: 40, A: 255},

		SpreadCount:  5,
		SpreadArc:    1.0,
		RingCount:    12,
		BurstCount:   3,
		BurstSpacing: 24,
		RainCount:    6,
		RainSpacing:  80,
		RainHeight:   0,
	}

	Weapon = WeaponConfig{
		Catalog: []WeaponSpec{
			{Name: "Pistol", Damage: 10, Speed: 10, Cooldown: 20, BulletSize: 10, BulletColor: Yellow},
			{Name: "Shotgun", Damage: 15, Speed: 8, Cooldown: 30, BulletSize: 15, BulletColor: Orange},
			{Name: "Rifle", Damage: 8, Speed: 15, Cooldown: 10, BulletSize: 5, BulletColor: Cyan},
			{Name: "Rocket Launcher", Damage: 30, Speed: 5, Cooldown: 60, BulletSize: 20, BulletColor: Red},
		},
		UpgradeDamage:   5,
		UpgradeCooldown: 2,
		MinCooldown:     5,
		PricePerLevel:   100,
	}

	Projectile = ProjectileConfig{
		Lifetime:     180,
		OffsetRight:  40,
		OffsetLeft:   -10,
		OffsetY:      25,
		DefaultSize:  10,
		DefaultColor: Yellow,
	}

	Level = LevelConfig{
		MovingPlatformSpeed: 2,
		MovingPlatformMinX:  200,
		MovingPlatformMaxX:  800,

		CheckpointWidth:  40,
		CheckpointHeight: 80,
		RespawnOffsetY:   50,

		PlatformColor:     color.RGBA{R: 100, G: 100, B: 100, A: 255},
		CheckpointColor:   color.RGBA{R: 200, G: 200, B: 0, A: 255},
		CheckpointOnColor: color.RGBA{R: 0, G: 255, B: 0, A: 255},
		BackgroundColor:   color.RGBA{R: 30, G: 30, B: 40, A: 255},

		BossEvery: 3,

		BasicWaveCount:   5,
		BasicWaveX:       300,
		BasicWaveSpacing: 150,
		BasicWaveY:       600,

		FlyingWaveCount:   3,
		FlyingWaveX:       200,
		FlyingWaveSpacing: 200,
		FlyingWaveY:       300,
		FlyingFromLevel:   2,

		DefaultLayout: "default",

		BannerFrames: 120,
	}

	UI = UIConfig{
		HealthBarX:      20,
		HealthBarY:      20,
		HealthBarWidth:  200,
		HealthBarHeight: 20,

		BossBarX:      300,
		BossBarY:      60,
		BossBarWidth:  600,
		BossBarHeight: 24,

		EnemyBarHeight: 5,
		EnemyBarGap:    15,

		HealthBarBgColor: Red,
		HealthBarFgColor: Green,
		CoinColor:        Gold,
		TextColor:        White,
		WeaponTextColor:  Gray,
		ShopButtonColor:  color.RGBA{R: 100, G: 100, B: 200, A: 255},

		CoinTweenSeconds: 0.5,
	}

	Shop = ShopConfig{
		PanelColor:      color.RGBA{R: 50, G: 50, B: 80, A: 235},
		AffordableColor: Green,
		TooPoorColor:    LightRed,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuItemHeight:    40,
		MenuItemGap:       20,
		MenuOptions:       []string{"Resume", "Quit"},
	}

	Menu = MenuConfig{
		Title:             "GUNNER",
		BackgroundColor:   color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:        Orange,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            200,
		MenuStartY:        320,
		MenuItemHeight:    40,
		MenuItemGap:       16,
		MenuOptions:       []string{"Start", "Exit"},
	}

	GameOver = GameOverConfig{
		BackgroundColor:   color.RGBA{R: 40, G: 10, B: 10, A: 255},
		TitleColor:        LightRed,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            240,
		MenuStartY:        360,
		MenuItemHeight:    40,
		MenuItemGap:       16,
		MenuOptions:       []string{"Retry", "Main Menu"},
	}

	Debug = DebugConfig{
		SkipMenu:   false,
		StartLevel: 1,
	}
}
