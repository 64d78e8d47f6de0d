package config

import "image/color"

// WindowConfig contains the screen size of the game view
type WindowConfig struct {
	Width  int
	Height int
	Title  string
}

// WorldConfig contains world bounds and timing limits
type WorldConfig struct {
	// Fallback size when no level map is loaded
	Width  float64
	Height float64

	// Player position is clamped this far inside the world border
	BorderInset float64

	// Upper bound for a single simulation step (seconds)
	MaxDeltaTime float64

	LevelPath string
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Speed           float64 // pixels per second
	CollisionRadius float64
	Health          int
	MaxHealth       int
	InvulnTime      float64 // seconds after taking contact damage

	// Combat
	AttackCooldown float64 // seconds between swings
	AttackRange    float64 // reach along the facing axis
	AttackFrame    int     // swing frame on which the hit is resolved
}

// EnemyConfig contains enemy configuration values
type EnemyConfig struct {
	Speed           float64
	CollisionRadius float64
	Health          int
	MaxHealth       int
	InvulnTime      float64 // seconds after being struck
	SpawnDuration   float64 // spawn-in and death fade length in seconds
}

// SpawnerConfig contains the enemy spawner tuning
type SpawnerConfig struct {
	Interval      float64 // seconds between spawn attempts
	MaxEnemies    int
	InitialCount  int
	ExclusionSize float64 // no enemy spawns closer than this to the player
	Margin        float64 // candidates stay this far inside the world border
	MaxTries      int
}

// ScoreConfig contains score awards
type ScoreConfig struct {
	Hit  int
	Kill int
}

// AnimationConfig contains sprite-sheet frame layout and timing.
// Frame indices refer to rows of a column in the sheet.
type AnimationConfig struct {
	FrameDuration         float64 // seconds per frame
	FinishSpeedMultiplier float64
	FramesPerAnimation    int
	LastFrame             int
	LastLoopedFrame       int
	FirstReturnFrame      int

	SpriteWidth  int
	SpriteHeight int
}

// MinimapConfig contains minimap layout and colors
type MinimapConfig struct {
	Size         float64
	Padding      float64
	BorderRadius float64
	PlayerSize   float64
	EnemySize    float64
	BgColor      color.RGBA
	BorderColor  color.RGBA
	PlayerColor  color.RGBA
	EnemyColor   color.RGBA
}

// HealthBarConfig contains the segmented health bar layout
type HealthBarConfig struct {
	Width      float64
	Height     float64
	SegmentGap float64

	PlayerStart, PlayerEnd color.RGBA
	EnemyStart, EnemyEnd   color.RGBA
	FlashColor             color.RGBA
	EmptyColor             color.RGBA
	BackColor              color.RGBA
	BorderColor            color.RGBA
}

// ScreenShakeConfig contains screen shake effect configuration
type ScreenShakeConfig struct {
	HitIntensity  float64 // pixels
	HitDuration   int     // frames
	HurtIntensity float64
	HurtDuration  int
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // 1.0 snaps to the player
}

// KnightConfig contains the sword-swing demo layout
type KnightConfig struct {
	FrameCount    int
	FramesPerStep int // render frames per animation step
	ResumeFrame   int // frame the swing resumes from after a charge
	ChargeFrame   int // frame a held charge pauses on
	Scale         float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu   bool // go directly to the dungeon
	KnightDemo bool // go directly to the knight demo
	Seed       int64
	LogFile    string
	Verbose    bool
	ShowBoxes  bool
}

// Global configuration instances
var Window WindowConfig
var World WorldConfig
var Player PlayerConfig
var Enemy EnemyConfig
var Spawner SpawnerConfig
var Score ScoreConfig
var Animation AnimationConfig
var Minimap MinimapConfig
var HealthBar HealthBarConfig
var ScreenShake ScreenShakeConfig
var Camera CameraConfig
var Knight KnightConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Silver       = color.RGBA{R: 192, G: 192, B: 192, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	DarkRed      = color.RGBA{R: 120, G: 20, B: 20, A: 255}
	LightRed     = color.RGBA{R: 255, G: 120, B: 120, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	LightGreen   = color.RGBA{R: 155, G: 255, B: 90, A: 255}
	Green        = color.RGBA{R: 100, G: 255, B: 30, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
)

func init() {
	Window = WindowConfig{
		Width:  960,
		Height: 540,
		Title:  "Dungeon Crawler",
	}

	World = WorldConfig{
		Width:        1600,
		Height:       1216,
		BorderInset:  10,
		MaxDeltaTime: 0.05,
		LevelPath:    "levels/dungeon.tmx",
	}

	Player = PlayerConfig{
		Speed:           220,
		CollisionRadius: 18,
		Health:          5,
		MaxHealth:       5,
		InvulnTime:      1.0,

		AttackCooldown: 0.6,
		AttackRange:    64,
		AttackFrame:    2,
	}

	Enemy = EnemyConfig{
		Speed:           60,
		CollisionRadius: 16,
		Health:          3,
		MaxHealth:       3,
		InvulnTime:      1.0,
		SpawnDuration:   0.6,
	}

	Spawner = SpawnerConfig{
		Interval:      2.0,
		MaxEnemies:    20,
		InitialCount:  5,
		ExclusionSize: 260,
		Margin:        40,
		MaxTries:      100,
	}

	Score = ScoreConfig{
		Hit:  10,
		Kill: 50,
	}

	Animation = AnimationConfig{
		FrameDuration:         0.1,
		FinishSpeedMultiplier: 2,
		FramesPerAnimation:    6,
		LastFrame:             5,
		LastLoopedFrame:       3,
		FirstReturnFrame:      4,
		SpriteWidth:           64,
		SpriteHeight:          64,
	}

	Minimap = MinimapConfig{
		Size:         150,
		Padding:      10,
		BorderRadius: 6,
		PlayerSize:   3,
		EnemySize:    2,
		BgColor:      color.RGBA{R: 0, G: 0, B: 0, A: 150},
		BorderColor:  color.RGBA{R: 255, G: 255, B: 255, A: 180},
		PlayerColor:  color.RGBA{R: 90, G: 200, B: 255, A: 255},
		EnemyColor:   color.RGBA{R: 255, G: 80, B: 80, A: 255},
	}

	HealthBar = HealthBarConfig{
		Width:       44,
		Height:      6,
		SegmentGap:  2,
		PlayerStart: LightGreen,
		PlayerEnd:   Green,
		EnemyStart:  color.RGBA{R: 255, G: 90, B: 90, A: 255},
		EnemyEnd:    color.RGBA{R: 200, G: 30, B: 30, A: 255},
		FlashColor:  Red,
		EmptyColor:  color.RGBA{R: 0, G: 0, B: 0, A: 64},
		BackColor:   color.RGBA{R: 0, G: 0, B: 0, A: 115},
		BorderColor: Silver,
	}

	ScreenShake = ScreenShakeConfig{
		HitIntensity:  2.0,
		HitDuration:   5,
		HurtIntensity: 4.0,
		HurtDuration:  8,
	}

	Camera = CameraConfig{
		FollowSmoothing: 1.0,
	}

	Knight = KnightConfig{
		FrameCount:    4,
		FramesPerStep: 9,
		ResumeFrame:   2,
		ChargeFrame:   1,
		Scale:         2,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu: false,
		Seed:     0,
		LogFile:  "dungeon.log",
	}
}
