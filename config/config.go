package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Render layers
const (
	Default ecs.LayerID = iota
	HUD
)

// Config holds general game configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// LoopConfig controls the split between the fixed physics step and the
// per-frame presentation step.
type LoopConfig struct {
	FixedDelta float64 `yaml:"fixed_delta"` // seconds per physics step
	MaxDelta   float64 `yaml:"max_delta"`   // frame deltas above this are clamped
}

// CameraConfig describes the orthographic arena camera.
type CameraConfig struct {
	HalfHeight float64 `yaml:"half_height"` // world units from center to top edge
	Margin     float64 `yaml:"margin"`      // viewport fraction kept free on every edge
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	MoveSpeed   float64  `yaml:"move_speed"` // world units per second
	FireRate    float64  `yaml:"fire_rate"`  // seconds between shots
	FrameRate   float64  `yaml:"frame_rate"` // animation frames per second
	BodyOffsetX float64  `yaml:"body_offset_x"`
	BodyOffsetY float64  `yaml:"body_offset_y"` // body tile center relative to the entity
	SpawnX      float64  `yaml:"spawn_x"`
	SpawnY      float64  `yaml:"spawn_y"`
	Characters  []string `yaml:"characters"`
	Character   int      `yaml:"character"` // starting index into Characters
}

// ProjectileConfig contains player projectile settings
type ProjectileConfig struct {
	Speed       float64 `yaml:"speed"`
	Lifetime    float64 `yaml:"lifetime"`     // seconds
	SpawnOffset float64 `yaml:"spawn_offset"` // distance along the aim from the body anchor
	Radius      float64 `yaml:"radius"`
	SpriteSize  int     `yaml:"sprite_size"`
}

// AdversaryConfig contains the shawarma's perception and movement tuning
type AdversaryConfig struct {
	Name            string  `yaml:"name"`
	HitPoints       int     `yaml:"hit_points"`
	DetectionRadius float64 `yaml:"detection_radius"`
	FleeSpeed       float64 `yaml:"flee_speed"`
	MoveSpeed       float64 `yaml:"move_speed"`
	WanderInterval  float64 `yaml:"wander_interval"` // seconds between direction changes
	HitPulse        float64 `yaml:"hit_pulse"`       // seconds of red tint after a hit
	Radius          float64 `yaml:"radius"`
	SpawnX          float64 `yaml:"spawn_x"`
	SpawnY          float64 `yaml:"spawn_y"`
	Seed            int64   `yaml:"seed"` // 0 picks a time based seed
}

// StationConfig contains the cooking station click target settings
type StationConfig struct {
	X           float64 `yaml:"x"`
	Y           float64 `yaml:"y"`
	Size        float64 `yaml:"size"`
	BobDistance float64 `yaml:"bob_distance"`
	BobSpeed    float64 `yaml:"bob_speed"` // world units per second
}

// TesterConfig contains the animation tester settings
type TesterConfig struct {
	FrameRate    float64 `yaml:"frame_rate"`
	MinFrameRate float64 `yaml:"min_frame_rate"`
	MaxFrameRate float64 `yaml:"max_frame_rate"`
	RateStep     float64 `yaml:"rate_step"`
	Scale        float64 `yaml:"scale"`
}

// AssetsConfig points at optional on-disk art
type AssetsConfig struct {
	SheetDir string `yaml:"sheet_dir"` // directory of <Name>_<kind>_16x16.png sheets
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Enabled       bool `yaml:"enabled"` // collision outlines and verbose logs
	StartInTester bool `yaml:"start_in_tester"`
}

// Global configuration instances
var C *Config
var Loop LoopConfig
var Camera CameraConfig
var Player PlayerConfig
var Projectile ProjectileConfig
var Adversary AdversaryConfig
var Station StationConfig
var Tester TesterConfig
var Assets AssetsConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BulletOrange = color.RGBA{R: 255, G: 204, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Floor        = color.RGBA{R: 46, G: 40, B: 52, A: 255}
	FloorTile    = color.RGBA{R: 54, G: 48, B: 62, A: 255}
	Counter      = color.RGBA{R: 150, G: 96, B: 54, A: 255}
	Panel        = color.RGBA{R: 20, G: 20, B: 28, A: 220}
	ButtonIdle   = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	ButtonHover  = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	ButtonPress  = color.RGBA{R: 40, G: 70, B: 120, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "Shawarma",
	}

	Loop = LoopConfig{
		FixedDelta: 0.02,
		MaxDelta:   0.25,
	}

	Camera = CameraConfig{
		HalfHeight: 5,
		Margin:     0.05,
	}

	Player = PlayerConfig{
		MoveSpeed:   3,
		FireRate:    0.3,
		FrameRate:   8,
		BodyOffsetY: -0.5,
		Characters:  []string{"Adam", "Alex", "Amelia", "Bob"},
	}

	Projectile = ProjectileConfig{
		Speed:       10,
		Lifetime:    3,
		SpawnOffset: 0.5,
		Radius:      0.4,
		SpriteSize:  16,
	}

	Adversary = AdversaryConfig{
		Name:            "Shawarma",
		HitPoints:       3,
		DetectionRadius: 5,
		FleeSpeed:       4,
		MoveSpeed:       2.5,
		WanderInterval:  2,
		HitPulse:        0.5,
		Radius:          0.5,
		SpawnX:          3,
	}

	Station = StationConfig{
		X:           -6,
		Y:           -3,
		Size:        1,
		BobDistance: 1,
		BobSpeed:    2,
	}

	Tester = TesterConfig{
		FrameRate:    8,
		MinFrameRate: 2,
		MaxFrameRate: 30,
		RateStep:     2,
		Scale:        8,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{}
}
