package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is the shape of an override file. Sections and fields left out of
// the file keep their built-in values.
type Tuning struct {
	Window     Config           `yaml:"window"`
	Loop       LoopConfig       `yaml:"loop"`
	Camera     CameraConfig     `yaml:"camera"`
	Player     PlayerConfig     `yaml:"player"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Adversary  AdversaryConfig  `yaml:"adversary"`
	Station    StationConfig    `yaml:"station"`
	Tester     TesterConfig     `yaml:"tester"`
	Assets     AssetsConfig     `yaml:"assets"`
	Debug      DebugConfig      `yaml:"debug"`
}

// CurrentTuning snapshots the global configuration.
func CurrentTuning() Tuning {
	return Tuning{
		Window:     *C,
		Loop:       Loop,
		Camera:     Camera,
		Player:     Player,
		Projectile: Projectile,
		Adversary:  Adversary,
		Station:    Station,
		Tester:     Tester,
		Assets:     Assets,
		Debug:      Debug,
	}
}

// ParseTuning decodes data on top of the current globals and validates the
// result. Globals are not modified.
func ParseTuning(data []byte) (Tuning, error) {
	t := CurrentTuning()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("failed to parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, fmt.Errorf("invalid tuning: %w", err)
	}
	return t, nil
}

// LoadTuning reads a YAML override file and applies it to the globals.
func LoadTuning(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tuning file: %w", err)
	}
	t, err := ParseTuning(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	t.Apply()
	return nil
}

// Apply copies t into the globals.
func (t Tuning) Apply() {
	window := t.Window
	C = &window
	Loop = t.Loop
	Camera = t.Camera
	Player = t.Player
	Projectile = t.Projectile
	Adversary = t.Adversary
	Station = t.Station
	Tester = t.Tester
	Assets = t.Assets
	Debug = t.Debug
}

// Validate rejects values the systems cannot run with.
func (t Tuning) Validate() error {
	var errs []error
	if t.Window.Width <= 0 || t.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", t.Window.Width, t.Window.Height))
	}
	if t.Loop.FixedDelta <= 0 {
		errs = append(errs, fmt.Errorf("loop.fixed_delta must be positive, got %v", t.Loop.FixedDelta))
	}
	if t.Loop.MaxDelta < t.Loop.FixedDelta {
		errs = append(errs, fmt.Errorf("loop.max_delta %v is below fixed_delta %v", t.Loop.MaxDelta, t.Loop.FixedDelta))
	}
	if t.Camera.HalfHeight <= 0 {
		errs = append(errs, fmt.Errorf("camera.half_height must be positive, got %v", t.Camera.HalfHeight))
	}
	if t.Camera.Margin < 0 || t.Camera.Margin >= 0.5 {
		errs = append(errs, fmt.Errorf("camera.margin must be in [0, 0.5), got %v", t.Camera.Margin))
	}
	if len(t.Player.Characters) == 0 {
		errs = append(errs, errors.New("player.characters must not be empty"))
	} else if t.Player.Character < 0 || t.Player.Character >= len(t.Player.Characters) {
		errs = append(errs, fmt.Errorf("player.character %d out of range", t.Player.Character))
	}
	if t.Player.MoveSpeed < 0 || t.Player.FireRate < 0 || t.Player.FrameRate <= 0 {
		errs = append(errs, errors.New("player speeds must be non-negative and frame_rate positive"))
	}
	if t.Projectile.Speed < 0 || t.Projectile.Lifetime <= 0 || t.Projectile.Radius <= 0 {
		errs = append(errs, errors.New("projectile speed must be non-negative, lifetime and radius positive"))
	}
	if t.Adversary.HitPoints <= 0 {
		errs = append(errs, fmt.Errorf("adversary.hit_points must be positive, got %d", t.Adversary.HitPoints))
	}
	if t.Adversary.DetectionRadius < 0 || t.Adversary.FleeSpeed < 0 || t.Adversary.MoveSpeed < 0 {
		errs = append(errs, errors.New("adversary radius and speeds must be non-negative"))
	}
	if t.Adversary.WanderInterval <= 0 || t.Adversary.Radius <= 0 {
		errs = append(errs, errors.New("adversary wander_interval and radius must be positive"))
	}
	if t.Station.Size <= 0 || t.Station.BobSpeed <= 0 {
		errs = append(errs, errors.New("station size and bob_speed must be positive"))
	}
	if t.Tester.MinFrameRate <= 0 || t.Tester.MaxFrameRate < t.Tester.MinFrameRate || t.Tester.RateStep <= 0 {
		errs = append(errs, errors.New("tester frame rate bounds are inconsistent"))
	}
	return errors.Join(errs...)
}
