package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidTuning is wrapped by every Validate failure.
var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning holds every gameplay constant of a round. Distances are in logical
// pixels, times in seconds, speeds in pixels per second.
type Tuning struct {
	// Playable area.
	ScreenWidth  float64 `yaml:"screenWidth"`
	ScreenHeight float64 `yaml:"screenHeight"`

	RoundSeconds float64 `yaml:"roundSeconds"`

	Player PlayerTuning `yaml:"player"`
	Star   FallerTuning `yaml:"star"`
	Bomb   FallerTuning `yaml:"bomb"`
	Pulse  PulseTuning  `yaml:"pulse"`
	Score  ScoreTuning  `yaml:"score"`
	Spawn  SpawnTuning  `yaml:"spawn"`
}

// PlayerTuning configures the paddle.
type PlayerTuning struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
	// BottomOffset is the distance from the bottom of the screen to the
	// paddle's top edge.
	BottomOffset float64 `yaml:"bottomOffset"`
}

// FallerTuning configures one kind of falling object.
type FallerTuning struct {
	Size     float64 `yaml:"size"` // Side of the square bounding box
	Speed    float64 `yaml:"speed"`
	Interval float64 `yaml:"interval"` // Seconds between spawns
	SpawnY   float64 `yaml:"spawnY"`
	Spin     float64 `yaml:"spin"` // Radians per second, cosmetic
}

// PulseTuning configures the cosmetic bomb pulse.
type PulseTuning struct {
	Frequency float64 `yaml:"frequency"`
	Amplitude float64 `yaml:"amplitude"`
}

// ScoreTuning configures score changes on collision.
type ScoreTuning struct {
	Star int `yaml:"star"`
	Bomb int `yaml:"bomb"` // Subtracted; the score never drops below zero
}

// SpawnTuning configures the off-screen despawn rule.
type SpawnTuning struct {
	DespawnMargin float64 `yaml:"despawnMargin"`
}

// DefaultTuning returns the standard round: 60 seconds, a star every 1.5s,
// a bomb every 3s.
func DefaultTuning() Tuning {
	return Tuning{
		ScreenWidth:  800,
		ScreenHeight: 600,
		RoundSeconds: 60,
		Player: PlayerTuning{
			Width:        60,
			Height:       20,
			Speed:        250,
			BottomOffset: 50,
		},
		Star: FallerTuning{
			Size:     30,
			Speed:    100,
			Interval: 1.5,
			SpawnY:   -30,
			Spin:     2,
		},
		Bomb: FallerTuning{
			Size:     25,
			Speed:    120,
			Interval: 3.0,
			SpawnY:   -25,
		},
		Pulse: PulseTuning{
			Frequency: 8,
			Amplitude: 0.1,
		},
		Score: ScoreTuning{
			Star: 10,
			Bomb: 20,
		},
		Spawn: SpawnTuning{
			DespawnMargin: 50,
		},
	}
}

// LoadTuning reads a YAML tuning file. Fields absent from the file keep
// their default values.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	if path == "" {
		return t, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("failed to read tuning file: %w", err)
	}

	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("failed to parse tuning file: %w", err)
	}

	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}

	return t, nil
}

// Validate checks that every rate, size and duration is usable.
func (t Tuning) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"screenWidth", t.ScreenWidth},
		{"screenHeight", t.ScreenHeight},
		{"roundSeconds", t.RoundSeconds},
		{"player.width", t.Player.Width},
		{"player.height", t.Player.Height},
		{"player.speed", t.Player.Speed},
		{"star.size", t.Star.Size},
		{"star.speed", t.Star.Speed},
		{"star.interval", t.Star.Interval},
		{"bomb.size", t.Bomb.Size},
		{"bomb.speed", t.Bomb.Speed},
		{"bomb.interval", t.Bomb.Interval},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %g", ErrInvalidTuning, p.name, p.value)
		}
	}

	if t.Score.Star < 0 || t.Score.Bomb < 0 {
		return fmt.Errorf("%w: score deltas must not be negative", ErrInvalidTuning)
	}
	if t.Spawn.DespawnMargin < 0 {
		return fmt.Errorf("%w: spawn.despawnMargin must not be negative", ErrInvalidTuning)
	}
	return nil
}
