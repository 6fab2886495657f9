package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"kartrace/internal/domain"
)

// CheckpointConfig is a checkpoint marker as authored in the track file.
type CheckpointConfig struct {
	Name   string  `json:"name"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Z      float64 `json:"z"`
	Active *bool   `json:"active,omitempty"` // nil means active
}

type RaceConfig struct {
	TotalLaps        int `json:"total_laps"`
	CountdownSeconds int `json:"countdown_seconds"`
	// TickRate is the number of match loop ticks per second (Nakama allows 1..60).
	TickRate int `json:"tick_rate"`
	// StandingsEveryTicks throttles standings broadcasts; rank changes are always sent.
	StandingsEveryTicks int     `json:"standings_every_ticks"`
	MaxRacers           int     `json:"max_racers"`
	FreezeSeconds       float64 `json:"freeze_seconds"`
	MaxFreezeSeconds    float64 `json:"max_freeze_seconds"`

	Checkpoints []CheckpointConfig `json:"checkpoints"`
}

var (
	ErrInvalidLaps     = errors.New("total_laps must be positive")
	ErrInvalidTickRate = errors.New("tick_rate must be within 1..60")
)

var (
	cfg      *RaceConfig
	loadOnce sync.Once
	loadErr  error
)

// Default returns the settings used when no config file is available.
func Default() *RaceConfig {
	return &RaceConfig{
		TotalLaps:           3,
		CountdownSeconds:    3,
		TickRate:            20,
		StandingsEveryTicks: 5,
		MaxRacers:           8,
		FreezeSeconds:       5,
		MaxFreezeSeconds:    10,
	}
}

// LoadRaceConfig loads the race configuration from the given path once per process.
func LoadRaceConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read race config: %w", err)
			return
		}

		c, err := ParseRaceConfig(data)
		if err != nil {
			loadErr = err
			return
		}
		cfg = c
	})
	return loadErr
}

// GetRaceConfig returns the loaded race configuration, or defaults if none was loaded.
func GetRaceConfig() *RaceConfig {
	if cfg == nil {
		return Default()
	}
	c := *cfg
	c.Checkpoints = append([]CheckpointConfig(nil), cfg.Checkpoints...)
	return &c
}

// ParseRaceConfig decodes a race config on top of the defaults.
func ParseRaceConfig(data []byte) (*RaceConfig, error) {
	c := Default()
	if err := json.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal race config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid race config: %w", err)
	}
	return c, nil
}

// Validate checks values that would break the match loop. Checkpoint problems are
// not reported here: a degenerate track is tolerated and disables ranking instead.
func (c *RaceConfig) Validate() error {
	if c.TotalLaps <= 0 {
		return ErrInvalidLaps
	}
	if c.TickRate < 1 || c.TickRate > 60 {
		return ErrInvalidTickRate
	}
	if c.StandingsEveryTicks <= 0 {
		c.StandingsEveryTicks = 1
	}
	if c.MaxFreezeSeconds < c.FreezeSeconds {
		c.MaxFreezeSeconds = c.FreezeSeconds
	}
	return nil
}

// Markers converts the authored checkpoints into domain markers.
func (c *RaceConfig) Markers() []domain.Marker {
	out := make([]domain.Marker, 0, len(c.Checkpoints))
	for _, cp := range c.Checkpoints {
		active := cp.Active == nil || *cp.Active
		out = append(out, domain.Marker{
			Name:     cp.Name,
			Position: domain.Vec3{X: cp.X, Y: cp.Y, Z: cp.Z},
			Active:   active,
		})
	}
	return out
}

// ClampFreeze bounds a requested freeze duration; zero or negative requests use the default.
func (c *RaceConfig) ClampFreeze(requested float64) float64 {
	if requested <= 0 {
		return c.FreezeSeconds
	}
	if requested > c.MaxFreezeSeconds {
		return c.MaxFreezeSeconds
	}
	return requested
}
