package bot

import (
	"fmt"
	"math/rand"
	"strings"

	"kartrace/internal/domain"
)

// Level is a bot difficulty tier.
type Level int

const (
	LevelEasy Level = iota + 1
	LevelMedium
	LevelHard
)

func (l Level) String() string {
	switch l {
	case LevelEasy:
		return "easy"
	case LevelMedium:
		return "medium"
	case LevelHard:
		return "hard"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// ParseLevel maps a difficulty name to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return LevelEasy, nil
	case "medium", "":
		return LevelMedium, nil
	case "hard":
		return LevelHard, nil
	default:
		return 0, fmt.Errorf("unknown bot level: %q", s)
	}
}

// NewDriver creates a driver of the given level parked at start.
func NewDriver(id domain.CompetitorID, name string, level Level, start domain.Vec3, seed int64) (*Driver, error) {
	profile, ok := DefaultTuning[level]
	if !ok {
		return nil, fmt.Errorf("unknown bot level: %d", level)
	}
	rng := rand.New(rand.NewSource(seed))
	return &Driver{
		ID:        id,
		Name:      name,
		Level:     level,
		Position:  start,
		baseSpeed: profile.MinSpeed + rng.Float64()*(profile.MaxSpeed-profile.MinSpeed),
		profile:   profile,
		rng:       rng,
	}, nil
}

// NewDriverFromIdentity creates a driver for a pooled bot identity.
func NewDriverFromIdentity(identity BotIdentity, start domain.Vec3, seed int64) (*Driver, error) {
	level, err := ParseLevel(identity.Difficulty)
	if err != nil {
		return nil, err
	}
	return NewDriver(domain.CompetitorID(identity.UserID), identity.DisplayName, level, start, seed)
}
