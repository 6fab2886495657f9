package domain

import (
	"errors"
	"math"
)

// MinCheckpoints is the smallest checkpoint count that forms a closed lap.
const MinCheckpoints = 2

// MaxCheckpoints is the largest checkpoint count whose best unfinished score
// (last checkpoint plus full segment progress) still stays below a finish score.
const MaxCheckpoints = LapWeight/CheckpointWeight - 1

var (
	// ErrTooFewCheckpoints is returned by Track.Validate for degenerate tracks.
	ErrTooFewCheckpoints = errors.New("track needs at least 2 active checkpoints")
	// ErrTooManyCheckpoints is returned by Track.Validate when checkpoint scores would reach the lap tier.
	ErrTooManyCheckpoints = errors.New("track has more active checkpoints than the score tiers allow")
)

// Vec3 is a point in world space.
type Vec3 struct {
	X, Y, Z float64
}

// Distance returns the Euclidean distance between two points.
func (v Vec3) Distance(o Vec3) float64 {
	dx := v.X - o.X
	dy := v.Y - o.Y
	dz := v.Z - o.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Lerp interpolates linearly from v towards o.
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return Vec3{
		X: v.X + (o.X-v.X)*t,
		Y: v.Y + (o.Y-v.Y)*t,
		Z: v.Z + (o.Z-v.Z)*t,
	}
}

// Marker is a checkpoint as authored in scene configuration.
type Marker struct {
	Name     string
	Position Vec3
	Active   bool
}

// Checkpoint is an indexed marker on a built track.
type Checkpoint struct {
	Index    int
	Name     string
	Position Vec3
}

// Track is the ordered, read-only checkpoint sequence of a race.
type Track struct {
	checkpoints []Checkpoint
}

// NewTrack builds a track from authored markers. Inactive markers are skipped and
// every remaining marker is indexed by its position in the sequence.
func NewTrack(markers []Marker) *Track {
	t := &Track{checkpoints: make([]Checkpoint, 0, len(markers))}
	for _, m := range markers {
		if !m.Active {
			continue
		}
		t.checkpoints = append(t.checkpoints, Checkpoint{
			Index:    len(t.checkpoints),
			Name:     m.Name,
			Position: m.Position,
		})
	}
	return t
}

// Len returns the number of checkpoints.
func (t *Track) Len() int {
	if t == nil {
		return 0
	}
	return len(t.checkpoints)
}

// Checkpoint returns the checkpoint at index i.
func (t *Track) Checkpoint(i int) Checkpoint {
	return t.checkpoints[i]
}

// Checkpoints returns a copy of the checkpoint sequence.
func (t *Track) Checkpoints() []Checkpoint {
	if t == nil {
		return nil
	}
	return append([]Checkpoint(nil), t.checkpoints...)
}

// Validate reports configuration problems that make rankings meaningless.
func (t *Track) Validate() error {
	if t.Len() < MinCheckpoints {
		return ErrTooFewCheckpoints
	}
	if t.Len() > MaxCheckpoints {
		return ErrTooManyCheckpoints
	}
	return nil
}

// NextCheckpoint returns the only index a competitor may cross after last.
func NextCheckpoint(last, total int) int {
	if total <= 0 {
		return 0
	}
	return (last + 1) % total
}
