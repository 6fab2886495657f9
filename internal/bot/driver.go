package bot

import (
	"math/rand"

	"kartrace/internal/domain"
)

// TriggerRadius is how close a driver must get to a checkpoint for its trigger to fire.
const TriggerRadius = 2.0

// Driver steers a racer from checkpoint to checkpoint in straight lines.
type Driver struct {
	ID       domain.CompetitorID
	Name     string
	Level    Level
	Position domain.Vec3
	Target   int // next checkpoint to drive at

	baseSpeed float64
	profile   Profile
	rng       *rand.Rand
}

// Drive advances the driver by dt seconds when it may move and reports the
// checkpoint whose trigger it reached, if any. Triggers fire even while the
// vehicle is held, as a parked car on the line still overlaps it.
func (d *Driver) Drive(track *domain.Track, dt float64, canMove bool) (int, bool) {
	if track.Len() == 0 {
		return 0, false
	}
	target := track.Checkpoint(d.Target).Position
	if canMove {
		d.Position = MoveTowards(d.Position, target, d.speed()*dt)
	}
	if d.Position.Distance(target) > TriggerRadius {
		return 0, false
	}
	crossed := d.Target
	d.Target = (d.Target + 1) % track.Len()
	return crossed, true
}

// WantsFreeze rolls the power-up for one tick of dt seconds.
func (d *Driver) WantsFreeze(dt float64) bool {
	return d.rng.Float64() < d.profile.FreezeRate*dt
}

// BaseSpeed returns the driver's cruising speed in units per second.
func (d *Driver) BaseSpeed() float64 {
	return d.baseSpeed
}

func (d *Driver) speed() float64 {
	return d.baseSpeed * (1 + (d.rng.Float64()*2-1)*d.profile.Wobble)
}

// MoveTowards steps from towards to by at most step units without overshooting.
func MoveTowards(from, to domain.Vec3, step float64) domain.Vec3 {
	dist := from.Distance(to)
	if dist <= step || dist == 0 {
		return to
	}
	return from.Lerp(to, step/dist)
}
