package domain

// Phase represents the lifecycle stage of a race session.
type Phase string

const (
	// PhaseLobby is the pre-race state where competitors register.
	PhaseLobby Phase = "lobby"
	// PhaseCountdown is the start hold; vehicles are locked until it elapses.
	PhaseCountdown Phase = "countdown"
	// PhaseRacing is the active race; rankings are recomputed every tick.
	PhaseRacing Phase = "racing"
	// PhaseFinished is the state after every competitor crossed the line.
	PhaseFinished Phase = "finished"
)

// PlayerDisplayName is the reserved display name of the local human player.
const PlayerDisplayName = "YOU"

// CompetitorID is the stable opaque identity of a racing entity.
type CompetitorID string

// ProgressState holds the race progress of a single competitor.
type ProgressState struct {
	ID          CompetitorID
	DisplayName string

	CurrentLap        int // starts at 1, exceeds TotalLaps once finished
	LastCheckpointHit int // -1 until the first checkpoint is crossed
	Finished          bool

	RaceScore       float64
	CurrentPosition int // 1-based rank

	TotalRaceTime       float64 // seconds, set once at finish
	CurrentLapStartTime float64
	LapTimes            []float64
	BestLapTime         float64

	Position Vec3 // latest position sample

	Seq int // registration order
}

// NewProgressState returns the initial progress record for a freshly registered competitor.
func NewProgressState(id CompetitorID, displayName string, seq int) *ProgressState {
	return &ProgressState{
		ID:                id,
		DisplayName:       displayName,
		CurrentLap:        1,
		LastCheckpointHit: -1,
		Seq:               seq,
	}
}

// IsPlayer reports whether this competitor is the local human player.
func (p *ProgressState) IsPlayer() bool {
	return p.DisplayName == PlayerDisplayName
}

// LapsCompleted returns the number of full laps driven.
func (p *ProgressState) LapsCompleted() int {
	return p.CurrentLap - 1
}

// Snapshot returns a value copy that shares no memory with the live record.
func (p *ProgressState) Snapshot() ProgressState {
	out := *p
	out.LapTimes = append([]float64(nil), p.LapTimes...)
	return out
}
