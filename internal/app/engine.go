package app

import (
	"kartrace/internal/domain"
	"kartrace/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

// minStartTime keeps raceStartTime non-zero when the race starts at clock zero,
// since a zero start time means "not started".
const minStartTime = 1e-6

// Settings configures a race session.
type Settings struct {
	TotalLaps int
	Track     *domain.Track
}

// Engine tracks race progress and rankings for one race session.
// It is not safe for concurrent use; the host tick loop owns it.
type Engine struct {
	logger   runtime.Logger
	vehicles ports.VehiclePort
	sched    *Scheduler

	track          *domain.Track
	totalLaps      int
	rankingEnabled bool

	phase         domain.Phase
	now           float64
	raceStartTime float64

	competitors map[domain.CompetitorID]*domain.ProgressState
	order       []*domain.ProgressState // registration order
	standings   []*domain.ProgressState // ranking order
	frozen      map[domain.CompetitorID]*freezeEntry
}

// NewEngine constructs an engine for one race session.
// A track that fails Track.Validate is reported once and leaves ranking disabled.
// vehicles may be nil when no locomotion collaborator is attached.
func NewEngine(settings Settings, vehicles ports.VehiclePort, logger runtime.Logger) *Engine {
	if vehicles == nil {
		vehicles = noopVehicles{}
	}
	e := &Engine{
		logger:      logger.WithField("component", "race_engine"),
		vehicles:    vehicles,
		sched:       NewScheduler(),
		track:       settings.Track,
		totalLaps:   settings.TotalLaps,
		phase:       domain.PhaseLobby,
		competitors: make(map[domain.CompetitorID]*domain.ProgressState),
		frozen:      make(map[domain.CompetitorID]*freezeEntry),
	}
	if e.track == nil {
		e.track = domain.NewTrack(nil)
	}

	if err := e.track.Validate(); err != nil {
		e.logger.Error("NewEngine: %v (found %d); rankings disabled.", err, e.track.Len())
	} else {
		e.rankingEnabled = true
	}
	if e.totalLaps <= 0 {
		e.logger.Error("NewEngine: total laps %d is invalid, using 1.", e.totalLaps)
		e.totalLaps = 1
	}
	return e
}

// RegisterCompetitor adds a competitor. A second call for the same id is a no-op.
// Returns true when the competitor was newly added.
func (e *Engine) RegisterCompetitor(id domain.CompetitorID, displayName string) bool {
	if _, ok := e.competitors[id]; ok {
		return false
	}

	p := domain.NewProgressState(id, displayName, len(e.order))
	if e.raceStartTime != 0 {
		p.CurrentLapStartTime = e.raceStartTime
	}
	e.competitors[id] = p
	e.order = append(e.order, p)
	e.standings = append(e.standings, p)

	// Late joiners are locked like everybody else during the start countdown.
	if e.phase == domain.PhaseCountdown {
		e.hold(id)
	}

	e.logger.Info("Registered competitor %s (%s).", displayName, id)
	return true
}

// StartRaceTimer opens the start gate: rankings begin and lap timers start now.
// Calling it again after the race started is a no-op.
func (e *Engine) StartRaceTimer() []Event {
	if e.raceStartTime != 0 {
		return nil
	}

	e.raceStartTime = e.now
	if e.raceStartTime <= 0 {
		e.raceStartTime = minStartTime
	}
	for _, p := range e.order {
		p.CurrentLapStartTime = e.raceStartTime
	}
	e.phase = domain.PhaseRacing

	e.logger.Info("Race timer started at %.3f with %d competitors.", e.raceStartTime, len(e.order))
	return []Event{{
		Kind:    EventRaceStarted,
		Payload: RaceStartedPayload{StartTime: e.raceStartTime},
	}}
}

// Advance moves the session clock forward and runs every deferred action now due.
// The clock never moves backwards.
func (e *Engine) Advance(now float64) []Event {
	if now < e.now {
		e.logger.Debug("Advance: ignoring clock regression %.3f -> %.3f", e.now, now)
		now = e.now
	}
	e.now = now
	return e.sched.RunDue(now)
}

// OnCheckpointCrossed applies a checkpoint crossing reported by the trigger collaborator.
// Unknown competitors, finished competitors and out-of-order indices are ignored.
func (e *Engine) OnCheckpointCrossed(id domain.CompetitorID, checkpointIndex int) []Event {
	p, ok := e.competitors[id]
	if !ok || p.Finished {
		return nil
	}
	total := e.track.Len()
	if total == 0 {
		return nil
	}

	expected := domain.NextCheckpoint(p.LastCheckpointHit, total)
	if checkpointIndex != expected {
		e.logger.Debug("OnCheckpointCrossed: %s hit %d, expected %d; ignored.", id, checkpointIndex, expected)
		return nil
	}

	previous := p.LastCheckpointHit
	p.LastCheckpointHit = checkpointIndex

	if checkpointIndex != 0 || previous != total-1 {
		return nil
	}

	lapTime := e.now - p.CurrentLapStartTime
	p.LapTimes = append(p.LapTimes, lapTime)
	if p.BestLapTime == 0 || lapTime < p.BestLapTime {
		p.BestLapTime = lapTime
	}
	completed := p.CurrentLap
	p.CurrentLap++
	p.CurrentLapStartTime = e.now

	events := []Event{{
		Kind:    EventLapCompleted,
		Payload: LapCompletedPayload{ID: id, Lap: completed, LapTime: lapTime},
	}}

	if p.CurrentLap > e.totalLaps {
		events = append(events, e.finish(p)...)
	}
	return events
}

func (e *Engine) finish(p *domain.ProgressState) []Event {
	p.Finished = true
	p.TotalRaceTime = e.now - e.raceStartTime
	p.RaceScore = domain.FinishScore(p.CurrentLap, p.TotalRaceTime)

	if entry, ok := e.frozen[p.ID]; ok {
		entry.resume.Cancel()
		delete(e.frozen, p.ID)
	}
	e.vehicles.Halt(p.ID)

	finished := domain.CountFinished(e.order)
	e.logger.Info("Competitor %s finished #%d in %s.", p.DisplayName, finished, domain.FormatRaceTime(p.TotalRaceTime))

	events := []Event{{
		Kind:    EventCompetitorFinished,
		Payload: CompetitorFinishedPayload{ID: p.ID, FinishOrder: finished, TotalTime: p.TotalRaceTime},
	}}

	if finished == len(e.order) {
		e.phase = domain.PhaseFinished
		e.UpdateRankings()
		e.logger.Info("Race ended, all %d competitors finished.", finished)
		events = append(events, Event{
			Kind:    EventRaceEnded,
			Payload: RaceEndedPayload{Standings: e.snapshotByPosition()},
		})
	}
	return events
}

// ReportPosition stores the latest position sample of a competitor.
func (e *Engine) ReportPosition(id domain.CompetitorID, pos domain.Vec3) {
	p, ok := e.competitors[id]
	if !ok || p.Finished {
		return
	}
	p.Position = pos
}

// CompetitorState returns a snapshot of one competitor's progress.
func (e *Engine) CompetitorState(id domain.CompetitorID) (domain.ProgressState, bool) {
	p, ok := e.competitors[id]
	if !ok {
		return domain.ProgressState{}, false
	}
	return p.Snapshot(), true
}

// TotalRacers returns the number of registered competitors.
func (e *Engine) TotalRacers() int {
	return len(e.order)
}

// Phase returns the current session phase.
func (e *Engine) Phase() domain.Phase {
	return e.phase
}

// Now returns the session clock in seconds.
func (e *Engine) Now() float64 {
	return e.now
}

// RaceStartTime returns the start gate time; zero until the race starts.
func (e *Engine) RaceStartTime() float64 {
	return e.raceStartTime
}

// ElapsedRaceTime returns seconds since the start gate opened, or zero before it.
func (e *Engine) ElapsedRaceTime() float64 {
	if e.raceStartTime == 0 {
		return 0
	}
	return e.now - e.raceStartTime
}

// TotalLaps returns the number of laps a competitor must complete to finish.
func (e *Engine) TotalLaps() int {
	return e.totalLaps
}

// Track returns the read-only checkpoint registry of the session.
func (e *Engine) Track() *domain.Track {
	return e.track
}

// RankingEnabled reports whether the track is well formed enough to rank competitors.
func (e *Engine) RankingEnabled() bool {
	return e.rankingEnabled
}

type noopVehicles struct{}

func (noopVehicles) MovementEnabled(domain.CompetitorID) bool { return true }
func (noopVehicles) Suspend(domain.CompetitorID)              {}
func (noopVehicles) Resume(domain.CompetitorID)               {}
func (noopVehicles) Halt(domain.CompetitorID)                 {}
