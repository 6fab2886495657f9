package main

import (
	"errors"
	"fmt"

	"kartrace/internal/app"
	"kartrace/internal/bot"
	"kartrace/internal/config"
	"kartrace/internal/domain"

	"github.com/heroiclabs/nakama-common/runtime"
)

var ErrRaceTimeout = errors.New("race did not finish in time")

// Options control a simulated race.
type Options struct {
	Drivers    int
	Seed       int64
	FreezeAt   float64 // session second the player fires the freeze power-up; 0 disables
	MaxSeconds float64

	// BotPowerUps lets bots fire their own freeze once per race.
	BotPowerUps bool
}

// simVehicles is the locomotion side of the simulation.
type simVehicles struct {
	enabled  map[domain.CompetitorID]bool
	suspends map[domain.CompetitorID]int
}

func newSimVehicles() *simVehicles {
	return &simVehicles{
		enabled:  make(map[domain.CompetitorID]bool),
		suspends: make(map[domain.CompetitorID]int),
	}
}

func (v *simVehicles) MovementEnabled(id domain.CompetitorID) bool {
	enabled, ok := v.enabled[id]
	return !ok || enabled
}

func (v *simVehicles) Suspend(id domain.CompetitorID) {
	v.enabled[id] = false
	v.suspends[id]++
}

func (v *simVehicles) Resume(id domain.CompetitorID) { v.enabled[id] = true }
func (v *simVehicles) Halt(id domain.CompetitorID)   { v.enabled[id] = false }

// Simulation drives the race engine with bot drivers at a fixed tick rate.
type Simulation struct {
	cfg      config.RaceConfig
	opts     Options
	engine   *app.Engine
	vehicles *simVehicles
	drivers  []*bot.Driver
	logger   runtime.Logger

	tick       int64
	freezeUsed map[domain.CompetitorID]bool
}

// NewSimulation registers the player and opts.Drivers-1 bots on a fresh engine.
func NewSimulation(cfg config.RaceConfig, opts Options, logger runtime.Logger) (*Simulation, error) {
	track := domain.NewTrack(cfg.Markers())
	if err := track.Validate(); err != nil {
		return nil, fmt.Errorf("racesim: %w", err)
	}
	if opts.Drivers < 1 {
		return nil, fmt.Errorf("racesim: need at least one driver, got %d", opts.Drivers)
	}
	if opts.MaxSeconds <= 0 {
		opts.MaxSeconds = 3600
	}

	vehicles := newSimVehicles()
	s := &Simulation{
		cfg:        cfg,
		opts:       opts,
		vehicles:   vehicles,
		logger:     logger,
		freezeUsed: make(map[domain.CompetitorID]bool),
		engine:     app.NewEngine(app.Settings{TotalLaps: cfg.TotalLaps, Track: track}, vehicles, logger),
	}

	start := track.Checkpoint(0).Position
	for i := 0; i < opts.Drivers; i++ {
		name, level := domain.PlayerDisplayName, bot.LevelHard
		if i > 0 {
			identity := bot.GetBotIdentity(i - 1)
			parsed, err := bot.ParseLevel(identity.Difficulty)
			if err != nil {
				return nil, fmt.Errorf("racesim: bot %s: %w", identity.UserID, err)
			}
			name, level = identity.DisplayName, parsed
		}
		d, err := bot.NewDriver(app.NewCompetitorID(), name, level, start, opts.Seed+int64(i))
		if err != nil {
			return nil, fmt.Errorf("racesim: %w", err)
		}
		s.drivers = append(s.drivers, d)
		s.engine.RegisterCompetitor(d.ID, d.Name)
	}
	return s, nil
}

// Engine exposes the race engine driven by the simulation.
func (s *Simulation) Engine() *app.Engine {
	return s.engine
}

// Player returns the human player's id.
func (s *Simulation) Player() domain.CompetitorID {
	return s.drivers[0].ID
}

// Run counts down, races until everyone finished and returns the final standings.
func (s *Simulation) Run() ([]domain.ProgressState, error) {
	s.report(s.engine.StartCountdown(s.cfg.CountdownSeconds))

	for s.engine.Phase() != domain.PhaseFinished {
		if s.engine.Now() > s.opts.MaxSeconds {
			return nil, ErrRaceTimeout
		}
		s.report(s.Step())
	}
	return s.engine.FinalStandings()
}

// Step advances the session by one tick: deferred actions, driver movement and
// checkpoint triggers, then the ranking pass.
func (s *Simulation) Step() []app.Event {
	s.tick++
	now := float64(s.tick) / float64(s.cfg.TickRate)
	dt := 1 / float64(s.cfg.TickRate)

	events := s.engine.Advance(now)

	if s.engine.Phase() == domain.PhaseRacing {
		if s.opts.FreezeAt > 0 && now >= s.opts.FreezeAt {
			s.freeze(s.drivers[0])
		}
		if s.opts.BotPowerUps {
			for _, d := range s.drivers[1:] {
				if d.WantsFreeze(dt) {
					s.freeze(d)
				}
			}
		}
	}

	track := s.engine.Track()
	for _, d := range s.drivers {
		if idx, ok := d.Drive(track, dt, s.vehicles.MovementEnabled(d.ID)); ok {
			events = append(events, s.engine.OnCheckpointCrossed(d.ID, idx)...)
		}
		s.engine.ReportPosition(d.ID, d.Position)
	}

	if s.engine.UpdateRankings() && s.tick%int64(s.cfg.StandingsEveryTicks) == 0 {
		s.logger.Debug("Standings at %s: %s", domain.FormatRaceTime(s.engine.ElapsedRaceTime()), leaderLine(s.engine.Standings()))
	}
	return events
}

func (s *Simulation) report(events []app.Event) {
	for _, ev := range events {
		switch p := ev.Payload.(type) {
		case app.CountdownPayload:
			s.logger.Info("Countdown: %d", p.Remaining)
		case app.RaceStartedPayload:
			s.logger.Info("GO!")
		case app.LapCompletedPayload:
			s.logger.Debug("%s completed lap %d in %s", s.name(p.ID), p.Lap, domain.FormatRaceTime(p.LapTime))
		case app.CompetitorFinishedPayload:
			s.logger.Info("%s finished #%d in %s", s.name(p.ID), p.FinishOrder, domain.FormatRaceTime(p.TotalTime))
		}
	}
}

func (s *Simulation) name(id domain.CompetitorID) string {
	if p, ok := s.engine.CompetitorState(id); ok {
		return p.DisplayName
	}
	return string(id)
}

// freeze fires d's one-shot freeze power-up.
func (s *Simulation) freeze(d *bot.Driver) {
	if s.freezeUsed[d.ID] {
		return
	}
	s.freezeUsed[d.ID] = true
	frozen := s.engine.FreezeOpponents(d.ID, s.cfg.FreezeSeconds)
	s.logger.Info("%s used freeze on %d opponents.", d.Name, len(frozen))
}

func leaderLine(standings []domain.ProgressState) string {
	if len(standings) == 0 {
		return "-"
	}
	p := standings[0]
	return fmt.Sprintf("P1 %s lap %d cp %d", p.DisplayName, p.CurrentLap, p.LastCheckpointHit)
}
