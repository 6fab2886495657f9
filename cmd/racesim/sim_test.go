package main

import (
	"errors"
	"io"
	"log"
	"testing"

	"kartrace/internal/config"
	"kartrace/internal/domain"
)

func squareTrack() config.RaceConfig {
	cfg := *config.Default()
	cfg.TotalLaps = 2
	cfg.CountdownSeconds = 1
	cfg.TickRate = 20
	cfg.FreezeSeconds = 2
	cfg.Checkpoints = []config.CheckpointConfig{
		{Name: "start", X: 0, Z: 0},
		{Name: "turn 1", X: 40, Z: 0},
		{Name: "turn 2", X: 40, Z: 40},
		{Name: "turn 3", X: 0, Z: 40},
	}
	return cfg
}

func quietLogger() *stdLogger {
	return newStdLogger(log.New(io.Discard, "", 0), true)
}

func TestSimulationRunsToCompletion(t *testing.T) {
	sim, err := NewSimulation(squareTrack(), Options{Drivers: 3, Seed: 7, FreezeAt: 3}, quietLogger())
	if err != nil {
		t.Fatalf("NewSimulation error: %v", err)
	}

	standings, err := sim.Run()
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if len(standings) != 3 {
		t.Fatalf("standings = %d, want 3", len(standings))
	}
	for i, p := range standings {
		if !p.Finished {
			t.Fatalf("%s did not finish", p.DisplayName)
		}
		if p.CurrentPosition != i+1 {
			t.Fatalf("position %d at index %d", p.CurrentPosition, i)
		}
		if len(p.LapTimes) != 2 {
			t.Fatalf("%s lap times = %v, want 2 laps", p.DisplayName, p.LapTimes)
		}
		if i > 0 && p.TotalRaceTime < standings[i-1].TotalRaceTime {
			t.Fatalf("finish times out of order: %v before %v", standings[i-1].TotalRaceTime, p.TotalRaceTime)
		}
	}

	for _, p := range standings {
		if p.ID == sim.Player() {
			if sim.vehicles.suspends[p.ID] != 1 {
				t.Fatalf("player should only be held for the countdown, suspends = %d", sim.vehicles.suspends[p.ID])
			}
			continue
		}
		if sim.vehicles.suspends[p.ID] != 2 {
			t.Fatalf("%s suspends = %d, want countdown hold + freeze", p.DisplayName, sim.vehicles.suspends[p.ID])
		}
	}
}

func TestSimulationRejectsDegenerateTrack(t *testing.T) {
	cfg := squareTrack()
	cfg.Checkpoints = cfg.Checkpoints[:1]
	if _, err := NewSimulation(cfg, Options{Drivers: 2}, quietLogger()); !errors.Is(err, domain.ErrTooFewCheckpoints) {
		t.Fatalf("error = %v, want ErrTooFewCheckpoints", err)
	}
}

func TestSimulationTimeout(t *testing.T) {
	cfg := squareTrack()
	cfg.TotalLaps = 50
	sim, err := NewSimulation(cfg, Options{Drivers: 1, Seed: 1, MaxSeconds: 5}, quietLogger())
	if err != nil {
		t.Fatalf("NewSimulation error: %v", err)
	}
	if _, err := sim.Run(); !errors.Is(err, ErrRaceTimeout) {
		t.Fatalf("Run error = %v, want ErrRaceTimeout", err)
	}
}
