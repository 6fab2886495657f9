package config

import (
	"errors"
	"os"
	"testing"

	"kartrace/internal/domain"
)

func TestParseRaceConfigAppliesDefaults(t *testing.T) {
	c, err := ParseRaceConfig([]byte(`{
		"total_laps": 2,
		"checkpoints": [
			{"name": "start", "x": 0, "z": 0},
			{"name": "hairpin", "x": 40, "z": 10, "active": false},
			{"name": "back", "x": 80, "z": 0}
		]
	}`))
	if err != nil {
		t.Fatalf("ParseRaceConfig error: %v", err)
	}
	if c.TotalLaps != 2 {
		t.Fatalf("TotalLaps = %d, want 2", c.TotalLaps)
	}
	if c.TickRate != Default().TickRate {
		t.Fatalf("TickRate = %d, want default %d", c.TickRate, Default().TickRate)
	}

	markers := c.Markers()
	if len(markers) != 3 {
		t.Fatalf("markers = %d, want 3", len(markers))
	}
	if !markers[0].Active || markers[1].Active || !markers[2].Active {
		t.Fatalf("unexpected active flags: %+v", markers)
	}
	if markers[2].Position.X != 80 {
		t.Fatalf("marker x = %v, want 80", markers[2].Position.X)
	}
}

func TestParseRaceConfigRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{name: "ZeroLaps", data: `{"total_laps": 0}`, want: ErrInvalidLaps},
		{name: "TickRateTooHigh", data: `{"tick_rate": 120}`, want: ErrInvalidTickRate},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := ParseRaceConfig([]byte(test.data))
			if !errors.Is(err, test.want) {
				t.Fatalf("ParseRaceConfig error = %v, want %v", err, test.want)
			}
		})
	}
}

func TestParseRaceConfigMalformedJSON(t *testing.T) {
	if _, err := ParseRaceConfig([]byte(`{`)); err == nil {
		t.Fatalf("expected error for malformed json")
	}
}

func TestClampFreeze(t *testing.T) {
	c := Default()
	c.FreezeSeconds = 5
	c.MaxFreezeSeconds = 8

	if got := c.ClampFreeze(0); got != 5 {
		t.Fatalf("ClampFreeze(0) = %v, want 5", got)
	}
	if got := c.ClampFreeze(3); got != 3 {
		t.Fatalf("ClampFreeze(3) = %v, want 3", got)
	}
	if got := c.ClampFreeze(30); got != 8 {
		t.Fatalf("ClampFreeze(30) = %v, want 8", got)
	}
}

func TestGetRaceConfigWithoutLoadReturnsDefaults(t *testing.T) {
	c := GetRaceConfig()
	if c == nil || c.TotalLaps != Default().TotalLaps {
		t.Fatalf("GetRaceConfig() = %+v, want defaults", c)
	}
}

func TestShippedRaceConfigIsValid(t *testing.T) {
	data, err := os.ReadFile("../../data/race_config.json")
	if err != nil {
		t.Fatalf("read shipped config: %v", err)
	}
	c, err := ParseRaceConfig(data)
	if err != nil {
		t.Fatalf("ParseRaceConfig error: %v", err)
	}

	track := domain.NewTrack(c.Markers())
	if err := track.Validate(); err != nil {
		t.Fatalf("shipped track invalid: %v", err)
	}
	if track.Len() != 6 {
		t.Fatalf("active checkpoints = %d, want 6", track.Len())
	}
}
