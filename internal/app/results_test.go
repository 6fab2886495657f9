package app

import (
	"errors"
	"testing"
)

func TestFinalStandingsNotReadyBeforeFirstFinisher(t *testing.T) {
	e, _ := newTestEngine(t, 2, 2)
	e.RegisterCompetitor("c1", "Bolt")
	e.StartRaceTimer()
	driveLaps(e, "c1", 1)

	if _, err := e.FinalStandings(); !errors.Is(err, ErrResultsNotReady) {
		t.Fatalf("FinalStandings error = %v, want ErrResultsNotReady", err)
	}
}

func TestFinalStandingsOrderedByPosition(t *testing.T) {
	e, _ := newTestEngine(t, 1, 2)
	e.RegisterCompetitor("c1", "Bolt")
	e.RegisterCompetitor("c2", "Dash")
	e.RegisterCompetitor("c3", "Zip")
	e.StartRaceTimer()

	cross(e, "c1", 0)
	e.Advance(20)
	driveLaps(e, "c3", 1)
	e.UpdateRankings()

	standings, err := e.FinalStandings()
	if err != nil {
		t.Fatalf("FinalStandings error: %v", err)
	}
	if len(standings) != 3 {
		t.Fatalf("standings = %d, want 3", len(standings))
	}
	want := []string{"c3", "c1", "c2"}
	for i, id := range want {
		if string(standings[i].ID) != id {
			t.Fatalf("rank %d = %s, want %s", i+1, standings[i].ID, id)
		}
		if standings[i].CurrentPosition != i+1 {
			t.Fatalf("rank %d position = %d", i+1, standings[i].CurrentPosition)
		}
	}

	// The result is a snapshot, not a live view.
	standings[0].DisplayName = "changed"
	if mustState(t, e, "c3").DisplayName != "Zip" {
		t.Fatalf("snapshot mutation leaked into engine")
	}
}
