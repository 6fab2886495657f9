package app

import (
	"sort"

	"kartrace/internal/domain"
)

// UpdateRankings rescores every unfinished competitor and reassigns positions.
// It runs only once the race timer started and the track is well formed.
// Returns true when any competitor's position changed.
func (e *Engine) UpdateRankings() bool {
	if e.raceStartTime == 0 || !e.rankingEnabled {
		return false
	}

	for _, p := range e.order {
		if p.Finished {
			continue
		}
		p.RaceScore = domain.ScoreOnTrack(p, e.track)
	}

	sort.SliceStable(e.standings, func(i, j int) bool {
		a, b := e.standings[i], e.standings[j]
		if a.RaceScore != b.RaceScore {
			return a.RaceScore > b.RaceScore
		}
		return a.Seq < b.Seq
	})

	changed := false
	for i, p := range e.standings {
		if p.CurrentPosition != i+1 {
			p.CurrentPosition = i + 1
			changed = true
		}
	}
	return changed
}

// Standings returns a snapshot of all competitors in current ranking order.
func (e *Engine) Standings() []domain.ProgressState {
	out := make([]domain.ProgressState, 0, len(e.standings))
	for _, p := range e.standings {
		out = append(out, p.Snapshot())
	}
	return out
}
