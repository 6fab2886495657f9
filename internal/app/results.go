package app

import (
	"errors"
	"sort"

	"kartrace/internal/domain"
)

var ErrResultsNotReady = errors.New("no competitor has finished yet")

// FinalStandings returns a snapshot of every competitor ordered by position.
// Results are only meaningful once at least one competitor has finished.
func (e *Engine) FinalStandings() ([]domain.ProgressState, error) {
	if domain.CountFinished(e.order) == 0 {
		return nil, ErrResultsNotReady
	}
	return e.snapshotByPosition(), nil
}

func (e *Engine) snapshotByPosition() []domain.ProgressState {
	out := make([]domain.ProgressState, 0, len(e.order))
	for _, p := range e.order {
		out = append(out, p.Snapshot())
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CurrentPosition < out[j].CurrentPosition
	})
	return out
}
