package app

import "kartrace/internal/domain"

// freezeEntry records why a competitor is immobilized. Only the latest expiry
// matters, so an overlapping shorter freeze never resumes a target early.
type freezeEntry struct {
	until  float64
	hold   bool  // indefinite, released only by UnfreezeAll
	resume *Task // nil for holds
}

// Freeze immobilizes the given competitors for duration seconds of session time.
// Targets whose vehicle cannot move are left alone. A target that is already
// frozen keeps its suspension and takes the later of the two expiries.
// Returns the competitors this call froze or extended.
func (e *Engine) Freeze(targets []domain.CompetitorID, duration float64) []domain.CompetitorID {
	if duration <= 0 {
		return nil
	}
	until := e.now + duration

	var affected []domain.CompetitorID
	for _, id := range targets {
		p, ok := e.competitors[id]
		if !ok || p.Finished {
			continue
		}

		if entry, ok := e.frozen[id]; ok {
			if entry.hold || until <= entry.until {
				continue
			}
			entry.resume.Cancel()
			entry.until = until
			entry.resume = e.scheduleResume(id, until)
			affected = append(affected, id)
			continue
		}

		if !e.vehicles.MovementEnabled(id) {
			continue
		}
		e.vehicles.Suspend(id)
		e.frozen[id] = &freezeEntry{until: until, resume: e.scheduleResume(id, until)}
		affected = append(affected, id)
	}

	if len(affected) > 0 {
		e.logger.Debug("Freeze: %d competitors frozen until %.3f", len(affected), until)
	}
	return affected
}

// FreezeAll freezes every competitor for duration seconds.
func (e *Engine) FreezeAll(duration float64) []domain.CompetitorID {
	return e.Freeze(e.ids(), duration)
}

// FreezeOpponents freezes everyone except requester, as the freeze power-up does.
func (e *Engine) FreezeOpponents(requester domain.CompetitorID, duration float64) []domain.CompetitorID {
	targets := make([]domain.CompetitorID, 0, len(e.order))
	for _, p := range e.order {
		if p.ID != requester {
			targets = append(targets, p.ID)
		}
	}
	return e.Freeze(targets, duration)
}

// HoldAll locks every competitor until UnfreezeAll, e.g. during the start countdown.
func (e *Engine) HoldAll() {
	for _, p := range e.order {
		e.hold(p.ID)
	}
}

func (e *Engine) hold(id domain.CompetitorID) {
	p, ok := e.competitors[id]
	if !ok || p.Finished {
		return
	}
	if entry, ok := e.frozen[id]; ok {
		entry.resume.Cancel()
		entry.resume = nil
		entry.hold = true
		return
	}
	if !e.vehicles.MovementEnabled(id) {
		return
	}
	e.vehicles.Suspend(id)
	e.frozen[id] = &freezeEntry{hold: true}
}

// UnfreezeAll releases every hold and pending freeze immediately.
func (e *Engine) UnfreezeAll() {
	for _, p := range e.order {
		entry, ok := e.frozen[p.ID]
		if !ok {
			continue
		}
		entry.resume.Cancel()
		e.resume(p.ID)
	}
}

// IsFrozen reports whether the engine currently holds the competitor frozen.
func (e *Engine) IsFrozen(id domain.CompetitorID) bool {
	_, ok := e.frozen[id]
	return ok
}

func (e *Engine) scheduleResume(id domain.CompetitorID, at float64) *Task {
	return e.sched.Schedule(at, func() []Event {
		e.resume(id)
		return nil
	})
}

func (e *Engine) resume(id domain.CompetitorID) {
	delete(e.frozen, id)
	if p, ok := e.competitors[id]; ok && p.Finished {
		return
	}
	e.vehicles.Resume(id)
}

func (e *Engine) ids() []domain.CompetitorID {
	out := make([]domain.CompetitorID, 0, len(e.order))
	for _, p := range e.order {
		out = append(out, p.ID)
	}
	return out
}
