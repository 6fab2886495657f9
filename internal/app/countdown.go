package app

import "kartrace/internal/domain"

// StartCountdown locks all vehicles and opens the start gate after seconds of
// session time, emitting one countdown event per second.
// It is ignored unless the session is still in the lobby.
func (e *Engine) StartCountdown(seconds int) []Event {
	if e.phase != domain.PhaseLobby {
		e.logger.Debug("StartCountdown: ignored in phase %s", e.phase)
		return nil
	}
	if seconds <= 0 {
		return e.StartRaceTimer()
	}

	e.phase = domain.PhaseCountdown
	e.HoldAll()

	for i := 1; i <= seconds; i++ {
		remaining := seconds - i
		at := e.now + float64(i)
		if remaining > 0 {
			e.sched.Schedule(at, func() []Event {
				return []Event{countdownEvent(remaining)}
			})
			continue
		}
		e.sched.Schedule(at, func() []Event {
			e.UnfreezeAll()
			return e.StartRaceTimer()
		})
	}

	e.logger.Info("Countdown started: %d seconds.", seconds)
	return []Event{countdownEvent(seconds)}
}

func countdownEvent(remaining int) Event {
	return Event{Kind: EventCountdown, Payload: CountdownPayload{Remaining: remaining}}
}
