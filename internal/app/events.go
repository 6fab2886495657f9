package app

import "kartrace/internal/domain"

// EventKind identifies emitted race events for host dispatch.
type EventKind string

const (
	EventCountdown          EventKind = "countdown"
	EventRaceStarted        EventKind = "race_started"
	EventLapCompleted       EventKind = "lap_completed"
	EventCompetitorFinished EventKind = "competitor_finished"
	EventRaceEnded          EventKind = "race_ended"
)

// Event is a race event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []domain.CompetitorID // empty means broadcast
}

type CountdownPayload struct {
	Remaining int
}

type RaceStartedPayload struct {
	StartTime float64
}

type LapCompletedPayload struct {
	ID      domain.CompetitorID
	Lap     int // the lap that was just completed
	LapTime float64
}

type CompetitorFinishedPayload struct {
	ID          domain.CompetitorID
	FinishOrder int // 1 for the first finisher
	TotalTime   float64
}

type RaceEndedPayload struct {
	Standings []domain.ProgressState
}
