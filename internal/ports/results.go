package ports

import "context"

// RaceResult is a single finisher's result as reported to external services.
type RaceResult struct {
	SessionID   string
	UserID      string
	DisplayName string
	Position    int
	TotalTime   float64 // seconds
	BestLapTime float64 // seconds
	Metadata    map[string]interface{}
}

// ResultsPort records finished race results (e.g. on a leaderboard).
type ResultsPort interface {
	// RecordResult stores one finisher's result.
	// Returns an error if the backing store rejects the write.
	RecordResult(ctx context.Context, result RaceResult) error
}
