package nakama

import (
	"context"
	"fmt"

	"kartrace/internal/ports"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
)

// LeaderboardWriter is the subset of runtime.NakamaModule used to record results.
type LeaderboardWriter interface {
	LeaderboardRecordWrite(ctx context.Context, id, ownerID, username string, score, subscore int64, metadata map[string]interface{}, overrideOperator *int) (*api.LeaderboardRecord, error)
}

// NakamaResultsAdapter implements ports.ResultsPort on the best-time leaderboard.
type NakamaResultsAdapter struct {
	lb LeaderboardWriter
}

// NewNakamaResultsAdapter creates a new results adapter.
func NewNakamaResultsAdapter(lb LeaderboardWriter) *NakamaResultsAdapter {
	return &NakamaResultsAdapter{lb: lb}
}

// RecordResult writes the finisher's total time in milliseconds, with the best lap as subscore.
func (a *NakamaResultsAdapter) RecordResult(ctx context.Context, result ports.RaceResult) error {
	if result.TotalTime <= 0 {
		return fmt.Errorf("result for %s has no finish time", result.UserID)
	}

	metadata := map[string]interface{}{
		"session_id": result.SessionID,
		"position":   result.Position,
	}
	for k, v := range result.Metadata {
		metadata[k] = v
	}

	score := int64(result.TotalTime * 1000)
	subscore := int64(result.BestLapTime * 1000)
	if _, err := a.lb.LeaderboardRecordWrite(ctx, LeaderboardBestTime, result.UserID, result.DisplayName, score, subscore, metadata, nil); err != nil {
		return fmt.Errorf("failed to write leaderboard record for user %s: %w", result.UserID, err)
	}
	return nil
}

// ensureLeaderboard creates the best-time leaderboard. Creating an existing leaderboard is a no-op in Nakama.
func ensureLeaderboard(ctx context.Context, nk runtime.NakamaModule) error {
	const (
		authoritative = true
		sortOrder     = "asc"
		operator      = "best"
		resetSchedule = ""
		enableRanks   = true
	)
	return nk.LeaderboardCreate(ctx, LeaderboardBestTime, authoritative, sortOrder, operator, resetSchedule, map[string]interface{}{"game": GameName}, enableRanks)
}
