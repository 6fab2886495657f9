package nakama

import (
	"context"
	"database/sql"

	"kartrace/internal/app"

	"github.com/heroiclabs/nakama-common/runtime"
)

// InitModule wires RPCs, the leaderboard, the race match handler and the auth hook for Nakama runtime.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	if secret := env[EnvResultsSecret]; secret != "" {
		resultsSigner = app.NewResultsSigner(secret, app.ResultsIssuer)
	} else {
		logger.Warn("InitModule: %s not set, results tokens are disabled.", EnvResultsSecret)
	}

	if err := ensureLeaderboard(ctx, nk); err != nil {
		logger.Error("InitModule: Failed to create leaderboard %s: %v", LeaderboardBestTime, err)
		return err
	}

	if err := RegisterRPCs(initializer); err != nil {
		return err
	}

	if err := initializer.RegisterMatch(MatchNameKartRace, NewMatch); err != nil {
		return err
	}

	if err := initializer.RegisterAfterAuthenticateDevice(AfterAuthenticateDevice); err != nil {
		return err
	}

	logger.Info("KartRace Go module loaded.")
	return nil
}
