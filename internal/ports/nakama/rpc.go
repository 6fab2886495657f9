package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"kartrace/internal/app"

	"github.com/heroiclabs/nakama-common/runtime"
)

// resultsSigner signs final standings. It is nil when no secret is configured.
var resultsSigner *app.ResultsSigner

// QuickRaceResponse is the payload returned to clients when requesting a lobby-phase race.
type QuickRaceResponse struct {
	MatchID string `json:"match_id"`
	IsNew   bool   `json:"is_new"`
}

// VerifyRaceResultRequest is the payload of the verify_race_result RPC.
type VerifyRaceResultRequest struct {
	Token string `json:"token"`
}

// RegisterRPCs registers Nakama RPC endpoints.
func RegisterRPCs(initializer runtime.Initializer) error {
	if err := initializer.RegisterRpc(RpcQuickRace, rpcQuickRace); err != nil {
		return err
	}
	return initializer.RegisterRpc(RpcVerifyRaceResult, rpcVerifyRaceResult)
}

// rpcQuickRace finds an open race in its lobby or creates a new one.
func rpcQuickRace(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)

	query := fmt.Sprintf("+label.%s:T +label.%s:%s +label.%s:%s", labelKeyOpen, labelKeyGame, GameName, labelKeyPhase, "lobby")
	limit := 10
	authoritative := true
	minSize := 1
	maxSize := 64

	matches, err := nk.MatchList(ctx, limit, authoritative, "", &minSize, &maxSize, query)
	if err != nil {
		logger.Error("rpcQuickRace [User:%s]: MatchList error: %v", userID, err)
		return "", err
	}

	if len(matches) > 0 {
		logger.Info("rpcQuickRace [User:%s]: Found existing race %s", userID, matches[0].MatchId)
		return marshalResponse(QuickRaceResponse{MatchID: matches[0].MatchId, IsNew: false})
	}

	// Racer registration and ownership happen in MatchJoin (server-authoritative).
	matchID, err := nk.MatchCreate(ctx, MatchNameKartRace, map[string]interface{}{})
	if err != nil {
		logger.Error("rpcQuickRace [User:%s]: MatchCreate error: %v", userID, err)
		return "", err
	}

	logger.Info("rpcQuickRace [User:%s]: Created new race %s", userID, matchID)
	return marshalResponse(QuickRaceResponse{MatchID: matchID, IsNew: true})
}

// rpcVerifyRaceResult validates a results token issued at the end of a race and returns its claims.
// Payload: {"token": "..."}
func rpcVerifyRaceResult(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req VerifyRaceResultRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", runtime.NewError("Invalid payload", 3) // INVALID_ARGUMENT
	}
	if req.Token == "" {
		return "", runtime.NewError("Token required", 3)
	}

	claims, err := resultsSigner.Verify(req.Token)
	if errors.Is(err, app.ErrSignerNotConfigured) {
		logger.Error("rpcVerifyRaceResult: %v", err)
		return "", runtime.NewError("Results verification unavailable", 12) // UNIMPLEMENTED
	}
	if err != nil {
		logger.Debug("rpcVerifyRaceResult: Rejected token: %v", err)
		return "", runtime.NewError("Invalid results token", 16) // UNAUTHENTICATED
	}

	return marshalResponse(claims)
}

func marshalResponse(v interface{}) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", runtime.NewError("Internal error", 13) // INTERNAL
	}
	return string(b), nil
}
