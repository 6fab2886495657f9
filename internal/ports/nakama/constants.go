package nakama

const (
	// RpcQuickRace is the Nakama RPC id clients call to find or create a lobby-phase race.
	RpcQuickRace = "quick_race"

	// RpcVerifyRaceResult is the Nakama RPC id that validates a signed results token.
	RpcVerifyRaceResult = "verify_race_result"

	// MatchNameKartRace is the authoritative match handler name registered with Nakama.
	MatchNameKartRace = "kartrace_match"

	// LeaderboardBestTime ranks finishers by total race time in milliseconds, lowest first.
	LeaderboardBestTime = "kartrace_best_time"

	// GameName is advertised in the match label so matchmaking queries can filter on it.
	GameName = "kartrace"
)

// Env keys read from the Nakama runtime environment.
const (
	EnvTotalLaps     = "kartrace_total_laps"
	EnvCountdownSec  = "kartrace_countdown_sec"
	EnvResultsSecret = "kartrace_results_secret"

	EnvBotsEnabled     = "kartrace_bots_enabled"
	EnvBotFillDelaySec = "kartrace_bot_fill_delay_sec"
	EnvBotGridSize     = "kartrace_bot_grid_size"
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpStartRace         int64 = 1
	OpCheckpointCrossed int64 = 2
	OpPositionSample    int64 = 3
	OpUseFreeze         int64 = 4

	// Server -> Client events
	OpRoster             int64 = 101
	OpCountdown          int64 = 102
	OpRaceStarted        int64 = 103
	OpStandings          int64 = 104
	OpLapCompleted       int64 = 105
	OpCompetitorFinished int64 = 106
	OpVehicleControl     int64 = 107 // send privately
	OpRaceEnded          int64 = 108
	OpError              int64 = 109 // send privately
)

// Error codes carried by OpError.
const (
	errCodeBadRequest   = 400
	errCodeUnauthorized = 403
	errCodeConflict     = 409
)

// Match label keys.
const (
	labelKeyOpen   = "open"
	labelKeyGame   = "game"
	labelKeyPhase  = "phase"
	labelKeyRacers = "racers"
)
