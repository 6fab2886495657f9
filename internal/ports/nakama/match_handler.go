package nakama

import (
	"context"
	"database/sql"
	"strconv"

	"kartrace/internal/app"
	"kartrace/internal/bot"
	"kartrace/internal/config"
	"kartrace/internal/domain"
	"kartrace/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

const (
	raceConfigPath = "data/race_config.json"

	// raceEndLingerSeconds keeps a finished match alive so clients can read the results.
	raceEndLingerSeconds = 30
)

// MatchState holds the authoritative runtime state for the Nakama match handler.
type MatchState struct {
	SessionID    string                      `json:"session_id"`
	Tick         int64                       `json:"tick"`
	TickRate     int                         `json:"tick_rate"`
	OwnerUserID  string                      `json:"owner_user_id"` // Racer allowed to start the countdown
	JoinOrder    []string                    `json:"join_order"`    // User IDs in registration order
	Presences    map[string]runtime.Presence `json:"-"`             // Map UserId -> Presence for targeted messaging
	Engine       *app.Engine                 `json:"-"`             // Race engine owned by this match
	Vehicles     *vehicleAdapter             `json:"-"`             // Pending vehicle control commands
	Results      ports.ResultsPort           `json:"-"`             // Leaderboard writer
	Signer       *app.ResultsSigner          `json:"-"`             // nil when no results secret is configured
	Config       config.RaceConfig           `json:"-"`
	ResultsToken string                      `json:"results_token"`
	Ended        bool                        `json:"ended"`
	EndedAtTick  int64                       `json:"ended_at_tick"`

	BotsEnabled          bool                   `json:"bots_enabled"`            // Whether AI racers may fill the lobby
	BotFillDelay         int                    `json:"bot_fill_delay"`          // Seconds a lone racer waits before bots join
	BotGridSize          int                    `json:"bot_grid_size"`           // Racer count the lobby is filled up to
	LastSinglePlayerTick int64                  `json:"last_single_player_tick"` // Tick the auto-fill timer started
	Bots                 map[string]*bot.Driver `json:"-"`                       // Active bot drivers

	lastLabel string
}

// inboundMessage is a client message detached from runtime.MatchData.
type inboundMessage struct {
	UserID string
	OpCode int64
	Data   []byte
}

func newMatchState(cfg config.RaceConfig, results ports.ResultsPort, signer *app.ResultsSigner, logger runtime.Logger) *MatchState {
	sessionID := app.NewSessionID()
	vehicles := newVehicleAdapter()
	engine := app.NewEngine(app.Settings{
		TotalLaps: cfg.TotalLaps,
		Track:     domain.NewTrack(cfg.Markers()),
	}, vehicles, logger.WithField("session_id", sessionID))

	return &MatchState{
		SessionID: sessionID,
		TickRate:  cfg.TickRate,
		Presences: make(map[string]runtime.Presence),
		Bots:      make(map[string]*bot.Driver),
		Engine:    engine,
		Vehicles:  vehicles,
		Results:   results,
		Signer:    signer,
		Config:    cfg,
	}
}

// sessionTime converts a match tick into session clock seconds.
func (ms *MatchState) sessionTime(tick int64) float64 {
	return float64(tick) / float64(ms.TickRate)
}

func (ms *MatchState) isOpen() bool {
	if ms.Ended || ms.Engine.Phase() != domain.PhaseLobby {
		return false
	}
	return ms.Config.MaxRacers <= 0 || ms.Engine.TotalRacers() < ms.Config.MaxRacers
}

func (ms *MatchState) label() (string, error) {
	phase := ms.Engine.Phase()
	if ms.Ended {
		phase = domain.PhaseFinished
	}
	return marshalLabel(ms.isOpen(), phase, ms.Engine.TotalRacers())
}

// nextOwner returns the earliest registered racer that is still connected.
func (ms *MatchState) nextOwner() string {
	for _, userID := range ms.JoinOrder {
		if _, ok := ms.Presences[userID]; ok {
			return userID
		}
	}
	return ""
}

// applyEnvOverrides applies Nakama runtime env settings on top of the file config.
func applyEnvOverrides(cfg *config.RaceConfig, env map[string]string, logger runtime.Logger) {
	if val, ok := env[EnvTotalLaps]; ok {
		if i, err := strconv.Atoi(val); err == nil && i > 0 {
			cfg.TotalLaps = i
		} else {
			logger.Warn("applyEnvOverrides: Ignoring invalid %s=%q", EnvTotalLaps, val)
		}
	}
	if val, ok := env[EnvCountdownSec]; ok {
		if i, err := strconv.Atoi(val); err == nil && i >= 0 {
			cfg.CountdownSeconds = i
		} else {
			logger.Warn("applyEnvOverrides: Ignoring invalid %s=%q", EnvCountdownSec, val)
		}
	}
}

// NewMatch is the factory function registered with Nakama.
func NewMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule) (runtime.Match, error) {
	return &matchHandler{}, nil
}

type matchHandler struct{}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	logger.Debug("MatchInit: Initializing race match.")

	if err := config.LoadRaceConfig(raceConfigPath); err != nil {
		logger.Warn("MatchInit: Could not load race config, using defaults: %v", err)
	}
	cfg := config.GetRaceConfig()

	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	applyEnvOverrides(cfg, env, logger)

	if err := bot.LoadIdentities(botIdentitiesPath); err != nil {
		logger.Warn("MatchInit: Could not load bot identities: %v", err)
	}

	if resultsSigner == nil {
		logger.Warn("MatchInit: %s not set, race results will not be signed.", EnvResultsSecret)
	}

	var results ports.ResultsPort
	if nk != nil {
		results = NewNakamaResultsAdapter(nk)
	}

	state := newMatchState(*cfg, results, resultsSigner, logger)
	configureBots(state, env, logger)

	label, err := state.label()
	if err != nil {
		logger.Error("MatchInit: Failed to marshal label: %v", err)
		return nil, 0, ""
	}
	state.lastLabel = label

	logger.Info("MatchInit: Race %s ready (%d laps, %d checkpoints, %d ticks/s).", state.SessionID, cfg.TotalLaps, state.Engine.Track().Len(), cfg.TickRate)
	return state, cfg.TickRate, label
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	accepted, reason := mh.canJoin(matchState, presence.GetUserId())
	return matchState, accepted, reason
}

// canJoin admits registered racers at any time and newcomers only while the lobby is open.
func (mh *matchHandler) canJoin(state *MatchState, userID string) (bool, string) {
	if _, ok := state.Engine.CompetitorState(domain.CompetitorID(userID)); ok {
		return true, ""
	}
	if state.Ended || state.Engine.Phase() != domain.PhaseLobby {
		return false, "Race already started"
	}
	if !state.isOpen() {
		return false, "Match full"
	}
	return true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		matchState.Presences[p.GetUserId()] = p
		mh.registerRacer(matchState, logger, p.GetUserId(), p.GetUsername())
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastRoster(matchState, dispatcher, logger)
	matchState.Vehicles.flush(matchState, dispatcher, logger)

	return matchState
}

func (mh *matchHandler) registerRacer(state *MatchState, logger runtime.Logger, userID, username string) {
	if state.Engine.RegisterCompetitor(domain.CompetitorID(userID), username) {
		state.JoinOrder = append(state.JoinOrder, userID)
	}
	if state.OwnerUserID == "" {
		state.OwnerUserID = userID
		logger.Debug("MatchJoin: Owner set to %s.", userID)
	}
}

// MatchLeave is called when one or more players leave the match.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		delete(matchState.Presences, p.GetUserId())
		logger.Debug("MatchLeave: User %s left.", p.GetUserId())
	}

	if len(matchState.Presences) == 0 {
		logger.Info("MatchLeave: Terminating race with no connected racers.")
		return nil
	}

	if _, ok := matchState.Presences[matchState.OwnerUserID]; !ok {
		matchState.OwnerUserID = matchState.nextOwner()
		logger.Debug("MatchLeave: Owner set to %s.", matchState.OwnerUserID)
	}

	mh.settleAbandoned(ctx, matchState, dispatcher, logger)
	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastRoster(matchState, dispatcher, logger)

	return matchState
}

// settleAbandoned ends the race once every connected racer and every bot has
// finished, so a disconnected racer cannot hold the results back forever.
func (mh *matchHandler) settleAbandoned(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if state.Ended || state.Engine.Phase() != domain.PhaseRacing {
		return
	}
	abandoned := 0
	for _, userID := range state.JoinOrder {
		p, ok := state.Engine.CompetitorState(domain.CompetitorID(userID))
		if !ok || p.Finished {
			continue
		}
		if _, connected := state.Presences[userID]; connected || bot.IsBot(userID) {
			return
		}
		abandoned++
	}
	if abandoned == 0 {
		return
	}

	standings, err := state.Engine.FinalStandings()
	if err != nil {
		return
	}
	logger.Info("settleAbandoned: All connected racers finished, closing race %s without %d disconnected racers.", state.SessionID, abandoned)
	mh.endRace(ctx, state, dispatcher, logger, standings)
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}

	inbound := make([]inboundMessage, 0, len(messages))
	for _, msg := range messages {
		inbound = append(inbound, inboundMessage{UserID: msg.GetUserId(), OpCode: msg.GetOpCode(), Data: msg.GetData()})
	}

	if !mh.loop(ctx, matchState, dispatcher, logger, tick, inbound) {
		return nil
	}
	return matchState
}

// loop runs one tick: due deferred actions, then client messages in arrival
// order, then bots, then the ranking pass and the abandoned-race check. Returns false when the match should terminate.
func (mh *matchHandler) loop(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, tick int64, messages []inboundMessage) bool {
	state.Tick = tick
	events := state.Engine.Advance(state.sessionTime(tick))

	for _, msg := range messages {
		switch msg.OpCode {
		case OpStartRace:
			events = append(events, mh.handleStartRace(state, dispatcher, logger, msg)...)
		case OpCheckpointCrossed:
			events = append(events, mh.handleCheckpointCrossed(state, dispatcher, logger, msg)...)
		case OpPositionSample:
			mh.handlePositionSample(state, dispatcher, logger, msg)
		case OpUseFreeze:
			mh.handleUseFreeze(state, dispatcher, logger, msg)
		default:
			logger.Warn("MatchLoop: Unknown opcode received: %d", msg.OpCode)
		}
	}

	if state.BotsEnabled {
		events = append(events, mh.processBots(state, dispatcher, logger)...)
	}

	changed := state.Engine.UpdateRankings()

	for _, ev := range events {
		mh.broadcastEvent(ctx, state, dispatcher, logger, ev)
	}
	mh.settleAbandoned(ctx, state, dispatcher, logger)

	if !state.Ended && state.Engine.Phase() == domain.PhaseRacing {
		if changed || tick%int64(state.Config.StandingsEveryTicks) == 0 {
			mh.broadcastStandings(state, dispatcher, logger)
		}
	}

	state.Vehicles.flush(state, dispatcher, logger)

	if state.Ended && tick-state.EndedAtTick >= int64(raceEndLingerSeconds*state.TickRate) {
		logger.Info("MatchLoop: Closing finished race %s.", state.SessionID)
		return false
	}
	return true
}

func (mh *matchHandler) handleStartRace(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg inboundMessage) []app.Event {
	logger.Info("StartRace: Request received from %s (owner=%s, racers=%d)", msg.UserID, state.OwnerUserID, state.Engine.TotalRacers())

	if _, err := decodePayload(msg.Data); err != nil {
		logger.Warn("StartRace: Invalid payload from %s: %v", msg.UserID, err)
		mh.sendError(state, dispatcher, logger, msg.UserID, errCodeBadRequest, "invalid payload")
		return nil
	}

	if msg.UserID != state.OwnerUserID {
		logger.Warn("StartRace: User %s tried to start the race but is not owner (owner=%s)", msg.UserID, state.OwnerUserID)
		mh.sendError(state, dispatcher, logger, msg.UserID, errCodeUnauthorized, "only the owner can start the race")
		return nil
	}

	if state.Engine.Phase() != domain.PhaseLobby {
		mh.sendError(state, dispatcher, logger, msg.UserID, errCodeConflict, "race already started")
		return nil
	}

	if racers := state.Engine.TotalRacers(); racers < app.MinRacersToStart {
		logger.Warn("StartRace: Cannot start with %d racers. Need at least %d.", racers, app.MinRacersToStart)
		mh.sendError(state, dispatcher, logger, msg.UserID, errCodeConflict, "not enough racers")
		return nil
	}

	events := state.Engine.StartCountdown(state.Config.CountdownSeconds)
	mh.updateLabel(state, dispatcher, logger)
	return events
}

func (mh *matchHandler) handleCheckpointCrossed(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg inboundMessage) []app.Event {
	payload, err := decodePayload(msg.Data)
	if err != nil {
		logger.Warn("handleCheckpointCrossed: Invalid payload from %s: %v", msg.UserID, err)
		mh.sendError(state, dispatcher, logger, msg.UserID, errCodeBadRequest, "invalid payload")
		return nil
	}
	idx, ok := indexField(payload, "checkpoint", state.Engine.Track().Len())
	if !ok {
		mh.sendError(state, dispatcher, logger, msg.UserID, errCodeBadRequest, "checkpoint must be a valid checkpoint index")
		return nil
	}
	return state.Engine.OnCheckpointCrossed(domain.CompetitorID(msg.UserID), idx)
}

func (mh *matchHandler) handlePositionSample(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg inboundMessage) {
	payload, err := decodePayload(msg.Data)
	if err != nil {
		logger.Warn("handlePositionSample: Invalid payload from %s: %v", msg.UserID, err)
		mh.sendError(state, dispatcher, logger, msg.UserID, errCodeBadRequest, "invalid payload")
		return
	}
	x, okX := numberField(payload, "x")
	y, okY := numberField(payload, "y")
	z, okZ := numberField(payload, "z")
	if !okX || !okY || !okZ {
		mh.sendError(state, dispatcher, logger, msg.UserID, errCodeBadRequest, "x, y and z are required")
		return
	}
	state.Engine.ReportPosition(domain.CompetitorID(msg.UserID), domain.Vec3{X: x, Y: y, Z: z})
}

func (mh *matchHandler) handleUseFreeze(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg inboundMessage) {
	payload, err := decodePayload(msg.Data)
	if err != nil {
		logger.Warn("handleUseFreeze: Invalid payload from %s: %v", msg.UserID, err)
		mh.sendError(state, dispatcher, logger, msg.UserID, errCodeBadRequest, "invalid payload")
		return
	}
	if state.Engine.Phase() != domain.PhaseRacing {
		mh.sendError(state, dispatcher, logger, msg.UserID, errCodeConflict, "race is not running")
		return
	}
	requester, ok := state.Engine.CompetitorState(domain.CompetitorID(msg.UserID))
	if !ok || requester.Finished {
		return
	}

	requested, _ := numberField(payload, "duration")
	duration := state.Config.ClampFreeze(requested)
	frozen := state.Engine.FreezeOpponents(requester.ID, duration)
	logger.Info("UseFreeze: %s froze %d opponents for %.1fs", msg.UserID, len(frozen), duration)
}

// broadcastEvent handles the conversion and dispatching of app events to Nakama.
func (mh *matchHandler) broadcastEvent(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, ev app.Event) {
	var opCode int64
	var fields map[string]interface{}

	switch ev.Kind {
	case app.EventCountdown:
		opCode = OpCountdown
		p := ev.Payload.(app.CountdownPayload)
		fields = map[string]interface{}{"remaining": p.Remaining}
	case app.EventRaceStarted:
		opCode = OpRaceStarted
		p := ev.Payload.(app.RaceStartedPayload)
		fields = map[string]interface{}{"start_time": p.StartTime}
		mh.updateLabel(state, dispatcher, logger)
	case app.EventLapCompleted:
		opCode = OpLapCompleted
		p := ev.Payload.(app.LapCompletedPayload)
		fields = map[string]interface{}{
			"user_id":  string(p.ID),
			"lap":      p.Lap,
			"lap_time": p.LapTime,
		}
	case app.EventCompetitorFinished:
		opCode = OpCompetitorFinished
		p := ev.Payload.(app.CompetitorFinishedPayload)
		fields = map[string]interface{}{
			"user_id":    string(p.ID),
			"position":   p.FinishOrder,
			"total_time": p.TotalTime,
		}
		mh.recordResult(ctx, state, logger, p)
	case app.EventRaceEnded:
		p := ev.Payload.(app.RaceEndedPayload)
		mh.endRace(ctx, state, dispatcher, logger, p.Standings)
		return
	default:
		logger.Warn("Unknown event kind: %v", ev.Kind)
		return
	}

	mh.send(state, dispatcher, logger, opCode, fields, ev.Recipients)
}

func (mh *matchHandler) recordResult(ctx context.Context, state *MatchState, logger runtime.Logger, p app.CompetitorFinishedPayload) {
	if state.Results == nil || bot.IsBot(string(p.ID)) {
		return
	}
	racer, ok := state.Engine.CompetitorState(p.ID)
	if !ok {
		return
	}
	err := state.Results.RecordResult(ctx, ports.RaceResult{
		SessionID:   state.SessionID,
		UserID:      string(p.ID),
		DisplayName: racer.DisplayName,
		Position:    p.FinishOrder,
		TotalTime:   p.TotalTime,
		BestLapTime: racer.BestLapTime,
		Metadata: map[string]interface{}{
			"match_id": ctx.Value(runtime.RUNTIME_CTX_MATCH_ID),
			"laps":     state.Engine.TotalLaps(),
		},
	})
	if err != nil {
		logger.Error("Failed to record result for %s: %v", p.ID, err)
	}
}

// endRace publishes the final standings once, with a signed results token when a signer is configured.
func (mh *matchHandler) endRace(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, standings []domain.ProgressState) {
	if state.Ended {
		return
	}
	state.Ended = true
	state.EndedAtTick = state.Tick

	if state.Signer != nil {
		token, err := state.Signer.Sign(state.SessionID, state.Engine.TotalLaps(), standings)
		if err != nil {
			logger.Error("endRace: Failed to sign results: %v", err)
		} else {
			state.ResultsToken = token
		}
	}

	fields := map[string]interface{}{
		"session_id":    state.SessionID,
		"total_laps":    state.Engine.TotalLaps(),
		"standings":     standingsToList(standings, state.Engine.TotalLaps()),
		"results_token": state.ResultsToken,
	}
	mh.send(state, dispatcher, logger, OpRaceEnded, fields, nil)
	mh.updateLabel(state, dispatcher, logger)

	logger.Info("endRace: Race %s ended with %d racers.", state.SessionID, len(standings))
}

func (mh *matchHandler) broadcastStandings(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	fields := map[string]interface{}{
		"tick":      state.Tick,
		"elapsed":   state.Engine.ElapsedRaceTime(),
		"standings": standingsToList(state.Engine.Standings(), state.Engine.TotalLaps()),
	}
	mh.send(state, dispatcher, logger, OpStandings, fields, nil)
}

func (mh *matchHandler) broadcastRoster(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	racers := make([]interface{}, 0, len(state.JoinOrder))
	for _, userID := range state.JoinOrder {
		racer, ok := state.Engine.CompetitorState(domain.CompetitorID(userID))
		if !ok {
			continue
		}
		_, connected := state.Presences[userID]
		entry := map[string]interface{}{
			"user_id":      userID,
			"display_name": racer.DisplayName,
			"is_owner":     userID == state.OwnerUserID,
			"connected":    connected,
			"is_bot":       bot.IsBot(userID),
		}
		if driver, ok := state.Bots[userID]; ok {
			entry["difficulty"] = driver.Level.String()
		}
		racers = append(racers, entry)
	}

	fields := map[string]interface{}{
		"session_id":  state.SessionID,
		"tick":        state.Tick,
		"phase":       string(state.Engine.Phase()),
		"total_laps":  state.Engine.TotalLaps(),
		"checkpoints": state.Engine.Track().Len(),
		"racers":      racers,
	}
	mh.send(state, dispatcher, logger, OpRoster, fields, nil)
}

// send encodes fields and delivers them to recipients, or to everyone when recipients is empty.
func (mh *matchHandler) send(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, opCode int64, fields map[string]interface{}, recipients []domain.CompetitorID) {
	data, err := encodePayload(fields)
	if err != nil {
		logger.Error("Failed to marshal message %d: %v", opCode, err)
		return
	}

	var presences []runtime.Presence
	if len(recipients) > 0 {
		for _, id := range recipients {
			if p, ok := state.Presences[string(id)]; ok {
				presences = append(presences, p)
			}
		}

		// Intended recipients that are not connected must not turn into a broadcast.
		if len(presences) == 0 {
			return
		}
	}

	if err := dispatcher.BroadcastMessage(opCode, data, presences, nil, true); err != nil {
		logger.Warn("Failed to broadcast message %d: %v", opCode, err)
	}
}

// sendError sends an error event to a specific user.
func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, code int, message string) {
	presence, ok := state.Presences[userID]
	if !ok {
		logger.Warn("Cannot send error to %s: Presence not found", userID)
		return
	}

	data, err := encodePayload(map[string]interface{}{
		"code":    code,
		"message": message,
	})
	if err != nil {
		logger.Error("Failed to marshal error event: %v", err)
		return
	}

	dispatcher.BroadcastMessage(OpError, data, []runtime.Presence{presence}, nil, true)
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	label, err := state.label()
	if err != nil {
		logger.Error("UpdateLabel: Failed to marshal: %v", err)
		return
	}
	if label == state.lastLabel {
		return
	}
	if err := dispatcher.MatchLabelUpdate(label); err != nil {
		logger.Error("UpdateLabel: Failed to update: %v", err)
		return
	}
	state.lastLabel = label
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, graceSeconds int) interface{} {
	logger.Debug("MatchTerminate: Match terminated with %d grace seconds", graceSeconds)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}
