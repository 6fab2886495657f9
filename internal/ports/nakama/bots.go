package nakama

import (
	"fmt"
	"hash/fnv"
	"strconv"

	"kartrace/internal/app"
	"kartrace/internal/bot"
	"kartrace/internal/domain"

	"github.com/heroiclabs/nakama-common/runtime"
)

const (
	botIdentitiesPath = "data/bot_identities.json"

	defaultBotFillDelaySec = 5
	defaultBotGridSize     = 4
)

// configureBots reads the bot settings from the Nakama runtime env.
func configureBots(state *MatchState, env map[string]string, logger runtime.Logger) {
	state.BotFillDelay = defaultBotFillDelaySec
	state.BotGridSize = defaultBotGridSize

	if val, ok := env[EnvBotsEnabled]; ok {
		state.BotsEnabled = val == "true"
	}
	if val, ok := env[EnvBotFillDelaySec]; ok {
		if i, err := strconv.Atoi(val); err == nil && i >= 0 {
			state.BotFillDelay = i
		} else {
			logger.Warn("configureBots: Ignoring invalid %s=%q", EnvBotFillDelaySec, val)
		}
	}
	if val, ok := env[EnvBotGridSize]; ok {
		if i, err := strconv.Atoi(val); err == nil && i > 0 {
			state.BotGridSize = i
		} else {
			logger.Warn("configureBots: Ignoring invalid %s=%q", EnvBotGridSize, val)
		}
	}
	if state.Config.MaxRacers > 0 && state.BotGridSize > state.Config.MaxRacers {
		state.BotGridSize = state.Config.MaxRacers
	}
}

// humanRacers counts registered racers that are not server driven.
func (ms *MatchState) humanRacers() int {
	n := 0
	for _, userID := range ms.JoinOrder {
		if !bot.IsBot(userID) {
			n++
		}
	}
	return n
}

// processBots fills a single-player lobby with bots after a delay and drives
// the bots once per tick. It returns the events raised by bot checkpoint crossings.
func (mh *matchHandler) processBots(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) []app.Event {
	if state.Ended {
		return nil
	}

	// 1. Auto-fill the lobby when one human is waiting alone
	if state.Engine.Phase() == domain.PhaseLobby {
		if state.humanRacers() == 1 && state.Engine.TotalRacers() < state.BotGridSize {
			if state.LastSinglePlayerTick == 0 {
				state.LastSinglePlayerTick = state.Tick
				logger.Debug("processBots: Single player detected, starting auto-fill timer.")
			}
			if state.Tick-state.LastSinglePlayerTick >= int64(state.BotFillDelay*state.TickRate) {
				if mh.fillWithBots(state, logger) > 0 {
					mh.updateLabel(state, dispatcher, logger)
					mh.broadcastRoster(state, dispatcher, logger)
				}
				state.LastSinglePlayerTick = 0
			}
		} else {
			state.LastSinglePlayerTick = 0
		}
		return nil
	}

	// 2. Drive the bots; triggers still fire while a bot is held on the grid
	var events []app.Event
	track := state.Engine.Track()
	dt := 1 / float64(state.TickRate)
	for _, userID := range state.JoinOrder {
		driver, ok := state.Bots[userID]
		if !ok {
			continue
		}
		if idx, crossed := driver.Drive(track, dt, state.Vehicles.MovementEnabled(driver.ID)); crossed {
			events = append(events, state.Engine.OnCheckpointCrossed(driver.ID, idx)...)
		}
		state.Engine.ReportPosition(driver.ID, driver.Position)
	}
	return events
}

// fillWithBots registers bots until the grid is full and returns how many joined.
func (mh *matchHandler) fillWithBots(state *MatchState, logger runtime.Logger) int {
	track := state.Engine.Track()
	if track.Validate() != nil {
		logger.Warn("processBots: Track is not raceable, not adding bots.")
		return 0
	}
	start := track.Checkpoint(0).Position
	seed := sessionSeed(state.SessionID)

	added := 0
	for i := len(state.Bots); state.Engine.TotalRacers() < state.BotGridSize; i++ {
		identity := bot.GetBotIdentity(i)
		botID := identity.UserID
		if _, taken := state.Bots[botID]; taken {
			botID = fmt.Sprintf("%s-%d", identity.UserID, i)
		}
		identity.UserID = botID

		driver, err := bot.NewDriverFromIdentity(identity, start, seed+int64(i))
		if err != nil {
			logger.Error("processBots: Failed to create bot driver for %s: %v", botID, err)
			return added
		}
		state.Bots[botID] = driver
		mh.registerRacer(state, logger, botID, identity.DisplayName)
		logger.Info("processBots: Added bot %s (%s, %s)", identity.DisplayName, botID, driver.Level)
		added++
	}
	return added
}

func sessionSeed(sessionID string) int64 {
	h := fnv.New64a()
	h.Write([]byte(sessionID))
	return int64(h.Sum64() >> 1)
}
