package nakama

import (
	"kartrace/internal/domain"

	"github.com/heroiclabs/nakama-common/runtime"
)

// vehicleCommand is a pending OpVehicleControl message for one racer.
type vehicleCommand struct {
	ID           domain.CompetitorID
	Enabled      bool
	ZeroVelocity bool
}

// vehicleAdapter implements ports.VehiclePort for remote clients. Movement is
// simulated client side, so the adapter keeps the authoritative enabled flag
// and queues control messages until the end of the tick.
type vehicleAdapter struct {
	enabled map[domain.CompetitorID]bool
	pending []vehicleCommand
}

func newVehicleAdapter() *vehicleAdapter {
	return &vehicleAdapter{enabled: make(map[domain.CompetitorID]bool)}
}

func (v *vehicleAdapter) MovementEnabled(id domain.CompetitorID) bool {
	enabled, ok := v.enabled[id]
	return !ok || enabled
}

func (v *vehicleAdapter) Suspend(id domain.CompetitorID) {
	v.set(id, false, true)
}

func (v *vehicleAdapter) Resume(id domain.CompetitorID) {
	v.set(id, true, false)
}

func (v *vehicleAdapter) Halt(id domain.CompetitorID) {
	v.set(id, false, true)
}

func (v *vehicleAdapter) set(id domain.CompetitorID, enabled, zeroVelocity bool) {
	v.enabled[id] = enabled
	v.pending = append(v.pending, vehicleCommand{ID: id, Enabled: enabled, ZeroVelocity: zeroVelocity})
}

// drain returns and clears the queued commands.
func (v *vehicleAdapter) drain() []vehicleCommand {
	out := v.pending
	v.pending = nil
	return out
}

// flush sends every queued command to its racer. Commands for disconnected racers are dropped.
func (v *vehicleAdapter) flush(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	for _, cmd := range v.drain() {
		presence, ok := state.Presences[string(cmd.ID)]
		if !ok {
			continue
		}
		data, err := encodePayload(map[string]interface{}{
			"enabled":       cmd.Enabled,
			"zero_velocity": cmd.ZeroVelocity,
		})
		if err != nil {
			logger.Error("flush: Failed to encode vehicle command for %s: %v", cmd.ID, err)
			continue
		}
		if err := dispatcher.BroadcastMessage(OpVehicleControl, data, []runtime.Presence{presence}, nil, true); err != nil {
			logger.Warn("flush: Failed to send vehicle command to %s: %v", cmd.ID, err)
		}
	}
}
