package ports

import "kartrace/internal/domain"

// VehiclePort is the locomotion collaborator of the race engine.
// Implementations drive player controllers and AI agents; the engine never simulates motion itself.
type VehiclePort interface {
	// MovementEnabled reports whether the competitor can currently move.
	MovementEnabled(id domain.CompetitorID) bool

	// Suspend stops the competitor, zeroes its velocity and disables control.
	// It must be reversible by Resume.
	Suspend(id domain.CompetitorID)

	// Resume re-enables movement for a competitor previously suspended.
	Resume(id domain.CompetitorID)

	// Halt permanently stops a competitor that crossed the finish line.
	Halt(id domain.CompetitorID)
}
