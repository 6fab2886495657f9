package app

import (
	"kartrace/internal/domain"

	"github.com/segmentio/ksuid"
)

// NewCompetitorID returns a fresh identity for competitors that have no account,
// such as AI drivers in a local session.
func NewCompetitorID() domain.CompetitorID {
	return domain.CompetitorID(ksuid.New().String())
}

// NewSessionID returns a sortable unique race session id.
func NewSessionID() string {
	return ksuid.New().String()
}
