package app

import (
	"testing"

	"kartrace/internal/domain"

	"github.com/heroiclabs/nakama-common/runtime"
)

// noopLogger implements runtime.Logger for tests that only need to satisfy the interface.
type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (noopLogger) WithField(string, interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) WithFields(map[string]interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) Fields() map[string]interface{} {
	return nil
}

// fakeVehicles records locomotion calls. Unknown competitors start with movement enabled.
type fakeVehicles struct {
	enabled  map[domain.CompetitorID]bool
	suspends map[domain.CompetitorID]int
	resumes  map[domain.CompetitorID]int
	halts    map[domain.CompetitorID]int
}

func newFakeVehicles() *fakeVehicles {
	return &fakeVehicles{
		enabled:  make(map[domain.CompetitorID]bool),
		suspends: make(map[domain.CompetitorID]int),
		resumes:  make(map[domain.CompetitorID]int),
		halts:    make(map[domain.CompetitorID]int),
	}
}

func (f *fakeVehicles) MovementEnabled(id domain.CompetitorID) bool {
	enabled, ok := f.enabled[id]
	return !ok || enabled
}

func (f *fakeVehicles) Suspend(id domain.CompetitorID) {
	f.enabled[id] = false
	f.suspends[id]++
}

func (f *fakeVehicles) Resume(id domain.CompetitorID) {
	f.enabled[id] = true
	f.resumes[id]++
}

func (f *fakeVehicles) Halt(id domain.CompetitorID) {
	f.enabled[id] = false
	f.halts[id]++
}

// lineTrack lays n checkpoints along the x axis, spacing units apart.
func lineTrack(n int, spacing float64) *domain.Track {
	markers := make([]domain.Marker, 0, n)
	for i := 0; i < n; i++ {
		markers = append(markers, domain.Marker{
			Position: domain.Vec3{X: float64(i) * spacing},
			Active:   true,
		})
	}
	return domain.NewTrack(markers)
}

func newTestEngine(t *testing.T, laps, checkpoints int) (*Engine, *fakeVehicles) {
	t.Helper()
	vehicles := newFakeVehicles()
	e := NewEngine(Settings{TotalLaps: laps, Track: lineTrack(checkpoints, 100)}, vehicles, noopLogger{})
	return e, vehicles
}

func cross(e *Engine, id domain.CompetitorID, indices ...int) []Event {
	var events []Event
	for _, idx := range indices {
		events = append(events, e.OnCheckpointCrossed(id, idx)...)
	}
	return events
}

// driveLaps crosses the start line and then completes the given number of laps.
func driveLaps(e *Engine, id domain.CompetitorID, laps int) []Event {
	total := e.Track().Len()
	events := cross(e, id, 0)
	for lap := 0; lap < laps; lap++ {
		for idx := 1; idx < total; idx++ {
			events = append(events, cross(e, id, idx)...)
		}
		events = append(events, cross(e, id, 0)...)
	}
	return events
}

func findEvent(events []Event, kind EventKind) (Event, bool) {
	for _, ev := range events {
		if ev.Kind == kind {
			return ev, true
		}
	}
	return Event{}, false
}

func mustState(t *testing.T, e *Engine, id domain.CompetitorID) domain.ProgressState {
	t.Helper()
	p, ok := e.CompetitorState(id)
	if !ok {
		t.Fatalf("competitor %s not registered", id)
	}
	return p
}
