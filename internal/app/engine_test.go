package app

import (
	"math"
	"testing"

	"kartrace/internal/domain"
)

func TestRegisterCompetitorIsIdempotent(t *testing.T) {
	e, _ := newTestEngine(t, 3, 3)

	if !e.RegisterCompetitor("c1", "Bolt") {
		t.Fatalf("first registration should add the competitor")
	}
	if e.RegisterCompetitor("c1", "Bolt again") {
		t.Fatalf("second registration should be a no-op")
	}
	if e.TotalRacers() != 1 {
		t.Fatalf("TotalRacers() = %d, want 1", e.TotalRacers())
	}
	if got := len(e.Standings()); got != 1 {
		t.Fatalf("standings length = %d, want 1", got)
	}
	if name := mustState(t, e, "c1").DisplayName; name != "Bolt" {
		t.Fatalf("display name = %s, want Bolt", name)
	}
}

func TestNewProgressStateDefaults(t *testing.T) {
	e, _ := newTestEngine(t, 3, 3)
	e.RegisterCompetitor("c1", "Bolt")

	p := mustState(t, e, "c1")
	if p.CurrentLap != 1 || p.LastCheckpointHit != -1 || p.Finished {
		t.Fatalf("unexpected initial state: %+v", p)
	}
	if _, ok := e.CompetitorState("missing"); ok {
		t.Fatalf("unknown competitor should be absent")
	}
}

func TestCheckpointsMustBeHitInOrder(t *testing.T) {
	e, _ := newTestEngine(t, 3, 3)
	e.RegisterCompetitor("c1", "Bolt")

	cross(e, "c1", 2)
	if got := mustState(t, e, "c1").LastCheckpointHit; got != -1 {
		t.Fatalf("skipping ahead changed state: last = %d, want -1", got)
	}

	cross(e, "c1", 0)
	if got := mustState(t, e, "c1").LastCheckpointHit; got != 0 {
		t.Fatalf("last = %d, want 0", got)
	}

	// Reversing and repeating are both ignored.
	cross(e, "c1", 0, 2)
	if got := mustState(t, e, "c1").LastCheckpointHit; got != 0 {
		t.Fatalf("out of order crossing changed state: last = %d, want 0", got)
	}

	cross(e, "c1", 1, 2)
	if got := mustState(t, e, "c1").LastCheckpointHit; got != 2 {
		t.Fatalf("last = %d, want 2", got)
	}
}

func TestCheckpointTransitionsOnlyAdvanceByOne(t *testing.T) {
	e, _ := newTestEngine(t, 50, 4)
	e.RegisterCompetitor("c1", "Bolt")

	sequence := []int{3, 0, 0, 2, 1, 1, 3, 2, 3, 0, 1, 2, 2, 3, 1, 0}
	last := -1
	for _, idx := range sequence {
		cross(e, "c1", idx)
		got := mustState(t, e, "c1").LastCheckpointHit
		if got != last && got != (last+1)%4 {
			t.Fatalf("after crossing %d: last jumped %d -> %d", idx, last, got)
		}
		last = got
	}
}

func TestLapCompletion(t *testing.T) {
	e, _ := newTestEngine(t, 3, 2)
	e.RegisterCompetitor("c1", "Bolt")
	e.StartRaceTimer()

	e.Advance(12.5)
	events := cross(e, "c1", 0, 1, 0)

	p := mustState(t, e, "c1")
	if p.CurrentLap != 2 {
		t.Fatalf("CurrentLap = %d, want 2", p.CurrentLap)
	}
	if p.LastCheckpointHit != 0 {
		t.Fatalf("LastCheckpointHit = %d, want 0", p.LastCheckpointHit)
	}
	if p.CurrentLapStartTime != 12.5 {
		t.Fatalf("CurrentLapStartTime = %v, want 12.5", p.CurrentLapStartTime)
	}

	ev, ok := findEvent(events, EventLapCompleted)
	if !ok {
		t.Fatalf("expected lap completed event")
	}
	payload := ev.Payload.(LapCompletedPayload)
	if payload.Lap != 1 || payload.ID != "c1" {
		t.Fatalf("unexpected lap payload: %+v", payload)
	}
}

func TestFirstCrossingOfStartLineIsNotALap(t *testing.T) {
	e, _ := newTestEngine(t, 3, 2)
	e.RegisterCompetitor("c1", "Bolt")

	if events := cross(e, "c1", 0); len(events) != 0 {
		t.Fatalf("expected no events for the first crossing, got %d", len(events))
	}
	if lap := mustState(t, e, "c1").CurrentLap; lap != 1 {
		t.Fatalf("CurrentLap = %d, want 1", lap)
	}
}

func TestLapTimesRecordBest(t *testing.T) {
	e, _ := newTestEngine(t, 5, 2)
	e.RegisterCompetitor("c1", "Bolt")
	e.StartRaceTimer()

	cross(e, "c1", 0, 1)
	e.Advance(40)
	cross(e, "c1", 0, 1)
	e.Advance(70)
	cross(e, "c1", 0)

	p := mustState(t, e, "c1")
	if len(p.LapTimes) != 2 {
		t.Fatalf("lap times = %v, want 2 entries", p.LapTimes)
	}
	if math.Abs(p.LapTimes[0]-40) > 1e-3 || math.Abs(p.LapTimes[1]-30) > 1e-9 {
		t.Fatalf("lap times = %v, want [40 30]", p.LapTimes)
	}
	if p.BestLapTime != 30 {
		t.Fatalf("BestLapTime = %v, want 30", p.BestLapTime)
	}
}

func TestFinishDominance(t *testing.T) {
	e, vehicles := newTestEngine(t, 3, 2)
	e.RegisterCompetitor("winner", "Bolt")
	e.RegisterCompetitor("chaser", "Dash")
	e.StartRaceTimer()

	// The chaser is one checkpoint from the line on the final lap.
	driveLaps(e, "chaser", 2)
	cross(e, "chaser", 1)
	e.ReportPosition("chaser", domain.Vec3{X: 0})

	e.Advance(95)
	events := driveLaps(e, "winner", 3)

	p := mustState(t, e, "winner")
	if !p.Finished {
		t.Fatalf("winner should be finished")
	}
	if p.CurrentLap != 4 {
		t.Fatalf("CurrentLap = %d, want 4", p.CurrentLap)
	}
	if math.Abs(p.TotalRaceTime-95) > 1e-3 {
		t.Fatalf("TotalRaceTime = %v, want 95", p.TotalRaceTime)
	}
	if want := 4_000_000 - p.TotalRaceTime; p.RaceScore != want {
		t.Fatalf("RaceScore = %v, want %v", p.RaceScore, want)
	}
	if vehicles.halts["winner"] != 1 {
		t.Fatalf("expected winner vehicle to be halted once, got %d", vehicles.halts["winner"])
	}

	ev, ok := findEvent(events, EventCompetitorFinished)
	if !ok {
		t.Fatalf("expected finished event")
	}
	if order := ev.Payload.(CompetitorFinishedPayload).FinishOrder; order != 1 {
		t.Fatalf("FinishOrder = %d, want 1", order)
	}

	e.UpdateRankings()
	chaser := mustState(t, e, "chaser")
	if chaser.RaceScore >= p.RaceScore {
		t.Fatalf("unfinished score %v must be below finished score %v", chaser.RaceScore, p.RaceScore)
	}
	if mustState(t, e, "winner").CurrentPosition != 1 {
		t.Fatalf("finisher should rank first")
	}
}

func TestFinishedCompetitorIsFrozenInPlace(t *testing.T) {
	e, _ := newTestEngine(t, 1, 2)
	e.RegisterCompetitor("c1", "Bolt")
	e.StartRaceTimer()
	e.Advance(10)
	driveLaps(e, "c1", 1)

	before := mustState(t, e, "c1")
	e.Advance(20)
	e.ReportPosition("c1", domain.Vec3{X: 500})
	if events := cross(e, "c1", 1, 0); len(events) != 0 {
		t.Fatalf("finished competitor produced events: %v", events)
	}
	e.UpdateRankings()

	after := mustState(t, e, "c1")
	if after.RaceScore != before.RaceScore || after.TotalRaceTime != before.TotalRaceTime {
		t.Fatalf("finished state changed: before %+v after %+v", before, after)
	}
	if after.LastCheckpointHit != before.LastCheckpointHit || after.Position != before.Position {
		t.Fatalf("finished progress changed")
	}
}

func TestRaceEndsWhenEveryoneFinished(t *testing.T) {
	e, _ := newTestEngine(t, 1, 2)
	e.RegisterCompetitor("c1", "Bolt")
	e.RegisterCompetitor("c2", "Dash")
	e.StartRaceTimer()

	e.Advance(30)
	if _, ok := findEvent(driveLaps(e, "c2", 1), EventRaceEnded); ok {
		t.Fatalf("race should not end with a competitor still racing")
	}
	e.Advance(31)
	events := driveLaps(e, "c1", 1)

	ev, ok := findEvent(events, EventRaceEnded)
	if !ok {
		t.Fatalf("expected race ended event")
	}
	if e.Phase() != domain.PhaseFinished {
		t.Fatalf("phase = %s, want finished", e.Phase())
	}
	standings := ev.Payload.(RaceEndedPayload).Standings
	if len(standings) != 2 || standings[0].ID != "c2" || standings[1].ID != "c1" {
		t.Fatalf("unexpected final order: %+v", standings)
	}
}

func TestCrossingsIgnoredWithoutCheckpoints(t *testing.T) {
	e := NewEngine(Settings{TotalLaps: 3}, nil, noopLogger{})
	e.RegisterCompetitor("c1", "Bolt")

	if events := cross(e, "c1", 0, 1); len(events) != 0 {
		t.Fatalf("expected no events, got %d", len(events))
	}
	if got := mustState(t, e, "c1").LastCheckpointHit; got != -1 {
		t.Fatalf("LastCheckpointHit = %d, want -1", got)
	}
	if e.RankingEnabled() {
		t.Fatalf("ranking must be disabled without checkpoints")
	}
}

func TestCrossingForUnknownCompetitorIsIgnored(t *testing.T) {
	e, _ := newTestEngine(t, 3, 3)
	if events := e.OnCheckpointCrossed("ghost", 0); events != nil {
		t.Fatalf("expected nil events for unknown competitor")
	}
	if e.TotalRacers() != 0 {
		t.Fatalf("unknown crossing must not register a competitor")
	}
}

func TestStartRaceTimerAtClockZeroOpensGate(t *testing.T) {
	e, _ := newTestEngine(t, 3, 3)
	e.RegisterCompetitor("c1", "Bolt")

	events := e.StartRaceTimer()
	if e.RaceStartTime() == 0 {
		t.Fatalf("race start time must be non-zero once started")
	}
	if _, ok := findEvent(events, EventRaceStarted); !ok {
		t.Fatalf("expected race started event")
	}
	if e.Phase() != domain.PhaseRacing {
		t.Fatalf("phase = %s, want racing", e.Phase())
	}
	if got := mustState(t, e, "c1").CurrentLapStartTime; got != e.RaceStartTime() {
		t.Fatalf("CurrentLapStartTime = %v, want %v", got, e.RaceStartTime())
	}
	if again := e.StartRaceTimer(); again != nil {
		t.Fatalf("second start should be a no-op")
	}
}

func TestAdvanceNeverMovesClockBackwards(t *testing.T) {
	e, _ := newTestEngine(t, 3, 3)
	e.Advance(10)
	e.Advance(4)
	if e.Now() != 10 {
		t.Fatalf("Now() = %v, want 10", e.Now())
	}
}

func TestElapsedRaceTime(t *testing.T) {
	e, _ := newTestEngine(t, 3, 3)
	e.Advance(5)
	if e.ElapsedRaceTime() != 0 {
		t.Fatalf("elapsed before start = %v, want 0", e.ElapsedRaceTime())
	}
	e.StartRaceTimer()
	e.Advance(8)
	if e.ElapsedRaceTime() != 3 {
		t.Fatalf("elapsed = %v, want 3", e.ElapsedRaceTime())
	}
}

func TestTooManyCheckpointsDisablesRanking(t *testing.T) {
	e, _ := newTestEngine(t, 1, domain.MaxCheckpoints+1)
	if e.RankingEnabled() {
		t.Fatalf("ranking must be disabled on a %d checkpoint track", domain.MaxCheckpoints+1)
	}
}

func TestFinisherOutranksRacerOnLastCheckpointOfLargestTrack(t *testing.T) {
	e, _ := newTestEngine(t, 1, domain.MaxCheckpoints)
	e.RegisterCompetitor("a", "Bolt")
	e.RegisterCompetitor("b", "Dash")
	e.StartRaceTimer()

	last := domain.MaxCheckpoints - 1
	cross(e, "b", 0)
	for idx := 1; idx <= last; idx++ {
		cross(e, "b", idx)
	}
	e.ReportPosition("b", e.Track().Checkpoint(0).Position)

	e.Advance(30)
	driveLaps(e, "a", 1)
	e.UpdateRankings()

	a, b := mustState(t, e, "a"), mustState(t, e, "b")
	if !a.Finished || b.Finished {
		t.Fatalf("unexpected finish flags: a=%t b=%t", a.Finished, b.Finished)
	}
	if a.CurrentPosition != 1 || b.CurrentPosition != 2 {
		t.Fatalf("positions a=%d (%v) b=%d (%v), want finisher first", a.CurrentPosition, a.RaceScore, b.CurrentPosition, b.RaceScore)
	}
}
