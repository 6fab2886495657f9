package app

import "container/heap"

// Task is a deferred action keyed to the session clock.
type Task struct {
	at        float64
	seq       uint64
	fn        func() []Event
	cancelled bool
	index     int
}

// Cancel prevents the task from running. Cancelling a task that already ran is a no-op.
func (t *Task) Cancel() {
	if t != nil {
		t.cancelled = true
	}
}

// At returns the session time the task fires at.
func (t *Task) At() float64 {
	return t.at
}

// Scheduler runs deferred actions in (fire time, scheduling order) order.
// It is driven by the host tick and never starts goroutines.
type Scheduler struct {
	queue taskQueue
	seq   uint64
}

// NewScheduler returns an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Schedule registers fn to run once the clock reaches at.
func (s *Scheduler) Schedule(at float64, fn func() []Event) *Task {
	s.seq++
	t := &Task{at: at, seq: s.seq, fn: fn}
	heap.Push(&s.queue, t)
	return t
}

// RunDue runs every non-cancelled task with a fire time at or before now.
// Tasks scheduled by a running task are picked up in the same call when already due.
func (s *Scheduler) RunDue(now float64) []Event {
	var events []Event
	for s.queue.Len() > 0 && s.queue[0].at <= now {
		t := heap.Pop(&s.queue).(*Task)
		if t.cancelled {
			continue
		}
		t.cancelled = true
		events = append(events, t.fn()...)
	}
	return events
}

// Pending returns the number of tasks that have not run or been cancelled.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.queue {
		if !t.cancelled {
			n++
		}
	}
	return n
}

type taskQueue []*Task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].at != q[j].at {
		return q[i].at < q[j].at
	}
	return q[i].seq < q[j].seq
}

func (q taskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *taskQueue) Push(x any) {
	t := x.(*Task)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
