package event

// Queue collects events raised during a tick for the host to drain
// afterwards. It is not safe for concurrent use; the simulation is
// single-threaded by contract.
type Queue struct {
	events []Event
}

func (q *Queue) Push(ev Event) {
	q.events = append(q.events, ev)
}

// Drain returns all queued events and clears the queue.
func (q *Queue) Drain() []Event {
	evs := q.events
	q.events = nil
	return evs
}

func (q *Queue) Len() int {
	return len(q.events)
}
