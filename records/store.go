package records

// Store persists the best completion time per level id. Lower is better;
// the simulation reads once at level start and writes only on a win with a
// strictly lower time.
type Store interface {
	Get(levelID string) (float64, bool)
	Set(levelID string, seconds float64)
}

// Memory is an in-memory Store for tests and hosts without persistence.
type Memory struct {
	times map[string]float64
}

func NewMemory() *Memory {
	return &Memory{times: map[string]float64{}}
}

func (m *Memory) Get(levelID string) (float64, bool) {
	t, ok := m.times[levelID]
	return t, ok
}

func (m *Memory) Set(levelID string, seconds float64) {
	m.times[levelID] = seconds
}
