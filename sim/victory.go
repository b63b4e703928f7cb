package sim

import (
	"github.com/skybreak-gg/skybreak/event"
	"github.com/skybreak-gg/skybreak/level"
	"github.com/skybreak-gg/skybreak/serror"
)

// VictoryKind enumerates the declarative win conditions.
type VictoryKind uint8

const (
	VictoryDestroyAll VictoryKind = iota
	VictoryDestroyCount
	VictorySurviveTime
)

// VictoryCondition is the level's immutable win rule.
type VictoryCondition struct {
	Kind    VictoryKind
	Count   int
	Seconds float64
}

func conditionFromConfig(cfg level.VictoryConfig) (VictoryCondition, error) {
	switch cfg.Kind {
	case level.VictoryDestroyAll:
		return VictoryCondition{Kind: VictoryDestroyAll}, nil
	case level.VictoryDestroyCount:
		return VictoryCondition{Kind: VictoryDestroyCount, Count: cfg.Count}, nil
	case level.VictorySurviveTime:
		return VictoryCondition{Kind: VictorySurviveTime, Seconds: cfg.Seconds}, nil
	default:
		return VictoryCondition{}, serror.New("unknown victory kind %q", cfg.Kind)
	}
}

type victoryState struct {
	startTime float64
	won       bool
	finalTime float64

	// bestTime is read from the store once at level start.
	bestTime float64
	hasBest  bool
}

// simulateVictory evaluates the win condition once per tick until it latches.
func (s *Simulator) simulateVictory() {
	v := &s.victory
	if v.won {
		return
	}

	elapsed := s.clock - v.startTime
	won := false
	switch s.condition.Kind {
	case VictoryDestroyAll:
		// The initial-count guard keeps an empty level from winning before
		// any drones ever existed.
		won = s.initialDrones > 0 && s.drones.Len() == 0
	case VictoryDestroyCount:
		won = s.destroyed >= s.condition.Count
	case VictorySurviveTime:
		won = elapsed >= s.condition.Seconds
	}
	if !won {
		return
	}

	v.won = true
	v.finalTime = elapsed

	newBest := !v.hasBest || v.finalTime < v.bestTime
	if newBest && s.store != nil {
		s.store.Set(s.level.ID, v.finalTime)
	}

	s.events.Push(event.VictoryEvent{
		NopEvent:  event.NopEvent{EvTime: s.clockMs()},
		FinalTime: v.finalTime,
		NewBest:   newBest,
	})
	s.debugf("victory in %.3fs (new best: %v)", v.finalTime, newBest)
}
