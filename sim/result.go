package sim

import "github.com/skybreak-gg/skybreak/event"

// TickResult captures the outcome of a single simulation tick.
type TickResult struct {
	// Speed is the ship's current speed, for HUD consumption.
	Speed float64
	// Elapsed is the simulation time in seconds since the start latch.
	Elapsed float64

	Drones    int
	Destroyed int

	Won       bool
	FinalTime float64

	// Events raised during this tick, in emission order. Ownership passes
	// to the host.
	Events []event.Event
}
