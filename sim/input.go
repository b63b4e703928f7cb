package sim

// ControlState is a single tick's normalized control snapshot. The core is
// agnostic to the input source; keyboard, pointer and AI hosts all produce
// one of these per frame.
type ControlState struct {
	Throttle bool
	Reverse  bool
	Fire     bool

	YawLeft   bool
	YawRight  bool
	PitchUp   bool
	PitchDown bool
	RollLeft  bool
	RollRight bool
}

// axis folds an opposing pair of booleans into a -1/0/+1 input. Both held
// cancels out.
func axis(positive, negative bool) float64 {
	if positive == negative {
		return 0
	}
	if positive {
		return 1
	}
	return -1
}

func (c ControlState) pitchAxis() float64 {
	return axis(c.PitchUp, c.PitchDown)
}

func (c ControlState) yawAxis() float64 {
	return axis(c.YawRight, c.YawLeft)
}

func (c ControlState) rollAxis() float64 {
	return axis(c.RollRight, c.RollLeft)
}
