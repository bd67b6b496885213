package wpi

// Stroke is one pen-down gesture.
type Stroke struct {
	// Layer is 0 until the first layer marker and increments on each one.
	Layer  int
	Points []Point
}

// StrokeState is the state of an Accumulator.
type StrokeState int

const (
	// Idle: before any start marker, or right after a stroke was flushed.
	Idle StrokeState = iota
	// Collecting: points are being added to the current stroke.
	Collecting
)

// String returns a human-readable representation of the state.
func (s StrokeState) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Collecting:
		return "Collecting"
	default:
		return "Unknown"
	}
}

// IdlePointPolicy decides what happens to a point that arrives while no
// stroke has been started.
type IdlePointPolicy int

const (
	// IdlePointsKeep appends the point to the buffer anyway. It ends up in the
	// next flushed stroke unless a start marker clears it first.
	IdlePointsKeep IdlePointPolicy = iota

	// IdlePointsDrop discards the point.
	IdlePointsDrop
)

// Accumulator assembles strokes from decoded events. It holds at most one
// stroke in progress.
type Accumulator struct {
	state   StrokeState
	policy  IdlePointPolicy
	layer   int
	buf     []Point
	dropped int
}

// NewAccumulator returns an Idle accumulator.
func NewAccumulator(policy IdlePointPolicy) *Accumulator {
	return &Accumulator{policy: policy}
}

// Handle applies ev. When ev completes a stroke, the stroke is returned with
// ok set. Pressure, tilt and skip events do not change the accumulator.
func (a *Accumulator) Handle(ev Event) (Stroke, bool) {
	switch e := ev.(type) {
	case StrokeStart:
		a.begin()
	case StrokeLayer:
		a.layer++
		a.begin()
	case StrokeEnd:
		s := Stroke{Layer: a.layer, Points: a.buf}
		a.buf = nil
		a.state = Idle
		return s, true
	case PointObserved:
		if a.state == Idle && a.policy == IdlePointsDrop {
			a.dropped++
			break
		}
		a.buf = append(a.buf, e.Point)
	case PointDropped, PressureObserved, TiltObserved, Skipped:
	}
	return Stroke{}, false
}

func (a *Accumulator) begin() {
	a.buf = nil
	a.state = Collecting
}

// State returns the current state.
func (a *Accumulator) State() StrokeState {
	return a.state
}

// Pending returns the number of buffered points not yet flushed.
func (a *Accumulator) Pending() int {
	return len(a.buf)
}

// Dropped returns the number of points discarded by IdlePointsDrop.
func (a *Accumulator) Dropped() int {
	return a.dropped
}
