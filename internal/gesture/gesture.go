// Package gesture turns a raw continuous drag signal into a discrete
// like/pass decision. The state machine owns the decision; the rotation
// and opacity maps are pure rendering feedback consumed by the deck
// view but never fed back into the machine.
package gesture

import "math"

// CommitThreshold is the drag distance that commits a decision. The
// comparison is strict: a drag ending at exactly the threshold snaps
// back.
const CommitThreshold = 150.0

// Visual feedback constants.
const (
	rotationRangePx = 300.0
	maxRotationDeg  = 30.0
)

// Decision is a committed swipe outcome.
type Decision int

const (
	DecisionLike Decision = iota
	DecisionPass
)

func (d Decision) String() string {
	if d == DecisionLike {
		return "like"
	}
	return "pass"
}

// State identifies the classifier's phase. Terminal states are
// transient: the classifier returns to Idle as part of delivering a
// Result.
type State int

const (
	StateIdle State = iota
	StateDragging
)

// Result is the outcome of a finished gesture. When Committed is false
// the card snapped back and no decision was recorded.
type Result struct {
	Committed bool
	Decision  Decision
}

// Classifier is the per-deck drag state machine. Only the top card of
// the stack is interactive; StartDrag refuses otherwise.
type Classifier struct {
	state   State
	offsetX float64
	offsetY float64
}

// State returns the current phase.
func (c *Classifier) State() State {
	return c.state
}

// Offset returns the current drag offset.
func (c *Classifier) Offset() (x, y float64) {
	return c.offsetX, c.offsetY
}

// StartDrag begins a drag. It succeeds only from Idle and only for the
// top-of-stack card; inert lower cards never enter Dragging.
func (c *Classifier) StartDrag(topCard bool) bool {
	if c.state != StateIdle || !topCard {
		return false
	}
	c.state = StateDragging
	c.offsetX = 0
	c.offsetY = 0
	return true
}

// Drag records the latest sample while dragging. Samples outside an
// active drag are ignored.
func (c *Classifier) Drag(x, y float64) {
	if c.state != StateDragging {
		return
	}
	c.offsetX = x
	c.offsetY = y
}

// Release ends the drag and classifies it. A drag past +CommitThreshold
// commits a like, past -CommitThreshold a pass; anything else snaps the
// card back to the origin with no observable effect. The classifier is
// Idle again when Release returns.
func (c *Classifier) Release() Result {
	if c.state != StateDragging {
		return Result{}
	}
	x := c.offsetX
	c.state = StateIdle
	c.offsetX = 0
	c.offsetY = 0

	switch {
	case x > CommitThreshold:
		return Result{Committed: true, Decision: DecisionLike}
	case x < -CommitThreshold:
		return Result{Committed: true, Decision: DecisionPass}
	default:
		return Result{}
	}
}

// Commit issues a programmatic (button-press) decision, bypassing the
// drag phase. It is refused mid-drag.
func (c *Classifier) Commit(d Decision) (Result, bool) {
	if c.state != StateIdle {
		return Result{}, false
	}
	return Result{Committed: true, Decision: d}, true
}

// Rotation maps a horizontal offset to a card tilt in degrees, linear
// over [-300, 300] px and clamped to [-30, 30] degrees.
func Rotation(x float64) float64 {
	deg := x / rotationRangePx * maxRotationDeg
	if deg > maxRotationDeg {
		return maxRotationDeg
	}
	if deg < -maxRotationDeg {
		return -maxRotationDeg
	}
	return deg
}

// Opacity maps a horizontal offset to card opacity, peaking at 1.0 when
// the card is centered and falling off linearly on both sides.
func Opacity(x float64) float64 {
	op := 1 - math.Abs(x)/rotationRangePx
	if op < 0 {
		return 0
	}
	return op
}
