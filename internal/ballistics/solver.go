package ballistics

import (
	"math"

	"github.com/team9044/launchband/internal/domain"
)

// DefaultSpeedTolerance is the bracket width, in in/s, at which bisection stops.
const DefaultSpeedTolerance = 1.0

// Reachable reports whether a launch at the speed ceiling arrives at or above q.
func (m Model) Reachable(q domain.SpeedQuery) bool {
	if !(q.DX > 0) {
		return false
	}
	return m.ArrivalHeight(m.launch.SpeedCeiling, q.DX) >= q.DY
}

// SolveSpeedForPoint finds the launch speed whose trajectory passes through q.
//
// The answer is approximate: bisection over [0, ceiling] stops once the bracket is narrower
// than the model tolerance and returns the bracket midpoint, so the exact root lies within
// half a tolerance of the result. ok is false when q is unreachable even at the ceiling.
// The loop never runs more than StepBudget steps, and it also stops once the midpoint can
// no longer split the bracket in float64.
func (m Model) SolveSpeedForPoint(q domain.SpeedQuery) (v float64, ok bool) {
	if !m.Reachable(q) {
		return 0, false
	}

	budget := m.StepBudget()
	lo, hi := 0.0, m.launch.SpeedCeiling
	for step := 0; ; step++ {
		v = (lo + hi) / 2
		if lo+m.tolerance >= hi || step >= budget || v <= lo || v >= hi {
			return v, true
		}
		if m.ArrivalHeight(v, q.DX) < q.DY {
			lo = v
		} else {
			hi = v
		}
	}
}

// StepBudget is the most bisection steps SolveSpeedForPoint can take.
func (m Model) StepBudget() int {
	ratio := m.launch.SpeedCeiling / m.tolerance
	if ratio <= 1 {
		return 0
	}
	return int(math.Ceil(math.Log2(ratio)))
}
