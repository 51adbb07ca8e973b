package ballistics

import (
	"iter"

	"github.com/team9044/launchband/internal/domain"
)

// Trace samples a launch at speed from standoff distance until the projectile reaches the
// wall. Points are in the field frame (wall at x = 0, floor at y = 0), at samples equally
// spaced times. The sequence is recomputed on every range.
func (m Model) Trace(distance, speed float64, samples int) iter.Seq[domain.Point] {
	return func(yield func(domain.Point) bool) {
		tMax, ok := m.TimeToReach(speed, distance)
		if !ok || samples < 2 {
			yield(domain.Point{X: -distance, Y: m.launch.LaunchHeight})
			return
		}

		step := tMax / float64(samples-1)
		for i := range samples {
			x, y := m.Position(speed, step*float64(i))
			if !yield(domain.Point{X: -distance + x, Y: m.launch.LaunchHeight + y}) {
				return
			}
		}
	}
}

// Trace builds the labelled curve for one end of the speed band at a boundary distance.
func (e *Evaluator) Trace(kind domain.BoundaryKind, bound domain.SpeedBound, distance int, speed float64) domain.Curve {
	return domain.Curve{
		Kind:     kind,
		Bound:    bound,
		Distance: distance,
		Speed:    speed,
		Label:    domain.CurveLabel(kind, bound, distance, speed),
		Points:   e.model.Trace(float64(distance), speed, e.samples),
	}
}
