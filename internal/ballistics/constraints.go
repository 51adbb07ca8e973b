package ballistics

import (
	"math"

	"github.com/team9044/launchband/internal/domain"
)

// Evaluator derives the admissible speed band at a standoff distance from the opening
// geometry and the speed ceiling.
type Evaluator struct {
	model   Model
	opening domain.TargetOpening
	samples int
}

func NewEvaluator(m Model, opening domain.TargetOpening, samplesPerCurve int) *Evaluator {
	if samplesPerCurve < 2 {
		samplesPerCurve = 2
	}
	return &Evaluator{
		model:   m,
		opening: opening,
		samples: samplesPerCurve,
	}
}

// NewProfileEvaluator wires a model and an evaluator for one profile.
func NewProfileEvaluator(p domain.Profile, lp domain.LaunchParameters) *Evaluator {
	m := NewModel(lp, WithTolerance(p.SpeedTolerance))
	return NewEvaluator(m, p.Opening, p.SamplesPerCurve)
}

func (e *Evaluator) Model() Model { return e.model }

// FlatSpeed is the speed whose apex lands exactly at horizontal offset d, ignoring the
// launch height. Any slower shot is already descending when it gets to the wall.
func (e *Evaluator) FlatSpeed(d float64) float64 {
	s := math.Sin(2 * e.model.launch.Radians())
	if s <= 1e-12 {
		return math.Inf(1)
	}
	return math.Sqrt(2 * e.model.launch.Gravity * d / s)
}

// MinSpeed is the slowest admissible shot at distance d: it must clear the near edge and
// must not arrive steeply descending. A band floor above the ceiling is not admissible.
func (e *Evaluator) MinSpeed(d float64) (float64, bool) {
	vIntersect, ok := e.model.SolveSpeedForPoint(domain.SpeedQuery{
		DX: d,
		DY: e.opening.NearEdgeHeight - e.model.launch.LaunchHeight,
	})
	if !ok {
		return 0, false
	}

	v := math.Max(vIntersect, e.FlatSpeed(d))
	if v > e.model.launch.SpeedCeiling {
		return 0, false
	}
	return v, true
}

// MaxSpeed is the fastest shot at distance d that still drops below the far edge.
//
// There is no maximum without a minimum. When even the ceiling passes under the far edge
// the ceiling is the bound. A far-edge speed slower than the flat speed is geometrically
// invalid.
func (e *Evaluator) MaxSpeed(d float64) (float64, bool) {
	if _, ok := e.MinSpeed(d); !ok {
		return 0, false
	}
	return e.farEdgeSpeed(d)
}

func (e *Evaluator) farEdgeSpeed(d float64) (float64, bool) {
	vIntersect, ok := e.model.SolveSpeedForPoint(domain.SpeedQuery{
		DX: d - e.opening.EdgeSeparation,
		DY: e.opening.FarEdgeHeight - e.model.launch.LaunchHeight,
	})
	if !ok {
		return e.model.launch.SpeedCeiling, true
	}
	if vIntersect < e.FlatSpeed(d) {
		return 0, false
	}
	return vIntersect, true
}

// Evaluate classifies the integer standoff distance d.
func (e *Evaluator) Evaluate(distance int) domain.Envelope {
	d := float64(distance)
	minSpeed, ok := e.MinSpeed(d)
	if !ok {
		return domain.Infeasible()
	}
	maxSpeed, ok := e.farEdgeSpeed(d)
	if !ok || minSpeed > maxSpeed {
		return domain.Infeasible()
	}
	return domain.FeasibleBand(minSpeed, maxSpeed)
}
