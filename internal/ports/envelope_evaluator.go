package ports

import "github.com/team9044/launchband/internal/domain"

// EnvelopeEvaluator classifies a single standoff distance.
type EnvelopeEvaluator interface {
	Evaluate(distance int) domain.Envelope
}

// TrajectoryTracer turns one end of a speed band into a drawable curve.
type TrajectoryTracer interface {
	Trace(kind domain.BoundaryKind, bound domain.SpeedBound, distance int, speed float64) domain.Curve
}
