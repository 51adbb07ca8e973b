package ballistics

import (
	"math"

	"github.com/team9044/launchband/internal/domain"
)

// Model is the closed-form trajectory of a projectile launched at a fixed angle.
// Distances are in inches, speeds in in/s and times in seconds.
type Model struct {
	launch    domain.LaunchParameters
	sin       float64
	cos       float64
	tolerance float64
}

type Option func(*Model)

// WithTolerance sets the bracket width at which the speed bisection stops.
func WithTolerance(tol float64) Option {
	return func(m *Model) {
		if tol > 0 {
			m.tolerance = tol
		}
	}
}

func NewModel(lp domain.LaunchParameters, opts ...Option) Model {
	theta := lp.Radians()
	m := Model{
		launch:    lp,
		sin:       math.Sin(theta),
		cos:       math.Cos(theta),
		tolerance: DefaultSpeedTolerance,
	}
	// cos(π/2) is 6e-17 in floating point; a vertical shot never moves sideways.
	if math.Abs(m.cos) < 1e-12 {
		m.cos = 0
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Launch returns the parameters the model was built from.
func (m Model) Launch() domain.LaunchParameters { return m.launch }

// Tolerance returns the bisection bracket width in in/s.
func (m Model) Tolerance() float64 { return m.tolerance }

// Position returns the displacement from the launch point t seconds after a launch at speed v.
func (m Model) Position(v, t float64) (x, y float64) {
	x = v * m.cos * t
	y = v*m.sin*t - 0.5*m.launch.Gravity*t*t
	return x, y
}

// ArrivalHeight returns the vertical displacement at the moment the horizontal displacement
// reaches dx. For dx > 0 it is strictly increasing in v. It is -Inf when the projectile
// never gets there.
func (m Model) ArrivalHeight(v, dx float64) float64 {
	vx := v * m.cos
	if vx <= 0 {
		return math.Inf(-1)
	}
	t := dx / vx
	if math.IsInf(t, 0) {
		return math.Inf(-1)
	}
	_, y := m.Position(v, t)
	return y
}

// TimeToReach returns the flight time until the horizontal displacement equals dx.
func (m Model) TimeToReach(v, dx float64) (float64, bool) {
	vx := v * m.cos
	if vx <= 0 {
		return 0, false
	}
	return dx / vx, true
}
