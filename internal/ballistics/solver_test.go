package ballistics

import (
	"math"
	"testing"
	"time"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/team9044/launchband/internal/domain"
)

// exactSpeed inverts the arrival height in closed form.
func exactSpeed(theta, g, dx, dy float64) float64 {
	cos := math.Cos(theta)
	return math.Sqrt(g * dx * dx / (2 * cos * cos * (dx*math.Tan(theta) - dy)))
}

func TestSolveSpeedForPointAccuracy(t *testing.T) {
	for _, angle := range []float64{20, 45, 70} {
		lp := launch(angle, 300)
		m := NewModel(lp)
		tol := m.Tolerance()

		solved := 0
		for dx := 1.0; dx <= 400; dx += 7 {
			for _, dy := range []float64{-20, 0, 10, 52.5, 57.375, 100} {
				q := domain.SpeedQuery{DX: dx, DY: dy}
				v, ok := m.SolveSpeedForPoint(q)
				if !ok {
					if m.Reachable(q) {
						t.Fatalf("angle=%v q=%+v: reachable but unsolved", angle, q)
					}
					continue
				}
				solved++

				if v <= 0 || v > lp.SpeedCeiling {
					t.Fatalf("angle=%v q=%+v: speed %v outside (0, ceiling]", angle, q, v)
				}

				want := exactSpeed(lp.Radians(), lp.Gravity, dx, dy)
				if !scalar.EqualWithinAbs(v, want, tol/2+1e-9) {
					t.Fatalf("angle=%v q=%+v: got %v, exact %v", angle, q, v, want)
				}

				// The exact root lies inside [v-tol/2, v+tol/2], so the arrival height error
				// is bounded by the height swing across that bracket.
				lo := m.ArrivalHeight(v-tol/2-1e-9, dx)
				hi := m.ArrivalHeight(v+tol/2+1e-9, dx)
				if !(lo < dy && dy <= hi) {
					t.Fatalf("angle=%v q=%+v: dy not bracketed by h in [%v, %v]", angle, q, lo, hi)
				}
			}
		}
		if solved == 0 {
			t.Fatalf("angle=%v: no query was solvable", angle)
		}
	}
}

func TestSolveSpeedForPointUnreachable(t *testing.T) {
	m := NewModel(launch(45, 300))

	cases := []domain.SpeedQuery{
		{DX: 0, DY: 0},
		{DX: -5, DY: 0},
		{DX: 100, DY: 1000},
		{DX: math.NaN(), DY: 0},
	}
	for _, q := range cases {
		if v, ok := m.SolveSpeedForPoint(q); ok {
			t.Fatalf("q=%+v: expected infeasible, got %v", q, v)
		}
	}
}

func TestVerticalLaunchIsNeverSolvable(t *testing.T) {
	for _, ceiling := range []float64{1, 300, 5000} {
		m := NewModel(launch(90, ceiling))
		for dx := 1.0; dx <= 400; dx++ {
			if _, ok := m.SolveSpeedForPoint(domain.SpeedQuery{DX: dx, DY: -1000}); ok {
				t.Fatalf("ceiling=%v dx=%v: vertical launch reported feasible", ceiling, dx)
			}
		}
	}
}

func TestSolveSpeedHonorsTolerance(t *testing.T) {
	coarse := NewModel(launch(45, 300), WithTolerance(20))
	fine := NewModel(launch(45, 300), WithTolerance(0.01))
	q := domain.SpeedQuery{DX: 100, DY: 40}
	want := exactSpeed(math.Pi/4, domain.StandardGravity, q.DX, q.DY)

	vc, ok := coarse.SolveSpeedForPoint(q)
	if !ok || !scalar.EqualWithinAbs(vc, want, 10) {
		t.Fatalf("coarse: got %v (ok=%v), exact %v", vc, ok, want)
	}
	vf, ok := fine.SolveSpeedForPoint(q)
	if !ok || !scalar.EqualWithinAbs(vf, want, 0.005+1e-9) {
		t.Fatalf("fine: got %v (ok=%v), exact %v", vf, ok, want)
	}

	ignored := NewModel(launch(45, 300), WithTolerance(-1))
	if ignored.Tolerance() != DefaultSpeedTolerance {
		t.Fatalf("non-positive tolerance must be ignored, got %v", ignored.Tolerance())
	}
}

func TestStepBudget(t *testing.T) {
	cases := []struct {
		ceiling, tol float64
		want         int
	}{
		{300, 1, 9},
		{256, 1, 8},
		{1, 1, 0},
		{0.5, 1, 0},
	}
	for _, c := range cases {
		m := NewModel(launch(45, c.ceiling), WithTolerance(c.tol))
		if got := m.StepBudget(); got != c.want {
			t.Fatalf("ceiling=%v tol=%v: got %d, want %d", c.ceiling, c.tol, got, c.want)
		}
	}
}

func TestSolveSpeedForPointTerminatesBelowFloatSpacing(t *testing.T) {
	m := NewModel(launch(45, 300), WithTolerance(1e-20))
	q := domain.SpeedQuery{DX: 100, DY: 40}

	done := make(chan float64, 1)
	go func() {
		v, ok := m.SolveSpeedForPoint(q)
		if !ok {
			v = math.NaN()
		}
		done <- v
	}()

	select {
	case v := <-done:
		want := exactSpeed(m.Launch().Radians(), m.Launch().Gravity, q.DX, q.DY)
		if !scalar.EqualWithinAbs(v, want, 1e-9) {
			t.Fatalf("got %v, want %v", v, want)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("solver did not return within the step budget (%d steps)", m.StepBudget())
	}
}
