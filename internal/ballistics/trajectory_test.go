package ballistics

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/team9044/launchband/internal/domain"
)

func collect(c domain.Curve) []domain.Point {
	var pts []domain.Point
	for p := range c.Points {
		pts = append(pts, p)
	}
	return pts
}

func TestTraceRunsFromLauncherToWall(t *testing.T) {
	e := newEvaluator(45, 300)
	c := e.Trace(domain.BoundaryNear, domain.BoundMin, 80, 260)

	pts := collect(c)
	if len(pts) != domain.DefaultProfile().SamplesPerCurve {
		t.Fatalf("expected %d samples, got %d", domain.DefaultProfile().SamplesPerCurve, len(pts))
	}

	first, last := pts[0], pts[len(pts)-1]
	if first.X != -80 || first.Y != 25.5 {
		t.Fatalf("unexpected launch point %+v", first)
	}
	if !scalar.EqualWithinAbs(last.X, 0, 1e-9) {
		t.Fatalf("expected last sample at the wall, got %+v", last)
	}
	for i := 1; i < len(pts); i++ {
		if !(pts[i].X > pts[i-1].X) {
			t.Fatalf("x must grow with time: %+v then %+v", pts[i-1], pts[i])
		}
	}

	if c.Label != `Near d=80", v_min=260"/s` {
		t.Fatalf("unexpected label %q", c.Label)
	}
}

func TestTraceIsRestartable(t *testing.T) {
	e := newEvaluator(45, 300)
	c := e.Trace(domain.BoundaryFar, domain.BoundMax, 100, 290)

	a := collect(c)
	b := collect(c)
	if len(a) != len(b) {
		t.Fatalf("ranges differ in length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}

	n := 0
	for range c.Points {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Fatalf("expected early stop after 3 samples, got %d", n)
	}
}

func TestTraceAtMinSpeedMeetsNearEdge(t *testing.T) {
	e := newEvaluator(45, 300)
	for d := 30; d < 396; d++ {
		env := e.Evaluate(d)
		if !env.Feasible {
			continue
		}
		pts := collect(e.Trace(domain.BoundaryNear, domain.BoundMin, d, env.Min))
		last := pts[len(pts)-1]
		// Within the bisection tolerance the min-speed shot reaches the wall at or above
		// the near edge.
		if last.Y < domain.DefaultProfile().Opening.NearEdgeHeight-2 {
			t.Fatalf("d=%d: min-speed shot arrives at y=%v", d, last.Y)
		}
		return
	}
	t.Fatalf("no feasible distance found")
}

func TestTraceVerticalYieldsLaunchPoint(t *testing.T) {
	m := NewModel(launch(90, 300))
	var pts []domain.Point
	for p := range m.Trace(50, 300, 20) {
		pts = append(pts, p)
	}
	if len(pts) != 1 || pts[0] != (domain.Point{X: -50, Y: 25.5}) {
		t.Fatalf("unexpected samples %+v", pts)
	}
}
