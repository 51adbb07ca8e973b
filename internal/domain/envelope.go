package domain

import (
	"fmt"
	"iter"
)

// SpeedQuery is a single point, relative to the launch point, a trajectory must pass through.
type SpeedQuery struct {
	DX float64 // horizontal offset, inches, > 0 for a satisfiable query
	DY float64 // vertical offset, inches, signed
}

// Envelope is the admissible speed band at one standoff distance.
type Envelope struct {
	Feasible bool
	Min      float64
	Max      float64
}

// Infeasible is the envelope of a distance no admissible speed can serve.
func Infeasible() Envelope { return Envelope{} }

// FeasibleBand builds a feasible envelope.
func FeasibleBand(minSpeed, maxSpeed float64) Envelope {
	return Envelope{Feasible: true, Min: minSpeed, Max: maxSpeed}
}

// Sample is one row of the feasibility table.
type Sample struct {
	Distance int     `json:"distance"`
	MinSpeed float64 `json:"v_min"`
	MaxSpeed float64 `json:"v_max"`
}

func (s Sample) String() string {
	return fmt.Sprintf("distance=%d v_min=%.0f v_max=%.0f", s.Distance, s.MinSpeed, s.MaxSpeed)
}

// BoundaryKind names the characteristic distances of a scan.
type BoundaryKind string

const (
	BoundaryNear       BoundaryKind = "near"
	BoundaryInflection BoundaryKind = "inflection"
	BoundaryFar        BoundaryKind = "far"
)

// Title is the capitalized form used in curve labels.
func (k BoundaryKind) Title() string {
	switch k {
	case BoundaryNear:
		return "Near"
	case BoundaryInflection:
		return "Inflection"
	case BoundaryFar:
		return "Far"
	default:
		return string(k)
	}
}

// SpeedBound tells which end of the band a curve was launched at.
type SpeedBound string

const (
	BoundMin SpeedBound = "v_min"
	BoundMax SpeedBound = "v_max"
)

// Point is a coordinate in the field frame: x = 0 at the wall, y = 0 at the floor.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Curve is a labelled trajectory. Points is lazy and may be ranged over any number of times.
type Curve struct {
	Kind     BoundaryKind `json:"kind"`
	Bound    SpeedBound   `json:"bound"`
	Distance int          `json:"distance"`
	Speed    float64      `json:"speed"`
	Label    string       `json:"label"`

	Points iter.Seq[Point] `json:"-"`
}

// CurveLabel formats the legend entry for a boundary trajectory.
func CurveLabel(kind BoundaryKind, bound SpeedBound, distance int, speed float64) string {
	return fmt.Sprintf(`%s d=%d", %s=%.0f"/s`, kind.Title(), distance, bound, speed)
}

// ScanResult is the aggregate outcome of one envelope scan.
type ScanResult struct {
	Launch LaunchParameters `json:"launch"`

	Near       Sample  `json:"near"`
	Inflection *Sample `json:"inflection,omitempty"`
	Far        *Sample `json:"far,omitempty"`

	Rows   []Sample `json:"rows"`
	Curves []Curve  `json:"curves"`
}

// Extent is the farthest boundary distance found; it sizes the floor in charts.
func (r ScanResult) Extent() int {
	if r.Far != nil {
		return r.Far.Distance
	}
	return r.Near.Distance
}

// Boundary returns the sample recorded for kind, if any.
func (r ScanResult) Boundary(kind BoundaryKind) (Sample, bool) {
	switch kind {
	case BoundaryNear:
		return r.Near, len(r.Rows) > 0
	case BoundaryInflection:
		if r.Inflection != nil {
			return *r.Inflection, true
		}
	case BoundaryFar:
		if r.Far != nil {
			return *r.Far, true
		}
	}
	return Sample{}, false
}
