package domain

import (
	"fmt"
	"iter"
	"math"
)

// StandardGravity is the acceleration of gravity in in/s².
const StandardGravity = 386.089

// MinSpeedTolerance is the finest bisection bracket a profile may ask for, in in/s.
const MinSpeedTolerance = 1e-9

// TargetOpening is the slot the projectile must thread, seen in profile.
//
// The near edge sits at the wall (horizontal offset 0 from the target plane); the far edge
// overhangs the field by EdgeSeparation inches.
type TargetOpening struct {
	NearEdgeHeight float64 `json:"near_edge_height"` // inches above the floor
	FarEdgeHeight  float64 `json:"far_edge_height"`  // inches above the floor
	EdgeSeparation float64 `json:"edge_separation"`  // horizontal inches between the edges
}

// DistanceDomain is the closed-open integer interval [Lower, Upper) of standoff distances.
type DistanceDomain struct {
	Lower int `json:"lower"`
	Upper int `json:"upper"`
}

// Len returns the number of distances in the domain.
func (d DistanceDomain) Len() int {
	if d.Upper <= d.Lower {
		return 0
	}
	return d.Upper - d.Lower
}

// Distances yields every distance of the domain in increasing order.
func (d DistanceDomain) Distances() iter.Seq[int] {
	return func(yield func(int) bool) {
		for x := d.Lower; x < d.Upper; x++ {
			if !yield(x) {
				return
			}
		}
	}
}

// Profile is the immutable geometry a scan runs against. Nothing in the core reads
// package-level constants; every component gets the values it needs from a Profile.
type Profile struct {
	Name  string `json:"name"`
	Title string `json:"title"`

	Gravity      float64 `json:"gravity"`       // in/s²
	LaunchHeight float64 `json:"launch_height"` // inches above the floor at release
	WallHeight   float64 `json:"wall_height"`   // drawing only

	Opening TargetOpening  `json:"opening"`
	Domain  DistanceDomain `json:"domain"`

	SpeedTolerance  float64 `json:"speed_tolerance"`   // bisection bracket width, in/s
	SamplesPerCurve int     `json:"samples_per_curve"` // points per rendered trajectory
}

// DefaultProfile is the 2024 speaker geometry.
//
// The subwoofer prevents driving under the opening, so the closest shot is ~30"; the far
// bound is a worst-case mid-line shot.
func DefaultProfile() Profile {
	return Profile{
		Name:         "speaker-2024",
		Title:        "Team 9044 Ballistics Design (2024)",
		Gravity:      StandardGravity,
		LaunchHeight: 25.5,
		WallHeight:   98.302,
		Opening: TargetOpening{
			NearEdgeHeight: 78,
			FarEdgeHeight:  82.875,
			EdgeSeparation: 18,
		},
		Domain:          DistanceDomain{Lower: 30, Upper: 396},
		SpeedTolerance:  1,
		SamplesPerCurve: 20,
	}
}

// Validate reports the first field that makes the profile unusable.
func (p Profile) Validate() error {
	switch {
	case !positive(p.Gravity):
		return fieldErr("gravity", "must be a positive number")
	case !finite(p.LaunchHeight):
		return fieldErr("launch_height", "must be a finite number")
	case !finite(p.Opening.NearEdgeHeight):
		return fieldErr("opening.near_edge_height", "must be a finite number")
	case !finite(p.Opening.FarEdgeHeight):
		return fieldErr("opening.far_edge_height", "must be a finite number")
	case !finite(p.Opening.EdgeSeparation) || p.Opening.EdgeSeparation < 0:
		return fieldErr("opening.edge_separation", "must be zero or positive")
	case p.Domain.Lower < 1:
		return fieldErr("domain.lower", "must be at least 1")
	case p.Domain.Upper <= p.Domain.Lower:
		return fieldErr("domain.upper", "must be greater than domain.lower")
	case !positive(p.SpeedTolerance) || p.SpeedTolerance < MinSpeedTolerance:
		return fieldErr("speed_tolerance", fmt.Sprintf("must be at least %g", MinSpeedTolerance))
	case p.SamplesPerCurve < 2:
		return fieldErr("samples_per_curve", "must be at least 2")
	}
	return nil
}

// Launch binds the external scalars to this profile.
func (p Profile) Launch(angleDeg, speedCeiling float64) LaunchParameters {
	return LaunchParameters{
		AngleDeg:     angleDeg,
		SpeedCeiling: speedCeiling,
		Gravity:      p.Gravity,
		LaunchHeight: p.LaunchHeight,
	}
}

// LaunchParameters fixes everything about a shot except its speed.
type LaunchParameters struct {
	AngleDeg     float64 `json:"angle_deg"`
	SpeedCeiling float64 `json:"speed_ceiling"` // in/s
	Gravity      float64 `json:"gravity"`       // in/s²
	LaunchHeight float64 `json:"launch_height"` // inches
}

// Validate checks the external scalars before any scan begins.
func (lp LaunchParameters) Validate() error {
	if !finite(lp.AngleDeg) || lp.AngleDeg <= 0 || lp.AngleDeg >= 90 {
		return InvalidInput("domain.launch_parameters", "angle", fmt.Sprintf("%v is not in (0, 90) degrees", lp.AngleDeg))
	}
	if !positive(lp.SpeedCeiling) {
		return InvalidInput("domain.launch_parameters", "vlimit", fmt.Sprintf("%v is not a positive speed", lp.SpeedCeiling))
	}
	if !positive(lp.Gravity) {
		return InvalidInput("domain.launch_parameters", "gravity", fmt.Sprintf("%v is not a positive acceleration", lp.Gravity))
	}
	return nil
}

// Radians returns the launch angle in radians.
func (lp LaunchParameters) Radians() float64 {
	return lp.AngleDeg * math.Pi / 180
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func positive(v float64) bool {
	return finite(v) && v > 0
}

func fieldErr(field, msg string) error {
	return fmt.Errorf("field %s: %s: %w", field, msg, ErrInvalidConfig)
}
