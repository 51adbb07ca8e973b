package config

import (
	"path/filepath"
	"strings"

	"github.com/team9044/launchband/internal/domain"
)

// MapProfile applies a parsed profile on top of the default geometry and validates it.
func MapProfile(path string, yp YAMLProfile) (domain.Profile, error) {
	p := domain.DefaultProfile()

	p.Name = strings.TrimSpace(yp.Name)
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if t := strings.TrimSpace(yp.Title); t != "" {
		p.Title = t
	}

	setFloat(&p.Gravity, yp.Gravity)
	setFloat(&p.LaunchHeight, yp.LaunchHeight)
	setFloat(&p.WallHeight, yp.WallHeight)

	setFloat(&p.Opening.NearEdgeHeight, yp.Opening.NearEdgeHeight)
	setFloat(&p.Opening.FarEdgeHeight, yp.Opening.FarEdgeHeight)
	setFloat(&p.Opening.EdgeSeparation, yp.Opening.EdgeSeparation)

	setInt(&p.Domain.Lower, yp.Domain.Lower)
	setInt(&p.Domain.Upper, yp.Domain.Upper)

	setFloat(&p.SpeedTolerance, yp.Solver.SpeedTolerance)
	setInt(&p.SamplesPerCurve, yp.SamplesPerCurve)

	if err := p.Validate(); err != nil {
		return domain.Profile{}, &domain.OpError{
			Op:   "config.map",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return p, nil
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
