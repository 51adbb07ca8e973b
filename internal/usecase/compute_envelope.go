package usecase

import (
	"context"
	"io"
	"log/slog"

	"github.com/team9044/launchband/internal/ballistics"
	"github.com/team9044/launchband/internal/domain"
	"github.com/team9044/launchband/internal/ports"
)

// EnvelopeRequest carries the two external scalars and the profile to scan against.
type EnvelopeRequest struct {
	Profile      string // profile name or path; empty means the built-in default
	AngleDeg     float64
	SpeedCeiling float64
}

// ComputeEnvelope loads a profile, validates the launch inputs, scans the profile's distance
// domain and hands the boundary curves to the renderer.
type ComputeEnvelope struct {
	profiles ports.ProfileLoader
	renderer ports.ChartRenderer
	log      *slog.Logger
}

type ComputeOption func(*ComputeEnvelope)

func WithLogger(l *slog.Logger) ComputeOption {
	return func(uc *ComputeEnvelope) {
		if l != nil {
			uc.log = l
		}
	}
}

// NewComputeEnvelope builds the use case. A nil renderer skips rendering.
func NewComputeEnvelope(pl ports.ProfileLoader, r ports.ChartRenderer, opts ...ComputeOption) *ComputeEnvelope {
	uc := &ComputeEnvelope{
		profiles: pl,
		renderer: r,
		log:      slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func (uc *ComputeEnvelope) Execute(ctx context.Context, req EnvelopeRequest) (domain.ScanResult, domain.Profile, error) {
	profile, lp, err := loadLaunch(uc.profiles, req)
	if err != nil {
		return domain.ScanResult{}, profile, err
	}

	uc.log.Info("envelope.start",
		"profile", profile.Name,
		"angle", lp.AngleDeg,
		"vlimit", lp.SpeedCeiling,
	)

	ev := ballistics.NewProfileEvaluator(profile, lp)
	scan := NewScanEnvelope(ev, ev, WithScanLogger(uc.log))

	res, err := scan.Execute(ctx, profile.Domain)
	res.Launch = lp
	if err != nil {
		return res, profile, err
	}

	if uc.renderer == nil {
		return res, profile, nil
	}

	if err := uc.renderer.Render(BuildChart(profile, res)); err != nil {
		uc.log.Error("render.failed", "err", err)
		return res, profile, err
	}
	uc.log.Info("render.ok", "curves", len(res.Curves))
	return res, profile, nil
}

// loadLaunch resolves the profile and checks the external scalars before anything is scanned.
func loadLaunch(pl ports.ProfileLoader, req EnvelopeRequest) (domain.Profile, domain.LaunchParameters, error) {
	profile := domain.DefaultProfile()
	if req.Profile != "" {
		if pl == nil {
			return profile, domain.LaunchParameters{}, &domain.OpError{
				Op:   "usecase.load_profile",
				Kind: domain.KindNotFound,
				Path: req.Profile,
				Err:  domain.ErrNotFound,
			}
		}
		p, err := pl.LoadProfile(req.Profile)
		if err != nil {
			return profile, domain.LaunchParameters{}, err
		}
		profile = p
	}

	lp := profile.Launch(req.AngleDeg, req.SpeedCeiling)
	if err := lp.Validate(); err != nil {
		return profile, lp, err
	}
	return profile, lp, nil
}
