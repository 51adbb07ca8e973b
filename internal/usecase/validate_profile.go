package usecase

import (
	"context"

	"github.com/team9044/launchband/internal/domain"
	"github.com/team9044/launchband/internal/ports"
)

type ValidateProfile struct {
	profiles ports.ProfileLoader
}

func NewValidateProfile(pl ports.ProfileLoader) *ValidateProfile {
	return &ValidateProfile{profiles: pl}
}

// Execute loads a profile and checks the launch inputs against it without scanning.
func (uc *ValidateProfile) Execute(ctx context.Context, req EnvelopeRequest) (domain.Profile, error) {
	if err := ctx.Err(); err != nil {
		return domain.Profile{}, err
	}

	profile, _, err := loadLaunch(uc.profiles, req)
	if err != nil {
		return profile, err
	}

	if err := profile.Validate(); err != nil {
		return profile, &domain.OpError{
			Op:   "usecase.validate_profile",
			Kind: domain.KindInvalidConfig,
			Path: req.Profile,
			Err:  err,
		}
	}
	return profile, nil
}
