package usecase

import (
	"context"
	"testing"

	"github.com/team9044/launchband/internal/domain"
)

func TestValidateProfile_OK(t *testing.T) {
	loader := &fakeProfileLoader{profile: domain.DefaultProfile()}

	p, err := NewValidateProfile(loader).Execute(context.Background(), EnvelopeRequest{Profile: "speaker", AngleDeg: 45, SpeedCeiling: 300})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if p.Name != "speaker-2024" {
		t.Fatalf("unexpected profile %q", p.Name)
	}
}

func TestValidateProfile_InvalidGeometry(t *testing.T) {
	bad := domain.DefaultProfile()
	bad.SamplesPerCurve = 0
	loader := &fakeProfileLoader{profile: bad}

	_, err := NewValidateProfile(loader).Execute(context.Background(), EnvelopeRequest{Profile: "bad.yaml", AngleDeg: 45, SpeedCeiling: 300})
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
}

func TestValidateProfile_InvalidInput(t *testing.T) {
	_, err := NewValidateProfile(nil).Execute(context.Background(), EnvelopeRequest{AngleDeg: 45, SpeedCeiling: 0})
	if !domain.IsKind(err, domain.KindInvalidInput) {
		t.Fatalf("expected KindInvalidInput, got %v", err)
	}
}

func TestValidateProfile_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewValidateProfile(nil).Execute(ctx, EnvelopeRequest{AngleDeg: 45, SpeedCeiling: 300}); err == nil {
		t.Fatalf("expected context error")
	}
}
