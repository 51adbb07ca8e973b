package tui

import (
	"context"
	"log/slog"

	"github.com/team9044/launchband/internal/domain"
	"github.com/team9044/launchband/internal/usecase"
)

// EnvelopeRunner is the slice of usecase.ComputeEnvelope the explorer needs.
type EnvelopeRunner interface {
	Execute(ctx context.Context, req usecase.EnvelopeRequest) (domain.ScanResult, domain.Profile, error)
}

type Deps struct {
	Envelope EnvelopeRunner
	Request  usecase.EnvelopeRequest

	WorkspaceRoot string

	Logger *slog.Logger
	Debug  bool
}
