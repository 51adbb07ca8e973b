package usecase

import (
	"context"
	"io"
	"log/slog"

	"github.com/team9044/launchband/internal/domain"
	"github.com/team9044/launchband/internal/ports"
)

// ScanEnvelope sweeps the distance domain and records the feasible run, its boundaries and
// the inflection of the minimum-speed curve.
//
// The feasible region is assumed to be contiguous: the first infeasible distance after the
// run started ends the scan, even if feasible distances exist further out.
type ScanEnvelope struct {
	evaluator ports.EnvelopeEvaluator
	tracer    ports.TrajectoryTracer
	log       *slog.Logger
}

type ScanOption func(*ScanEnvelope)

func WithScanLogger(l *slog.Logger) ScanOption {
	return func(uc *ScanEnvelope) {
		if l != nil {
			uc.log = l
		}
	}
}

func NewScanEnvelope(ev ports.EnvelopeEvaluator, tr ports.TrajectoryTracer, opts ...ScanOption) *ScanEnvelope {
	uc := &ScanEnvelope{
		evaluator: ev,
		tracer:    tr,
		log:       slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute scans dd in increasing order. It fails with KindInfeasible when no distance of
// the domain is feasible.
func (uc *ScanEnvelope) Execute(ctx context.Context, dd domain.DistanceDomain) (domain.ScanResult, error) {
	res := domain.ScanResult{Rows: []domain.Sample{}, Curves: []domain.Curve{}}

	uc.log.Debug("scan.start", "lower", dd.Lower, "upper", dd.Upper)

	var state scanState = searching{}
	for d := range dd.Distances() {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		env := uc.evaluator.Evaluate(d)
		if env.Feasible {
			res.Rows = append(res.Rows, domain.Sample{Distance: d, MinSpeed: env.Min, MaxSpeed: env.Max})
		}

		var events []scanEvent
		state, events = step(state, d, env)
		uc.apply(&res, events)

		if _, ok := state.(done); ok {
			break
		}
	}

	if _, ok := state.(done); !ok {
		_, events := finish(state)
		uc.apply(&res, events)
	}

	if len(res.Rows) == 0 {
		uc.log.Info("scan.infeasible", "lower", dd.Lower, "upper", dd.Upper)
		return res, &domain.OpError{
			Op:   "usecase.scan_envelope",
			Kind: domain.KindInfeasible,
			Err:  domain.ErrTotalInfeasibility,
		}
	}

	uc.log.Info("scan.ok", "rows", len(res.Rows), "near", res.Near.Distance, "extent", res.Extent())
	return res, nil
}

func (uc *ScanEnvelope) apply(res *domain.ScanResult, events []scanEvent) {
	for _, ev := range events {
		s := ev.sample
		switch ev.kind {
		case domain.BoundaryNear:
			res.Near = s
		case domain.BoundaryInflection:
			res.Inflection = &s
		case domain.BoundaryFar:
			res.Far = &s
		}

		uc.log.Info("scan."+string(ev.kind)+"_boundary",
			"distance", s.Distance,
			"v_min", s.MinSpeed,
			"v_max", s.MaxSpeed,
		)

		if uc.tracer == nil {
			continue
		}
		res.Curves = append(res.Curves,
			uc.tracer.Trace(ev.kind, domain.BoundMin, s.Distance, s.MinSpeed),
			uc.tracer.Trace(ev.kind, domain.BoundMax, s.Distance, s.MaxSpeed),
		)
	}
}

// scanState is one of searching, trackingRun or done.
type scanState interface {
	isScanState()
}

// searching: no feasible distance seen yet.
type searching struct{}

// trackingRun: inside the feasible run. last is the previous feasible distance after the
// near boundary; it is only valid when hasLast is set.
type trackingRun struct {
	near            domain.Sample
	last            domain.Sample
	hasLast         bool
	inflectionFound bool
}

type done struct{}

func (searching) isScanState()   {}
func (trackingRun) isScanState() {}
func (done) isScanState()        {}

type scanEvent struct {
	kind   domain.BoundaryKind
	sample domain.Sample
}

// step advances the scan by one distance.
func step(s scanState, d int, env domain.Envelope) (scanState, []scanEvent) {
	switch st := s.(type) {
	case searching:
		if !env.Feasible {
			return st, nil
		}
		near := domain.Sample{Distance: d, MinSpeed: env.Min, MaxSpeed: env.Max}
		return trackingRun{near: near}, []scanEvent{{kind: domain.BoundaryNear, sample: near}}

	case trackingRun:
		if !env.Feasible {
			return finish(st)
		}

		cur := domain.Sample{Distance: d, MinSpeed: env.Min, MaxSpeed: env.Max}
		var events []scanEvent
		// The minimum-speed curve stopped falling: the previous distance is its local minimum.
		if !st.inflectionFound && st.hasLast && st.last.MinSpeed < cur.MinSpeed {
			st.inflectionFound = true
			events = append(events, scanEvent{kind: domain.BoundaryInflection, sample: st.last})
		}
		st.last = cur
		st.hasLast = true
		return st, events

	default:
		return st, nil
	}
}

// finish closes the scan, reporting the far boundary when the run went past the near one.
func finish(s scanState) (scanState, []scanEvent) {
	if st, ok := s.(trackingRun); ok && st.hasLast {
		return done{}, []scanEvent{{kind: domain.BoundaryFar, sample: st.last}}
	}
	return done{}, nil
}
