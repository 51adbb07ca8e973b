package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/team9044/launchband/internal/domain"
	"github.com/team9044/launchband/internal/usecase"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func launchLine(p domain.Profile, req usecase.EnvelopeRequest) string {
	name := p.Name
	if name == "" {
		name = req.Profile
	}
	if name == "" {
		name = domain.DefaultProfile().Name
	}
	return fmt.Sprintf(`profile=%s  angle=%g°  vlimit=%g"/s`, name, req.AngleDeg, req.SpeedCeiling)
}

// boundaryAt reports which boundary, if any, was recorded at distance.
// The near boundary wins when two boundaries share a distance.
func boundaryAt(res domain.ScanResult, distance int) domain.BoundaryKind {
	for _, k := range []domain.BoundaryKind{domain.BoundaryNear, domain.BoundaryInflection, domain.BoundaryFar} {
		if s, ok := res.Boundary(k); ok && s.Distance == distance {
			return k
		}
	}
	return ""
}

func renderBoundarySummary(t Theme, res domain.ScanResult) string {
	if len(res.Rows) == 0 {
		return "(no feasible distances)"
	}

	styles := map[domain.BoundaryKind]func(...string) string{
		domain.BoundaryNear:       t.Near.Render,
		domain.BoundaryInflection: t.Inflection.Render,
		domain.BoundaryFar:        t.Far.Render,
	}

	var b strings.Builder
	for _, k := range []domain.BoundaryKind{domain.BoundaryNear, domain.BoundaryInflection, domain.BoundaryFar} {
		s, ok := res.Boundary(k)
		if !ok {
			b.WriteString(fmt.Sprintf("%-11s —\n", k.Title()))
			continue
		}
		b.WriteString(styles[k](fmt.Sprintf("%-11s", k.Title())))
		b.WriteString(" " + s.String() + "\n")
	}
	b.WriteString(fmt.Sprintf("Rows:       %d", len(res.Rows)))
	return b.String()
}

func renderSampleDetails(s domain.Sample, res domain.ScanResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Distance: %d\"\n", s.Distance))
	b.WriteString(fmt.Sprintf("v_min:    %.1f\"/s\n", s.MinSpeed))
	b.WriteString(fmt.Sprintf("v_max:    %.1f\"/s\n", s.MaxSpeed))
	b.WriteString(fmt.Sprintf("Band:     %.1f\"/s\n", s.MaxSpeed-s.MinSpeed))

	if k := boundaryAt(res, s.Distance); k != "" {
		b.WriteString("Boundary: " + string(k) + "\n")
	}

	labels := lo.FilterMap(res.Curves, func(c domain.Curve, _ int) (string, bool) {
		return c.Label, c.Distance == s.Distance
	})
	if len(labels) > 0 {
		b.WriteString("\nCurves:\n")
		for _, l := range labels {
			b.WriteString("  - " + l + "\n")
		}
	}

	return b.String()
}
