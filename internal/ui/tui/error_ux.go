package tui

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/team9044/launchband/internal/domain"
)

var (
	reLine  = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)
	reField = regexp.MustCompile(`\bfield\s+([A-Za-z0-9_.]+):`)
)

func userMessage(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, domain.ErrTotalInfeasibility) {
		return "No solution: no distance in the domain is reachable"
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {

		case domain.KindNotFound:
			if strings.Contains(oe.Op, "load_profile") {
				return "Profile not found"
			}
			if strings.Contains(oe.Op, "workspacefinder.findroot") {
				return "Workspace not found"
			}
			return "Not found"

		case domain.KindInvalidInput:
			if oe.Err == nil {
				return "Invalid input"
			}
			msg := strings.TrimSuffix(oe.Err.Error(), ": "+domain.ErrInvalidInput.Error())
			return "Invalid input: " + msg

		case domain.KindInvalidConfig:
			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}

			if f := extractField(err.Error()); f != "" {
				return "Invalid " + f + " in " + base
			}

			line := extractLine(err.Error())
			if line != "" {
				return "Invalid YAML at " + base + " line " + line
			}

			if looksLikeYAMLProblem(err.Error()) {
				return "Invalid YAML at " + base
			}
			return "Invalid config"

		case domain.KindExecution:
			if strings.HasPrefix(oe.Op, "plotrender") {
				return "Could not write chart"
			}
			return "Unexpected error (see logs)"

		default:
			return "Unexpected error (see logs)"
		}
	}

	if looksLikeYAMLProblem(err.Error()) {
		line := extractLine(err.Error())
		if line != "" {
			return "Invalid YAML line " + line
		}
		return "Invalid YAML"
	}

	return "Unexpected error (see logs)"
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}

func extractField(s string) string {
	m := reField.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
