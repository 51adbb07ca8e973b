package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/team9044/launchband/internal/domain"
	"github.com/team9044/launchband/internal/infra/config"
	"github.com/team9044/launchband/internal/infra/workspacefinder"
)

type workspaceCtx struct {
	root string // empty when running outside a workspace
	cfg  domain.Config

	profiles *config.Loader
}

// loadWorkspace opens the workspace named by the flag, or the one enclosing the working
// directory. Without either, commands still run against the built-in profile.
func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	if strings.TrimSpace(workspaceFlag) == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}

		root, err := workspacefinder.NewFinder().FindRoot(wd)
		if err != nil {
			if domain.IsKind(err, domain.KindNotFound) {
				return &workspaceCtx{
					cfg:      domain.DefaultConfig(),
					profiles: config.NewLoader(wd),
				}, nil
			}
			return nil, err
		}
		return openWorkspace(root)
	}

	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}
	return openWorkspace(root)
}

func openWorkspace(root string) (*workspaceCtx, error) {
	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	return &workspaceCtx{
		root:     root,
		cfg:      cfg,
		profiles: config.NewLoader(root, config.WithProfilesDir(cfg.Paths.ProfilesDir)),
	}, nil
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	locator := workspacefinder.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `launchband init`): %w", wd, err)
	}
	return root, nil
}

// resolveProfileArg turns the --profile flag into something the loader understands.
// Paths are taken relative to the workspace root; names go to the loader untouched.
func resolveProfileArg(ws *workspaceCtx, arg string) string {
	in := strings.TrimSpace(arg)
	if in == "" {
		return ws.cfg.Defaults.Profile
	}

	if looksLikePath(in) && !filepath.IsAbs(in) && ws.root != "" {
		return filepath.Join(ws.root, in)
	}
	return in
}

// defaultPlotPath names the chart after the launch inputs inside a workspace.
func defaultPlotPath(ws *workspaceCtx, angle, vlimit float64) string {
	if ws.root == "" {
		return "envelope.png"
	}
	name := fmt.Sprintf("envelope_%sdeg_%s.png", formatNumber(angle), formatNumber(vlimit))
	return filepath.Join(ws.root, ws.cfg.Paths.PlotsDir, name)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func looksLikePath(s string) bool {
	return hasYAMLExt(s) || strings.Contains(s, "/") || strings.Contains(s, string(filepath.Separator))
}

func hasYAMLExt(s string) bool {
	ext := strings.ToLower(filepath.Ext(s))
	return ext == ".yaml" || ext == ".yml"
}
