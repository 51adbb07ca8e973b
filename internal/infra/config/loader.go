package config

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/team9044/launchband/internal/domain"
	"github.com/team9044/launchband/internal/ports"
)

// LoadProfile reads and maps a single profile file.
func LoadProfile(path string) (domain.Profile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Profile{}, &domain.OpError{
			Op:   "config.load_profile",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLProfile
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.Profile{}, &domain.OpError{
			Op:   "config.load_profile",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapProfile(path, dto)
}

// ProfileRef points at a profile file in a workspace.
type ProfileRef struct {
	Name string
	Path string
}

// Loader resolves profile names against a workspace profiles directory.
type Loader struct {
	rootDir     string
	profilesDir string
}

type Option func(*Loader)

func WithProfilesDir(dir string) Option {
	return func(l *Loader) {
		if strings.TrimSpace(dir) != "" {
			l.profilesDir = dir
		}
	}
}

func NewLoader(root string, opts ...Option) *Loader {
	l := &Loader{
		rootDir:     root,
		profilesDir: "profiles",
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.ProfileLoader = (*Loader)(nil)

// LoadProfile accepts either a profile name (e.g., "speaker-2024") or a path to a YAML file.
// The built-in profile name resolves to the default geometry when no file shadows it.
func (l *Loader) LoadProfile(nameOrPath string) (domain.Profile, error) {
	if isPathLike(nameOrPath) {
		return LoadProfile(filepath.Clean(nameOrPath))
	}

	for _, ext := range []string{".yaml", ".yml"} {
		p := filepath.Join(l.rootDir, l.profilesDir, nameOrPath+ext)
		if _, err := os.Stat(p); err == nil {
			return LoadProfile(p)
		}
	}

	if def := domain.DefaultProfile(); nameOrPath == def.Name {
		return def, nil
	}

	return domain.Profile{}, &domain.OpError{
		Op:   "config.load_profile",
		Kind: domain.KindNotFound,
		Path: filepath.Join(l.rootDir, l.profilesDir, nameOrPath+".yaml"),
		Err:  domain.ErrNotFound,
	}
}

// ListProfiles lists the YAML files of the profiles directory, sorted by name.
func (l *Loader) ListProfiles() ([]ProfileRef, error) {
	dir := filepath.Join(l.rootDir, l.profilesDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, domain.Execution("config.list_profiles", dir, err)
	}

	var refs []ProfileRef
	for _, e := range entries {
		if e.IsDir() || !hasYAMLExt(e.Name()) {
			continue
		}
		refs = append(refs, ProfileRef{
			Name: strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())),
			Path: filepath.Join(dir, e.Name()),
		})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

func isPathLike(s string) bool {
	return hasYAMLExt(s) || strings.Contains(s, "/") || strings.Contains(s, string(filepath.Separator))
}

func hasYAMLExt(s string) bool {
	ext := strings.ToLower(filepath.Ext(s))
	return ext == ".yaml" || ext == ".yml"
}
