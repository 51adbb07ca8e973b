package workspacefinder

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/team9044/launchband/internal/domain"
)

// Finder locates a launchband workspace root by walking upward until a
// directory holds one of the marker files.
type Finder struct {
	// ConfigFiles are tried in order in each directory. Defaults to ConfigFiles.
	ConfigFiles []string
}

func NewFinder() *Finder {
	return &Finder{ConfigFiles: append([]string(nil), ConfigFiles...)}
}

func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "workspacefinder.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", domain.Execution("workspacefinder.findroot", startDir, err)
	}

	// A file path searches from its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	names := f.ConfigFiles
	if len(names) == 0 {
		names = ConfigFiles
	}

	cur := filepath.Clean(abs)
	for {
		if _, ok := markerIn(cur, names); ok {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{
				Op:   "workspacefinder.findroot",
				Kind: domain.KindNotFound,
				Path: abs,
				Err:  fmt.Errorf("no %s in %s or any parent: %w", names[0], abs, domain.ErrNotFound),
			}
		}
		cur = parent
	}
}

// markerIn returns the path of the first marker present in dir.
func markerIn(dir string, names []string) (string, bool) {
	for _, name := range names {
		p := filepath.Join(dir, name)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, true
		}
	}
	return "", false
}
