package fsworkspace

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/team9044/launchband/internal/domain"
	"github.com/team9044/launchband/internal/ports"
)

// Initializer scaffolds a workspace: config file, profiles, plots and the log directory.
type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

var _ ports.WorkspaceInitializer = (*Initializer)(nil)

func (i *Initializer) Init(spec domain.WorkspaceSpec, force bool) error {
	root := filepath.Clean(spec.Root)

	dirs := []string{
		filepath.Join(root, "profiles"),
		filepath.Join(root, "plots"),
		filepath.Join(root, ".launchband", "logs"),
	}

	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return initErr(d, err)
		}
	}

	if err := ensureGitignore(root); err != nil {
		return initErr(filepath.Join(root, ".gitignore"), err)
	}

	err := fs.WalkDir(templatesFS, "templates", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel := strings.TrimPrefix(p, "templates/")
		dst := filepath.Join(root, rel)

		if !force {
			if _, statErr := os.Stat(dst); statErr == nil {
				return nil
			}
		}

		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return err
		}

		b, err := fs.ReadFile(templatesFS, p)
		if err != nil {
			return err
		}

		return os.WriteFile(dst, b, 0o644)
	})
	if err != nil {
		return initErr(root, err)
	}
	return nil
}

func initErr(path string, err error) error {
	return domain.Execution("fsworkspace.init", path, err)
}

func ensureGitignore(root string) error {
	const header = "# launchband"
	entries := []string{
		"plots/",
		".launchband/",
	}

	path := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			lines := append([]string{header}, entries...)
			lines = append(lines, "")
			return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
		}
		return err
	}

	existing := string(b)
	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		present[trimmed] = true
	}

	var missing []string
	for _, e := range entries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var out strings.Builder
	out.Grow(len(existing) + 64)

	out.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		out.WriteByte('\n')
	}
	out.WriteByte('\n')
	if !present[header] {
		out.WriteString(header)
		out.WriteByte('\n')
	}
	for _, e := range missing {
		out.WriteString(e)
		out.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(out.String()), 0o644)
}
