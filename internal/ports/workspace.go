package ports

import "github.com/team9044/launchband/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
