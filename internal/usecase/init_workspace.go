package usecase

import (
	"context"
	"strings"

	"github.com/team9044/launchband/internal/domain"
	"github.com/team9044/launchband/internal/ports"
)

// InitWorkspace scaffolds a workspace and confirms it is discoverable afterwards.
type InitWorkspace struct {
	initializer ports.WorkspaceInitializer
	locator     ports.WorkspaceLocator
}

// NewInitWorkspace builds the use case. A nil locator skips the discovery check.
func NewInitWorkspace(initializer ports.WorkspaceInitializer, locator ports.WorkspaceLocator) *InitWorkspace {
	return &InitWorkspace{initializer: initializer, locator: locator}
}

// Execute returns the root the locator resolves for the new workspace.
func (uc *InitWorkspace) Execute(ctx context.Context, root string, force bool) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if strings.TrimSpace(root) == "" {
		return "", domain.InvalidInput("usecase.init_workspace", "path", "is empty")
	}

	if err := uc.initializer.Init(domain.WorkspaceSpec{Root: root}, force); err != nil {
		return "", err
	}

	if uc.locator == nil {
		return root, nil
	}
	found, err := uc.locator.FindRoot(root)
	if err != nil {
		return "", domain.Execution("usecase.init_workspace", root, err)
	}
	return found, nil
}
