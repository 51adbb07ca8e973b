package ports

// WorkspaceLocator finds a launchband workspace root starting from an arbitrary directory.
type WorkspaceLocator interface {
	FindRoot(startDir string) (string, error)
}
