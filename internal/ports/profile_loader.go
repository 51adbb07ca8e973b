package ports

import "github.com/team9044/launchband/internal/domain"

// ProfileLoader loads target geometry profiles from a source (e.g., filesystem).
type ProfileLoader interface {
	LoadProfile(nameOrPath string) (domain.Profile, error)
}
