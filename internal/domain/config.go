package domain

// Config represents the launchband workspace configuration loaded from launchband.yaml.
type Config struct {
	Defaults DefaultsConfig
	Paths    PathsConfig
}

// DefaultsConfig holds values used when the matching flag is omitted.
// Angle and VLimit are nil when the workspace does not set them.
type DefaultsConfig struct {
	Profile string
	Angle   *float64
	VLimit  *float64
}

type PathsConfig struct {
	ProfilesDir string
	PlotsDir    string
}

// WorkspaceSpec describes a workspace to scaffold.
type WorkspaceSpec struct {
	Root string
}

// DefaultConfig provides sane defaults if launchband.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			Profile: "speaker-2024",
		},
		Paths: PathsConfig{
			ProfilesDir: "profiles",
			PlotsDir:    "plots",
		},
	}
}
