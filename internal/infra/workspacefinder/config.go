package workspacefinder

import (
	"os"
	"path/filepath"

	"github.com/team9044/launchband/internal/domain"
	"gopkg.in/yaml.v3"
)

// ConfigFile is the workspace marker written by init.
const ConfigFile = "launchband.yaml"

// ConfigFiles lists the accepted marker names, preferred first.
var ConfigFiles = []string{ConfigFile, "launchband.yml"}

// LoadConfig loads launchband.yaml (or launchband.yml) from the workspace root
// and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path, ok := markerIn(root, ConfigFiles)
	if !ok {
		path = filepath.Join(root, ConfigFile)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if y.Launchband.Defaults.Profile != "" {
		cfg.Defaults.Profile = y.Launchband.Defaults.Profile
	}
	cfg.Defaults.Angle = y.Launchband.Defaults.Angle
	cfg.Defaults.VLimit = y.Launchband.Defaults.VLimit
	if y.Launchband.Paths.ProfilesDir != "" {
		cfg.Paths.ProfilesDir = y.Launchband.Paths.ProfilesDir
	}
	if y.Launchband.Paths.PlotsDir != "" {
		cfg.Paths.PlotsDir = y.Launchband.Paths.PlotsDir
	}

	return cfg, nil
}

type yamlConfig struct {
	Launchband struct {
		Defaults struct {
			Profile string   `yaml:"profile"`
			Angle   *float64 `yaml:"angle"`
			VLimit  *float64 `yaml:"vlimit"`
		} `yaml:"defaults"`

		Paths struct {
			ProfilesDir string `yaml:"profiles_dir"`
			PlotsDir    string `yaml:"plots_dir"`
		} `yaml:"paths"`
	} `yaml:"launchband"`
}
