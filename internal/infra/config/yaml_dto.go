package config

// YAMLProfile mirrors a profile file. Pointer fields are optional and fall back to the
// built-in speaker geometry.
type YAMLProfile struct {
	Name         string   `yaml:"name"`
	Title        string   `yaml:"title"`
	Gravity      *float64 `yaml:"gravity"`
	LaunchHeight *float64 `yaml:"launch_height"`
	WallHeight   *float64 `yaml:"wall_height"`

	Opening YAMLOpening `yaml:"opening"`
	Domain  YAMLDomain  `yaml:"domain"`
	Solver  YAMLSolver  `yaml:"solver"`

	SamplesPerCurve *int `yaml:"samples_per_curve"`
}

type YAMLOpening struct {
	NearEdgeHeight *float64 `yaml:"near_edge_height"`
	FarEdgeHeight  *float64 `yaml:"far_edge_height"`
	EdgeSeparation *float64 `yaml:"edge_separation"`
}

type YAMLDomain struct {
	Lower *int `yaml:"lower"`
	Upper *int `yaml:"upper"`
}

type YAMLSolver struct {
	SpeedTolerance *float64 `yaml:"speed_tolerance"`
}
