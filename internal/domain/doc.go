// Package domain contains the core domain model for launchband.
//
// The domain is rendering- and persistence-agnostic: it does not depend on YAML parsing,
// plotting, or the filesystem. Infra/adapters map into/from these types.
//
// All lengths are in inches, speeds in inches per second and times in seconds. Angles are
// stored in degrees and converted to radians only where trigonometry happens.
package domain
