package gen

import "sort"

var (
	// FeatureTests emits Jest spec files for the service and the controller.
	FeatureTests = Feature{
		Name:        "tests",
		Stage:       Beta,
		Default:     false,
		Description: "Tests generates Jest specs for the service and controller of the module",
	}

	// FeaturePostEdgeProperties wraps single relationships that carry edge
	// properties in the POST body as well. By default only PUT does.
	FeaturePostEdgeProperties = Feature{
		Name:        "post-edge-properties",
		Stage:       Experimental,
		Default:     false,
		Description: "PostEdgeProperties accepts relationship edge properties on create, not only on update",
	}

	// AllFeatures holds a list of all feature-flags.
	AllFeatures = []Feature{
		FeatureTests,
		FeaturePostEdgeProperties,
	}
)

// FeatureStage describes the stage of the codegen feature.
type FeatureStage int

const (
	_ FeatureStage = iota

	// Experimental features are in development and may change without notice.
	Experimental

	// Alpha features are complete, but their output may still change.
	Alpha

	// Beta features are documented and their output is not expected to change.
	Beta

	// Stable features have been in use for a while.
	Stable
)

// String implements fmt.Stringer.
func (s FeatureStage) String() string {
	switch s {
	case Experimental:
		return "experimental"
	case Alpha:
		return "alpha"
	case Beta:
		return "beta"
	case Stable:
		return "stable"
	default:
		return "unknown"
	}
}

// A Feature of the module generator.
type Feature struct {
	// Name of the feature.
	Name string

	// Stage of the feature.
	Stage FeatureStage

	// Default values indicates if this feature is enabled by default.
	Default bool

	// A Description of this feature.
	Description string
}

// FeatureByName looks a feature up by its name.
func FeatureByName(name string) (Feature, bool) {
	for _, f := range AllFeatures {
		if f.Name == name {
			return f, true
		}
	}
	return Feature{}, false
}

// FeatureNames returns the sorted names of all features.
func FeatureNames() []string {
	names := make([]string, 0, len(AllFeatures))
	for _, f := range AllFeatures {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	return names
}
