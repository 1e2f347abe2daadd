package sources

import (
	"fmt"

	"github.com/toolforge/registry-console/api/v1alpha1"
)

// ValidationResult is the uniform contract every source validator returns.
// Valid and Accessible are independent: a well-formed source whose content
// could not be reached is valid but not accessible.
type ValidationResult struct {
	// Valid reports whether the source configuration is well-formed
	Valid bool `json:"valid"`

	// Accessible reports whether the source content appeared reachable.
	// Reachability is best-effort and optimistic; it is never verified by
	// a mandatory network call.
	Accessible bool `json:"accessible"`

	// Error is a human-readable reason when Valid is false
	Error string `json:"error,omitempty"`

	// Warnings are advisory findings that do not affect validity
	Warnings []string `json:"warnings,omitempty"`
}

// valid returns a passing result
func valid() ValidationResult {
	return ValidationResult{Valid: true, Accessible: true}
}

// invalid returns a failing result with the given reason
func invalid(format string, args ...any) ValidationResult {
	return ValidationResult{Valid: false, Accessible: false, Error: fmt.Sprintf(format, args...)}
}

// Variant is the explicit sum type over the three source kinds. Exactly one
// variant exists per well-formed RegistrySource; multiple populated fields
// are rejected at extraction time instead of being silently preferred.
type Variant interface {
	sourceVariant()
}

// ConfigMapVariant sources the catalog from a ConfigMap entry
type ConfigMapVariant struct {
	Name string
	Key  string
}

// GitVariant sources the catalog from a Git repository
type GitVariant struct {
	Repository string
	Branch     string
	Path       string
}

// HTTPVariant sources the catalog from a direct URL
type HTTPVariant struct {
	URL string
}

func (ConfigMapVariant) sourceVariant() {}
func (GitVariant) sourceVariant()       {}
func (HTTPVariant) sourceVariant()      {}

// ErrAmbiguousSource is returned when more than one source variant is populated.
var ErrAmbiguousSource = fmt.Errorf("exactly one of configmap, git, or http must be set")

// ExtractVariant converts the optional-sibling-fields wire representation
// into the explicit sum type. It returns (nil, nil) when src is nil or
// empty, and ErrAmbiguousSource when more than one variant is populated.
func ExtractVariant(src *v1alpha1.RegistrySource) (Variant, error) {
	if src == nil {
		return nil, nil
	}

	populated := 0
	var variant Variant

	if src.ConfigMap != nil {
		populated++
		variant = ConfigMapVariant{Name: src.ConfigMap.Name, Key: src.ConfigMap.Key}
	}
	if src.Git != nil {
		populated++
		variant = GitVariant{
			Repository: src.Git.Repository,
			Branch:     src.Git.Branch,
			Path:       src.Git.Path,
		}
	}
	if src.HTTP != nil {
		populated++
		variant = HTTPVariant{URL: src.HTTP.URL}
	}

	if populated == 0 {
		return nil, nil
	}
	if populated > 1 {
		return nil, ErrAmbiguousSource
	}
	return variant, nil
}
