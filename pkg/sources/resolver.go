package sources

import (
	"fmt"
	"strings"

	"github.com/toolforge/registry-console/api/v1alpha1"
)

// Source type identifiers used for display and validation dispatch.
const (
	// SourceTypeNone means no source is configured
	SourceTypeNone = ""
	// SourceTypeConfigMap is a ConfigMap-backed catalog
	SourceTypeConfigMap = "configmap"
	// SourceTypeGit is a Git-repository-backed catalog
	SourceTypeGit = "git"
	// SourceTypeHTTP is a direct plain-HTTP catalog URL
	SourceTypeHTTP = "http"
	// SourceTypeHTTPS is a direct HTTPS catalog URL
	SourceTypeHTTPS = "https"
)

// SyncIntervalManual is the displayed interval for registries without a sync policy.
const SyncIntervalManual = "manual"

// DefaultGitBranch is assumed when a Git source does not name a branch.
const DefaultGitBranch = "main"

// ResolvedSource is the canonical display form of a registry source.
type ResolvedSource struct {
	// Type is one of the SourceType constants, or SourceTypeNone when the
	// registry has no source configured
	Type string `json:"type"`

	// Location is the display location of the catalog
	Location string `json:"location"`

	// SyncInterval is the configured interval or "manual"
	SyncInterval string `json:"syncInterval"`
}

// Resolve determines the canonical (type, location, syncInterval) triple for
// a registry spec. A structured source always wins over the legacy bare URL
// field. When neither is present the result has Type SourceTypeNone, which
// callers must treat as "no source configured" rather than an error.
// Resolution is idempotent and performs no I/O.
func Resolve(spec *v1alpha1.ToolRegistrySpec) (ResolvedSource, error) {
	resolved := ResolvedSource{
		Type:         SourceTypeNone,
		SyncInterval: SyncIntervalManual,
	}
	if spec == nil {
		return resolved, nil
	}
	if spec.SyncPolicy != nil && spec.SyncPolicy.Interval != "" {
		resolved.SyncInterval = spec.SyncPolicy.Interval
	}

	variant, err := ExtractVariant(spec.Source)
	if err != nil {
		return ResolvedSource{}, err
	}

	if variant == nil {
		// Legacy registries carry a bare URL instead of a structured source.
		return resolveLegacyURL(spec.URL, resolved), nil
	}

	switch v := variant.(type) {
	case ConfigMapVariant:
		resolved.Type = SourceTypeConfigMap
		resolved.Location = v.Name
		if v.Key != "" {
			resolved.Location = fmt.Sprintf("%s:%s", v.Name, v.Key)
		}
	case GitVariant:
		resolved.Type = SourceTypeGit
		branch := v.Branch
		if branch == "" {
			branch = DefaultGitBranch
		}
		resolved.Location = fmt.Sprintf("%s@%s", v.Repository, branch)
		if v.Path != "" {
			resolved.Location = fmt.Sprintf("%s/%s", resolved.Location, v.Path)
		}
	case HTTPVariant:
		resolved.Type = SourceTypeHTTPS
		if strings.HasPrefix(v.URL, "http://") {
			resolved.Type = SourceTypeHTTP
		}
		resolved.Location = v.URL
	}

	return resolved, nil
}

// resolveLegacyURL infers the source type from the legacy bare URL field.
func resolveLegacyURL(url string, resolved ResolvedSource) ResolvedSource {
	switch {
	case strings.HasPrefix(url, "https://"):
		resolved.Type = SourceTypeHTTPS
		resolved.Location = url
	case strings.HasPrefix(url, "http://"):
		resolved.Type = SourceTypeHTTP
		resolved.Location = url
	}
	return resolved
}
