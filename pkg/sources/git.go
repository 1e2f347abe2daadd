package sources

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// registryFileExtensions are the recognized catalog file extensions. A Git
// path with a different extension is still valid but carries a warning.
var registryFileExtensions = []string{".json", ".yaml", ".yml"}

// branchNamePattern is the accepted charset for Git branch names.
var branchNamePattern = regexp.MustCompile(`^[A-Za-z0-9._/-]+$`)

// invalidPathChars are rejected in repository-relative file paths.
const invalidPathChars = `<>:"|?*`

// ValidateGit validates a Git source variant. Validation is format-only:
// the repository URL must be HTTPS on a known hosting provider with at least
// owner and repository path segments, the branch must match the accepted
// charset, and the file path must be repository-relative. No network fetch
// is performed; accessibility is assumed and verified asynchronously by the
// sync process.
func ValidateGit(source GitVariant) ValidationResult {
	result := validateRepositoryURL(source.Repository)
	if !result.Valid {
		return result
	}

	if source.Branch != "" && !branchNamePattern.MatchString(source.Branch) {
		// The repository itself was well-formed; only the branch token
		// is rejected.
		return ValidationResult{
			Valid:      false,
			Accessible: true,
			Error:      fmt.Sprintf("invalid branch name %q: only letters, digits, '.', '_', '/' and '-' are allowed", source.Branch),
		}
	}

	if source.Path != "" {
		pathResult := validateRegistryPath(source.Path)
		if !pathResult.Valid {
			pathResult.Accessible = true
			return pathResult
		}
		result.Warnings = append(result.Warnings, pathResult.Warnings...)
	}

	return result
}

// validateRepositoryURL checks the repository URL shape: absolute HTTPS,
// known hosting provider, owner and repository path segments present.
func validateRepositoryURL(repository string) ValidationResult {
	if strings.TrimSpace(repository) == "" {
		return invalid("repository URL cannot be empty")
	}

	parsed, err := url.Parse(repository)
	if err != nil {
		return invalid("repository URL is not a valid URL: %v", err)
	}

	if parsed.Scheme != "https" {
		return invalid("repository URL must use HTTPS, got %q", parsed.Scheme)
	}

	if _, ok := providerForHost(parsed.Hostname()); !ok {
		return invalid("repository host %q is not a known hosting provider", parsed.Hostname())
	}

	if _, _, ok := splitRepositoryPath(parsed); !ok {
		return invalid("repository URL must include owner and repository, e.g. https://github.com/acme/tools")
	}

	return valid()
}

// validateRegistryPath checks that a registry file path is repository-relative
// and well-formed. A recognized extension is advisory, not required.
func validateRegistryPath(path string) ValidationResult {
	if strings.TrimSpace(path) == "" {
		return invalid("registry file path cannot be blank")
	}

	if strings.HasPrefix(path, "/") || strings.HasPrefix(path, `\`) {
		return invalid("registry file path must be relative to the repository root, got %q", path)
	}

	if i := strings.IndexAny(path, invalidPathChars); i >= 0 {
		return invalid("registry file path contains invalid character %q", path[i])
	}

	result := valid()
	if !hasRegistryFileExtension(path) {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("path %q does not end in a recognized registry file extension (%s)",
				path, strings.Join(registryFileExtensions, ", ")))
	}
	return result
}

// hasRegistryFileExtension reports whether the path ends in a recognized
// catalog extension.
func hasRegistryFileExtension(path string) bool {
	lower := strings.ToLower(path)
	for _, ext := range registryFileExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
