package sources

import (
	"net/url"
	"strings"
)

// ValidateURL validates a direct URL source variant. Validity means the URL
// is syntactically well-formed and absolute; reachability is not required at
// this layer.
func ValidateURL(source HTTPVariant) ValidationResult {
	if strings.TrimSpace(source.URL) == "" {
		return invalid("url cannot be empty")
	}

	parsed, err := url.Parse(source.URL)
	if err != nil {
		return invalid("url is not valid: %v", err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return invalid("url must use http or https, got %q", parsed.Scheme)
	}

	if parsed.Host == "" {
		return invalid("url must be absolute")
	}

	return valid()
}
