package sources

import (
	"context"

	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/toolforge/registry-console/api/v1alpha1"
	"github.com/toolforge/registry-console/pkg/httpclient"
)

// Validator dispatches source validation to the variant-specific validators.
// Git repository results are cached per repository URL; ConfigMap and URL
// validation is cheap enough to run every time.
type Validator struct {
	configMap *ConfigMapValidator
	probe     httpclient.Client
	cache     *ValidationCache
}

// ValidatorOption configures a Validator.
type ValidatorOption func(*Validator)

// WithProbeClient sets the HTTP client used for best-effort content probes.
// Without one, probes are skipped and accessibility stays optimistic.
func WithProbeClient(c httpclient.Client) ValidatorOption {
	return func(v *Validator) {
		v.probe = c
	}
}

// WithCache sets the repository validation cache.
func WithCache(cache *ValidationCache) ValidatorOption {
	return func(v *Validator) {
		v.cache = cache
	}
}

// NewValidator creates a validator backed by the given cluster client.
func NewValidator(k8sClient client.Client, opts ...ValidatorOption) *Validator {
	v := &Validator{
		configMap: NewConfigMapValidator(k8sClient),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate validates a registry source in its wire representation. An
// ambiguous source (more than one variant populated) and an absent source
// are both reported as invalid results, never as faults, so batch validation
// can report partial results.
func (v *Validator) Validate(ctx context.Context, namespace string, src *v1alpha1.RegistrySource) ValidationResult {
	variant, err := ExtractVariant(src)
	if err != nil {
		return invalid("%v", err)
	}
	return v.ValidateVariant(ctx, namespace, variant)
}

// ValidateVariant runs the variant-specific validator for a single source
// variant. A nil variant means no source is configured.
func (v *Validator) ValidateVariant(ctx context.Context, namespace string, variant Variant) ValidationResult {
	switch src := variant.(type) {
	case ConfigMapVariant:
		return v.configMap.Validate(ctx, namespace, src)
	case GitVariant:
		return v.validateGit(ctx, src)
	case HTTPVariant:
		return ValidateURL(src)
	case nil:
		return invalid("no source configured")
	default:
		return invalid("unsupported source variant")
	}
}

// validateGit validates a Git variant, serving repeated validations of the
// same repository from the cache and annotating the result with a
// best-effort reachability probe.
func (v *Validator) validateGit(ctx context.Context, source GitVariant) ValidationResult {
	if v.cache != nil {
		if cached, ok := v.cache.Get(source.Repository); ok {
			log.FromContext(ctx).V(1).Info("Serving cached repository validation",
				"repository", source.Repository)
			// Branch and path rules are registry-specific; only the
			// repository-level outcome is cached.
			if !cached.Valid {
				return cached
			}
		} else {
			repoResult := validateRepositoryURL(source.Repository)
			v.cache.Put(source.Repository, repoResult)
		}
	}

	result := ValidateGit(source)
	if !result.Valid {
		return result
	}

	if v.probe != nil {
		path := source.Path
		if path == "" {
			path = ConfigMapSourceDataKey
		}
		// Probe failure downgrades accessibility, never validity.
		result.Accessible = ProbeContent(ctx, v.probe, source.Repository, source.Branch, path)
	}

	return result
}
