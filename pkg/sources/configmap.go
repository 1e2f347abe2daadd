package sources

import (
	"context"
	"fmt"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

const (
	// ConfigMapSourceDataKey is the default key used for registry data in
	// ConfigMap sources
	ConfigMapSourceDataKey = "registry.json"
)

// ConfigMapValidator validates ConfigMap source variants against the cluster
// store: the named ConfigMap must exist in the target namespace and contain
// the requested entry key.
type ConfigMapValidator struct {
	client client.Client
}

// NewConfigMapValidator creates a validator backed by the given cluster client.
func NewConfigMapValidator(k8sClient client.Client) *ConfigMapValidator {
	return &ConfigMapValidator{client: k8sClient}
}

// Validate checks that the referenced ConfigMap entry exists. A missing
// ConfigMap or key is invalid; a permission failure is reported distinctly
// so callers can tell AccessDenied from NotFound.
func (v *ConfigMapValidator) Validate(ctx context.Context, namespace string, source ConfigMapVariant) ValidationResult {
	if source.Name == "" {
		return invalid("configmap name cannot be empty")
	}

	key := source.Key
	if key == "" {
		key = ConfigMapSourceDataKey
	}

	if v.client == nil {
		return invalid("cluster access is not configured")
	}

	configMap := &corev1.ConfigMap{}
	configMapKey := types.NamespacedName{Name: source.Name, Namespace: namespace}
	if err := v.client.Get(ctx, configMapKey, configMap); err != nil {
		switch {
		case apierrors.IsNotFound(err):
			return invalid("configmap %s/%s not found", namespace, source.Name)
		case apierrors.IsForbidden(err):
			return invalid("permission denied reading configmap %s/%s", namespace, source.Name)
		default:
			return invalid("failed to get configmap %s/%s: %v", namespace, source.Name, err)
		}
	}

	if _, exists := configMap.Data[key]; !exists {
		result := invalid("key %q not found in configmap %s/%s", key, namespace, source.Name)
		// The ConfigMap itself was reachable
		result.Accessible = true
		return result
	}

	return valid()
}

// Location returns the display location of a ConfigMap variant.
func (source ConfigMapVariant) Location() string {
	if source.Key == "" {
		return source.Name
	}
	return fmt.Sprintf("%s:%s", source.Name, source.Key)
}
