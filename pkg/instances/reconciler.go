// Package instances relates deployed tool-server instances back to the
// registries that own them. An instance is orphaned when any of its three
// ownership markers (registry name, registry namespace, catalog entry name)
// is absent; connecting an instance writes all three in a single merge patch.
package instances

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/toolforge/registry-console/api/v1alpha1"
)

// ErrInstanceNotFound is returned by Connect when the instance disappeared
// between scan and connect. The race is expected and reported to the caller
// rather than retried.
var ErrInstanceNotFound = fmt.Errorf("instance not found")

// IsNotFound reports whether an error stems from the instance disappearing.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrInstanceNotFound)
}

// OwnerRef is the ownership marker triple recorded on a connected instance.
type OwnerRef struct {
	RegistryName      string
	RegistryNamespace string
	ServerName        string
}

// Reconciler scans for orphaned instances and attaches them to registries.
type Reconciler struct {
	client client.Client
}

// NewReconciler creates a reconciler backed by the given cluster client.
func NewReconciler(k8sClient client.Client) *Reconciler {
	return &Reconciler{client: k8sClient}
}

// IsOrphaned reports whether an instance is missing any ownership marker.
func IsOrphaned(instance *v1alpha1.ToolServerInstance) bool {
	labels := instance.GetLabels()
	if labels == nil {
		return true
	}
	for _, key := range []string{
		v1alpha1.LabelRegistryName,
		v1alpha1.LabelRegistryNamespace,
		v1alpha1.LabelServerName,
	} {
		if labels[key] == "" {
			return true
		}
	}
	return false
}

// ListOrphans returns the instances in a namespace missing at least one
// ownership marker. Order is whatever the store reports.
func (r *Reconciler) ListOrphans(ctx context.Context, namespace string) ([]v1alpha1.ToolServerInstance, error) {
	instanceList := &v1alpha1.ToolServerInstanceList{}
	if err := r.client.List(ctx, instanceList, client.InNamespace(namespace)); err != nil {
		return nil, fmt.Errorf("failed to list instances in %s: %w", namespace, err)
	}

	orphans := make([]v1alpha1.ToolServerInstance, 0)
	for i := range instanceList.Items {
		if IsOrphaned(&instanceList.Items[i]) {
			orphans = append(orphans, instanceList.Items[i])
		}
	}

	log.FromContext(ctx).V(1).Info("Scanned for orphaned instances",
		"namespace", namespace, "total", len(instanceList.Items), "orphans", len(orphans))
	return orphans, nil
}

// Connect writes all three ownership markers onto an instance in a single
// merge patch. Returns ErrInstanceNotFound when the instance no longer
// exists at write time.
func (r *Reconciler) Connect(ctx context.Context, namespace, instanceName string, ref OwnerRef) (*v1alpha1.ToolServerInstance, error) {
	if ref.RegistryName == "" || ref.RegistryNamespace == "" || ref.ServerName == "" {
		return nil, fmt.Errorf("registry name, registry namespace, and server name are all required")
	}

	instance := &v1alpha1.ToolServerInstance{}
	key := types.NamespacedName{Namespace: namespace, Name: instanceName}
	if err := r.client.Get(ctx, key, instance); err != nil {
		if apierrors.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s/%s", ErrInstanceNotFound, namespace, instanceName)
		}
		return nil, fmt.Errorf("failed to get instance %s/%s: %w", namespace, instanceName, err)
	}

	patch, err := json.Marshal(map[string]any{
		"metadata": map[string]any{
			"labels": map[string]string{
				v1alpha1.LabelRegistryName:      ref.RegistryName,
				v1alpha1.LabelRegistryNamespace: ref.RegistryNamespace,
				v1alpha1.LabelServerName:        ref.ServerName,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ownership patch: %w", err)
	}

	if err := r.client.Patch(ctx, instance, client.RawPatch(types.MergePatchType, patch)); err != nil {
		if apierrors.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s/%s", ErrInstanceNotFound, namespace, instanceName)
		}
		return nil, fmt.Errorf("failed to patch instance %s/%s: %w", namespace, instanceName, err)
	}

	log.FromContext(ctx).Info("Connected instance to registry",
		"instance", instanceName, "namespace", namespace,
		"registry", ref.RegistryName, "registryNamespace", ref.RegistryNamespace,
		"server", ref.ServerName)
	return instance, nil
}
