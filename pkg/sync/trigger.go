// Package sync implements the manual-sync triggering protocol. A manual sync
// is requested by stamping a timestamped annotation on the ToolRegistry
// resource; the reconciliation loop that performs the sync is external to
// this package and records the trigger it processed in the status.
package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/toolforge/registry-console/api/v1alpha1"
)

// Trigger issues manual-sync requests.
type Trigger struct {
	client client.Client
	now    func() time.Time
}

// NewTrigger creates a trigger backed by the given cluster client. A nil
// clock defaults to time.Now.
func NewTrigger(k8sClient client.Client, clock func() time.Time) *Trigger {
	if clock == nil {
		clock = time.Now
	}
	return &Trigger{client: k8sClient, now: clock}
}

// TriggerSync stamps the sync-trigger annotation on the named registry with
// the current timestamp. Stamping twice in quick succession is safe; the
// annotation just carries the newer timestamp. Returns false when the
// registry does not exist. The call never waits for the sync itself.
func (t *Trigger) TriggerSync(ctx context.Context, namespace, name string) (bool, error) {
	registry := &v1alpha1.ToolRegistry{}
	key := types.NamespacedName{Namespace: namespace, Name: name}
	if err := t.client.Get(ctx, key, registry); err != nil {
		if apierrors.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get registry %s/%s: %w", namespace, name, err)
	}

	stamp := t.now().UTC().Format(time.RFC3339)
	patch, err := json.Marshal(map[string]any{
		"metadata": map[string]any{
			"annotations": map[string]string{
				v1alpha1.AnnotationSyncTrigger: stamp,
			},
		},
	})
	if err != nil {
		return false, fmt.Errorf("failed to marshal sync-trigger patch: %w", err)
	}

	if err := t.client.Patch(ctx, registry, client.RawPatch(types.MergePatchType, patch)); err != nil {
		if apierrors.IsNotFound(err) {
			// Deleted between lookup and patch
			return false, nil
		}
		return false, fmt.Errorf("failed to annotate registry %s/%s: %w", namespace, name, err)
	}

	log.FromContext(ctx).Info("Manual sync requested",
		"registry", name, "namespace", namespace, "trigger", stamp)
	return true, nil
}
