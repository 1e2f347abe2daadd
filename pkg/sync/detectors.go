package sync

import (
	"github.com/toolforge/registry-console/api/v1alpha1"
)

// Manual sync detection reasons
const (
	ManualSyncReasonNoAnnotations    = "no-annotations"
	ManualSyncReasonNoTrigger        = "no-manual-trigger"
	ManualSyncReasonAlreadyProcessed = "manual-trigger-already-processed"
	ManualSyncReasonRequested        = "manual-sync-requested"
)

// ManualSyncRequested reports whether the registry carries a sync-trigger
// annotation that the reconciliation loop has not processed yet. The second
// return value names the reason for the decision.
func ManualSyncRequested(registry *v1alpha1.ToolRegistry) (bool, string) {
	annotations := registry.GetAnnotations()
	if annotations == nil {
		return false, ManualSyncReasonNoAnnotations
	}

	trigger, ok := annotations[v1alpha1.AnnotationSyncTrigger]
	if !ok || trigger == "" {
		return false, ManualSyncReasonNoTrigger
	}

	if trigger == registry.Status.LastManualSyncTrigger {
		return false, ManualSyncReasonAlreadyProcessed
	}

	return true, ManualSyncReasonRequested
}
