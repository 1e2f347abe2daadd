// Package registrystate maps cluster-reported registry state into the small
// display model the admin API exposes: a four-value status enum and a
// best-effort server count.
package registrystate

import (
	"github.com/toolforge/registry-console/api/v1alpha1"
)

// DisplayStatus is the status shown for a registry.
type DisplayStatus string

const (
	// StatusInactive means the registry is not serving yet
	StatusInactive DisplayStatus = "inactive"

	// StatusSyncing means a catalog sync is in progress
	StatusSyncing DisplayStatus = "syncing"

	// StatusActive means the registry is synced and serving
	StatusActive DisplayStatus = "active"

	// StatusError means the last sync failed
	StatusError DisplayStatus = "error"
)

// ToDisplayStatus maps a cluster-reported phase to a display status. The
// mapping is total: unknown or absent phases default to inactive rather
// than failing.
func ToDisplayStatus(phase v1alpha1.RegistryPhase) DisplayStatus {
	switch phase {
	case v1alpha1.RegistryPhaseReady:
		return StatusActive
	case v1alpha1.RegistryPhaseSyncing:
		return StatusSyncing
	case v1alpha1.RegistryPhaseError:
		return StatusError
	default:
		// Pending and anything unrecognized
		return StatusInactive
	}
}
