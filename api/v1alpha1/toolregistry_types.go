package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// Well-known annotations on ToolRegistry resources.
const (
	// AnnotationSyncTrigger requests a manual sync. The value is the
	// RFC3339 timestamp at which the sync was requested; re-stamping the
	// annotation is idempotent and simply refreshes the timestamp.
	AnnotationSyncTrigger = "registries.toolforge.dev/sync-trigger"

	// AnnotationLogoURL records a logo image discovered for the registry's
	// source repository. Purely cosmetic.
	AnnotationLogoURL = "registries.toolforge.dev/logo-url"
)

// RegistryPhase is the coarse phase reported by the reconciliation loop.
type RegistryPhase string

const (
	// RegistryPhasePending means the registry has been accepted but not yet synced
	RegistryPhasePending RegistryPhase = "Pending"

	// RegistryPhaseReady means the registry is synced and serving
	RegistryPhaseReady RegistryPhase = "Ready"

	// RegistryPhaseSyncing means a sync is currently in progress
	RegistryPhaseSyncing RegistryPhase = "Syncing"

	// RegistryPhaseError means the last sync failed
	RegistryPhaseError RegistryPhase = "Error"
)

// AuthType identifies how the registry source is authenticated.
// The credential material itself is opaque to this API.
type AuthType string

const (
	// AuthTypeNone means no authentication
	AuthTypeNone AuthType = "none"
	// AuthTypeBasic means HTTP basic authentication
	AuthTypeBasic AuthType = "basic"
	// AuthTypeBearer means bearer token authentication
	AuthTypeBearer AuthType = "bearer"
	// AuthTypeOAuth means OAuth-based authentication
	AuthTypeOAuth AuthType = "oauth"
)

// ConfigMapSource references registry data stored in a ConfigMap.
type ConfigMapSource struct {
	// Name is the name of the ConfigMap in the registry's namespace
	// +kubebuilder:validation:Required
	Name string `json:"name"`

	// Key is the entry within the ConfigMap holding the catalog document
	// +kubebuilder:default=registry.json
	// +optional
	Key string `json:"key,omitempty"`
}

// GitSource references registry data stored in a Git repository.
type GitSource struct {
	// Repository is the HTTPS URL of the repository on a known hosting provider
	// +kubebuilder:validation:Required
	Repository string `json:"repository"`

	// Branch is the branch to read from. Defaults to main when empty.
	// +optional
	Branch string `json:"branch,omitempty"`

	// Path is the repository-relative path of the catalog file
	// +kubebuilder:validation:Required
	Path string `json:"path"`
}

// HTTPSource references registry data served from a direct URL.
type HTTPSource struct {
	// URL is the absolute URL of the catalog document
	// +kubebuilder:validation:Required
	URL string `json:"url"`
}

// RegistrySource selects where the registry catalog comes from.
// Exactly one of the fields must be set.
type RegistrySource struct {
	// ConfigMap sources the catalog from a ConfigMap entry
	// +optional
	ConfigMap *ConfigMapSource `json:"configmap,omitempty"`

	// Git sources the catalog from a Git repository
	// +optional
	Git *GitSource `json:"git,omitempty"`

	// HTTP sources the catalog from a direct URL
	// +optional
	HTTP *HTTPSource `json:"http,omitempty"`
}

// SyncPolicy configures automatic catalog synchronization. Enforcement is
// owned by the reconciliation loop; this API only records the policy.
type SyncPolicy struct {
	// Interval between automatic syncs, as a Go duration string (e.g. "1h").
	// When empty, the registry only syncs on manual triggers.
	// +optional
	Interval string `json:"interval,omitempty"`
}

// AuthConfig configures source authentication.
type AuthConfig struct {
	// Type selects the authentication mechanism
	// +kubebuilder:validation:Enum=none;basic;bearer;oauth
	// +kubebuilder:default=none
	Type AuthType `json:"type"`

	// SecretRef names the Secret holding the credential material.
	// Its layout depends on Type and is opaque to this API.
	// +optional
	SecretRef string `json:"secretRef,omitempty"`
}

// APIStatus describes the registry's serving endpoint.
type APIStatus struct {
	// Endpoint is the base URL where the registry serves its catalog
	// +optional
	Endpoint string `json:"endpoint,omitempty"`
}

// ToolRegistrySpec defines the desired state of ToolRegistry
type ToolRegistrySpec struct {
	// DisplayName is a human-friendly name for the registry
	// +optional
	DisplayName string `json:"displayName,omitempty"`

	// URL is the legacy direct catalog location. Ignored when Source is set.
	// +optional
	URL string `json:"url,omitempty"`

	// Source selects where the catalog comes from
	// +optional
	Source *RegistrySource `json:"source,omitempty"`

	// SyncPolicy configures automatic synchronization
	// +optional
	SyncPolicy *SyncPolicy `json:"syncPolicy,omitempty"`

	// Auth configures source authentication
	// +optional
	Auth *AuthConfig `json:"auth,omitempty"`
}

// ToolRegistryStatus defines the observed state of ToolRegistry
type ToolRegistryStatus struct {
	// Phase is the coarse lifecycle phase reported by the reconciler
	// +optional
	Phase RegistryPhase `json:"phase,omitempty"`

	// Message provides additional detail about the current phase
	// +optional
	Message string `json:"message,omitempty"`

	// ServerCount is the number of servers found at the last sync
	// +optional
	ServerCount int `json:"serverCount,omitempty"`

	// LastSyncAt is the time of the last successful sync
	// +optional
	LastSyncAt *metav1.Time `json:"lastSyncAt,omitempty"`

	// LastManualSyncTrigger is the value of the sync-trigger annotation
	// that was most recently processed by the reconciler
	// +optional
	LastManualSyncTrigger string `json:"lastManualSyncTrigger,omitempty"`

	// API describes the registry's serving endpoint once available
	// +optional
	API *APIStatus `json:"api,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Phase",type=string,JSONPath=`.status.phase`
// +kubebuilder:printcolumn:name="Servers",type=integer,JSONPath=`.status.serverCount`
// +kubebuilder:printcolumn:name="Age",type=date,JSONPath=`.metadata.creationTimestamp`

// ToolRegistry is a catalog of deployable tool-server definitions.
type ToolRegistry struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   ToolRegistrySpec   `json:"spec,omitempty"`
	Status ToolRegistryStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// ToolRegistryList contains a list of ToolRegistry
type ToolRegistryList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []ToolRegistry `json:"items"`
}

func init() {
	SchemeBuilder.Register(&ToolRegistry{}, &ToolRegistryList{})
}
