package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// Ownership marker labels relating a deployed instance back to the registry
// and catalog entry it was deployed from. An instance missing any of the
// three is considered orphaned.
const (
	// LabelRegistryName is the label key for the owning registry's name
	LabelRegistryName = "registries.toolforge.dev/registry-name"

	// LabelRegistryNamespace is the label key for the owning registry's namespace
	LabelRegistryNamespace = "registries.toolforge.dev/registry-namespace"

	// LabelServerName is the label key for the catalog entry the instance
	// was deployed from
	LabelServerName = "registries.toolforge.dev/server-name"
)

// InstancePhase is the lifecycle phase of a deployed server instance.
type InstancePhase string

const (
	// InstancePhasePending means the instance is being created
	InstancePhasePending InstancePhase = "Pending"

	// InstancePhaseRunning means the instance is serving
	InstancePhaseRunning InstancePhase = "Running"

	// InstancePhaseFailed means the instance failed to start or crashed
	InstancePhaseFailed InstancePhase = "Failed"

	// InstancePhaseTerminating means the instance is being deleted
	InstancePhaseTerminating InstancePhase = "Terminating"
)

// ToolServerInstanceSpec defines the desired state of ToolServerInstance
type ToolServerInstanceSpec struct {
	// Image is the container image the instance runs
	// +kubebuilder:validation:Required
	Image string `json:"image"`

	// Transport is the protocol the instance speaks (e.g. streamable-http)
	// +optional
	Transport string `json:"transport,omitempty"`
}

// ToolServerInstanceStatus defines the observed state of ToolServerInstance
type ToolServerInstanceStatus struct {
	// Phase is the lifecycle phase of the instance
	// +optional
	Phase InstancePhase `json:"phase,omitempty"`

	// URL is the address where the instance can be reached
	// +optional
	URL string `json:"url,omitempty"`

	// Message provides additional detail about the current phase
	// +optional
	Message string `json:"message,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Phase",type=string,JSONPath=`.status.phase`
// +kubebuilder:printcolumn:name="Image",type=string,JSONPath=`.spec.image`

// ToolServerInstance is a running (or transitioning) unit deployed from a
// registry's catalog.
type ToolServerInstance struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   ToolServerInstanceSpec   `json:"spec,omitempty"`
	Status ToolServerInstanceStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// ToolServerInstanceList contains a list of ToolServerInstance
type ToolServerInstanceList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []ToolServerInstance `json:"items"`
}

func init() {
	SchemeBuilder.Register(&ToolServerInstance{}, &ToolServerInstanceList{})
}
