package service

import (
	"time"

	"github.com/toolforge/registry-console/api/v1alpha1"
	"github.com/toolforge/registry-console/pkg/registrystate"
	"github.com/toolforge/registry-console/pkg/sources"
)

// Registry is the API-facing view of a ToolRegistry. Status and server count
// are derived on every read; nothing here is stored.
type Registry struct {
	Name        string                      `json:"name"`
	Namespace   string                      `json:"namespace"`
	DisplayName string                      `json:"displayName,omitempty"`
	Status      registrystate.DisplayStatus `json:"status"`
	ServerCount int                         `json:"serverCount"`
	LastSyncAt  *time.Time                  `json:"lastSyncAt,omitempty"`
	Source      sources.ResolvedSource      `json:"source"`
	AuthType    v1alpha1.AuthType           `json:"authType"`
	LogoURL     string                      `json:"logoUrl,omitempty"`
}

// CreateRegistryRequest is the already-shape-validated create request the
// service consumes. Generic shape validation happens in the request layer;
// the service only validates source semantics.
type CreateRegistryRequest struct {
	Name        string                   `json:"name"`
	Namespace   string                   `json:"namespace"`
	DisplayName string                   `json:"displayName,omitempty"`
	URL         string                   `json:"url,omitempty"`
	Source      *v1alpha1.RegistrySource `json:"source,omitempty"`
	SyncPolicy  *v1alpha1.SyncPolicy     `json:"syncPolicy,omitempty"`
	Auth        *v1alpha1.AuthConfig     `json:"auth,omitempty"`
}

// ValidateSourceRequest asks for format-only validation of a single source.
type ValidateSourceRequest struct {
	Namespace string                   `json:"namespace"`
	Source    *v1alpha1.RegistrySource `json:"source"`
}

// SyncResult reports the outcome of a manual sync trigger.
type SyncResult struct {
	Triggered bool   `json:"triggered"`
	Message   string `json:"message,omitempty"`
}

// Instance is the API-facing view of a deployed server instance.
type Instance struct {
	Name              string `json:"name"`
	Namespace         string `json:"namespace"`
	RegistryName      string `json:"registryName,omitempty"`
	RegistryNamespace string `json:"registryNamespace,omitempty"`
	ServerName        string `json:"serverName,omitempty"`
	Status            string `json:"status"`
	URL               string `json:"url,omitempty"`
	Image             string `json:"image"`
	Orphaned          bool   `json:"orphaned"`
}

// ConnectInstanceRequest attaches an orphaned instance to a registry.
type ConnectInstanceRequest struct {
	RegistryName      string `json:"registryName"`
	RegistryNamespace string `json:"registryNamespace"`
	ServerName        string `json:"serverName"`
}
