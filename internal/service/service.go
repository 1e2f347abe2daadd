// Package service implements the admin control-plane operations over
// ToolRegistry and ToolServerInstance resources. It composes the source
// resolver/validator, the state mapper, the sync trigger, and the orphan
// reconciler behind a single interface the HTTP facade consumes.
package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/toolforge/registry-console/api/v1alpha1"
	"github.com/toolforge/registry-console/internal/catalog"
	"github.com/toolforge/registry-console/pkg/httpclient"
	"github.com/toolforge/registry-console/pkg/instances"
	"github.com/toolforge/registry-console/pkg/registrystate"
	"github.com/toolforge/registry-console/pkg/sources"
	registrysync "github.com/toolforge/registry-console/pkg/sync"
)

// countConcurrency bounds parallel server-count fetches during list.
const countConcurrency = 8

// RegistryService is the admin control-plane surface.
type RegistryService interface {
	ListRegistries(ctx context.Context, namespace string) ([]Registry, error)
	GetRegistry(ctx context.Context, namespace, name string) (*Registry, error)
	CreateRegistry(ctx context.Context, req *CreateRegistryRequest) (*Registry, error)
	DeleteRegistry(ctx context.Context, namespace, name string) error
	ValidateSource(ctx context.Context, req *ValidateSourceRequest) sources.ValidationResult
	ValidateCatalog(ctx context.Context, data []byte) error
	TriggerSync(ctx context.Context, namespace, name string) (*SyncResult, error)
	ListOrphans(ctx context.Context, namespace string) ([]Instance, error)
	ConnectInstance(ctx context.Context, namespace, instanceName string, req *ConnectInstanceRequest) (*Instance, error)
}

// Options carries the collaborators a service needs.
type Options struct {
	Client           client.Client
	Validator        *sources.Validator
	Counter          *registrystate.Counter
	Trigger          *registrysync.Trigger
	Orphans          *instances.Reconciler
	CatalogValidator *catalog.Validator
	Probe            httpclient.Client
	Metrics          *Metrics
}

type registryService struct {
	client    client.Client
	validator *sources.Validator
	counter   *registrystate.Counter
	trigger   *registrysync.Trigger
	orphans   *instances.Reconciler
	catalog   *catalog.Validator
	probe     httpclient.Client
	metrics   *Metrics
}

// New creates a RegistryService from its collaborators.
func New(opts Options) RegistryService {
	return &registryService{
		client:    opts.Client,
		validator: opts.Validator,
		counter:   opts.Counter,
		trigger:   opts.Trigger,
		orphans:   opts.Orphans,
		catalog:   opts.CatalogValidator,
		probe:     opts.Probe,
		metrics:   opts.Metrics,
	}
}

// ListRegistries returns the display view of every registry in a namespace.
// Server counts are fetched in parallel; each count is best-effort.
func (s *registryService) ListRegistries(ctx context.Context, namespace string) ([]Registry, error) {
	registryList := &v1alpha1.ToolRegistryList{}
	if err := s.client.List(ctx, registryList, client.InNamespace(namespace)); err != nil {
		return nil, classifyStoreError(err, "failed to list registries in %s", namespace)
	}

	results := make([]Registry, len(registryList.Items))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(countConcurrency)
	for i := range registryList.Items {
		group.Go(func() error {
			results[i] = s.toRegistry(groupCtx, &registryList.Items[i])
			return nil
		})
	}
	// Mapping never returns an error; counts degrade to zero internally.
	_ = group.Wait()

	return results, nil
}

// GetRegistry returns the display view of a single registry.
func (s *registryService) GetRegistry(ctx context.Context, namespace, name string) (*Registry, error) {
	registry, err := s.getToolRegistry(ctx, namespace, name)
	if err != nil {
		return nil, err
	}
	view := s.toRegistry(ctx, registry)
	return &view, nil
}

// CreateRegistry validates and creates a registry. Structural validation
// runs first and short-circuits; source-specific validation only runs once
// the request shape is sound.
func (s *registryService) CreateRegistry(ctx context.Context, req *CreateRegistryRequest) (*Registry, error) {
	if err := validateCreateShape(req); err != nil {
		return nil, err
	}

	var result sources.ValidationResult
	if req.Source == nil {
		// Legacy registries carry a bare URL instead of a structured source.
		result = sources.ValidateURL(sources.HTTPVariant{URL: req.URL})
	} else {
		result = s.validator.Validate(ctx, req.Namespace, req.Source)
	}
	resolved := describeSource(req)
	s.metrics.observeValidation(resolved.Type, result.Valid)
	if !result.Valid {
		return nil, NewError(CodeMalformedInput, "source validation failed: %s", result.Error)
	}

	registry := &v1alpha1.ToolRegistry{
		ObjectMeta: metav1.ObjectMeta{
			Name:      req.Name,
			Namespace: req.Namespace,
		},
		Spec: v1alpha1.ToolRegistrySpec{
			DisplayName: req.DisplayName,
			URL:         req.URL,
			Source:      req.Source,
			SyncPolicy:  req.SyncPolicy,
			Auth:        req.Auth,
		},
	}

	// Logo discovery is auxiliary; a silent miss is fine.
	if logoURL := s.discoverLogo(ctx, req.Source); logoURL != "" {
		registry.Annotations = map[string]string{
			v1alpha1.AnnotationLogoURL: logoURL,
		}
	}

	if err := s.client.Create(ctx, registry); err != nil {
		if apierrors.IsAlreadyExists(err) {
			return nil, WrapError(CodeConflict, err, "registry %s/%s already exists", req.Namespace, req.Name)
		}
		return nil, classifyStoreError(err, "failed to create registry %s/%s", req.Namespace, req.Name)
	}

	view := s.toRegistry(ctx, registry)
	return &view, nil
}

// DeleteRegistry removes a registry by name.
func (s *registryService) DeleteRegistry(ctx context.Context, namespace, name string) error {
	registry, err := s.getToolRegistry(ctx, namespace, name)
	if err != nil {
		return err
	}
	if err := s.client.Delete(ctx, registry); err != nil && !apierrors.IsNotFound(err) {
		return classifyStoreError(err, "failed to delete registry %s/%s", namespace, name)
	}
	return nil
}

// ValidateSource runs format-only validation of a single source. Failures
// are structured results, never faults.
func (s *registryService) ValidateSource(ctx context.Context, req *ValidateSourceRequest) sources.ValidationResult {
	result := s.validator.Validate(ctx, req.Namespace, req.Source)
	resolved, _ := sources.Resolve(&v1alpha1.ToolRegistrySpec{Source: req.Source})
	s.metrics.observeValidation(resolved.Type, result.Valid)
	return result
}

// ValidateCatalog checks a catalog document against the registry schema.
func (s *registryService) ValidateCatalog(_ context.Context, data []byte) error {
	if s.catalog == nil {
		return NewError(CodeInternal, "catalog validation is not configured")
	}
	if _, err := s.catalog.Validate(data); err != nil {
		return WrapError(CodeMalformedInput, err, "%v", err)
	}
	return nil
}

// TriggerSync requests a manual sync. Triggered is false only when the
// registry does not exist; the call never waits for the sync.
func (s *registryService) TriggerSync(ctx context.Context, namespace, name string) (*SyncResult, error) {
	triggered, err := s.trigger.TriggerSync(ctx, namespace, name)
	if err != nil {
		return nil, classifyStoreError(err, "failed to trigger sync for %s/%s", namespace, name)
	}
	if !triggered {
		return &SyncResult{
			Triggered: false,
			Message:   fmt.Sprintf("registry %s/%s not found", namespace, name),
		}, nil
	}
	s.metrics.observeSyncTrigger()
	return &SyncResult{Triggered: true, Message: "sync requested"}, nil
}

// ListOrphans returns the instances missing ownership markers.
func (s *registryService) ListOrphans(ctx context.Context, namespace string) ([]Instance, error) {
	orphaned, err := s.orphans.ListOrphans(ctx, namespace)
	if err != nil {
		return nil, classifyStoreError(err, "failed to scan for orphans in %s", namespace)
	}
	views := make([]Instance, 0, len(orphaned))
	for i := range orphaned {
		views = append(views, toInstance(&orphaned[i]))
	}
	return views, nil
}

// ConnectInstance attaches an orphaned instance to a registry.
func (s *registryService) ConnectInstance(
	ctx context.Context,
	namespace, instanceName string,
	req *ConnectInstanceRequest,
) (*Instance, error) {
	if req == nil || req.RegistryName == "" || req.RegistryNamespace == "" || req.ServerName == "" {
		return nil, NewError(CodeMalformedInput,
			"registryName, registryNamespace, and serverName are required")
	}

	connected, err := s.orphans.Connect(ctx, namespace, instanceName, instances.OwnerRef{
		RegistryName:      req.RegistryName,
		RegistryNamespace: req.RegistryNamespace,
		ServerName:        req.ServerName,
	})
	if err != nil {
		if isInstanceNotFound(err) {
			return nil, WrapError(CodeNotFound, err, "instance %s/%s not found", namespace, instanceName)
		}
		return nil, classifyStoreError(err, "failed to connect instance %s/%s", namespace, instanceName)
	}

	s.metrics.observeConnect()
	view := toInstance(connected)
	return &view, nil
}

// getToolRegistry fetches a registry, classifying absence as NotFound.
func (s *registryService) getToolRegistry(ctx context.Context, namespace, name string) (*v1alpha1.ToolRegistry, error) {
	registry := &v1alpha1.ToolRegistry{}
	key := types.NamespacedName{Namespace: namespace, Name: name}
	if err := s.client.Get(ctx, key, registry); err != nil {
		if apierrors.IsNotFound(err) {
			return nil, WrapError(CodeNotFound, err, "registry %s/%s not found", namespace, name)
		}
		return nil, classifyStoreError(err, "failed to get registry %s/%s", namespace, name)
	}
	return registry, nil
}

// toRegistry assembles the display view of a registry. Phase mapping is pure
// and total; the server count is best-effort and recomputed on every read.
func (s *registryService) toRegistry(ctx context.Context, registry *v1alpha1.ToolRegistry) Registry {
	resolved, err := sources.Resolve(&registry.Spec)
	if err != nil {
		// A stored ambiguous source must not break reads; show it unresolved.
		log.FromContext(ctx).V(1).Info("Registry source did not resolve",
			"registry", registry.Name, "error", err.Error())
		resolved = sources.ResolvedSource{SyncInterval: sources.SyncIntervalManual}
	}

	view := Registry{
		Name:        registry.Name,
		Namespace:   registry.Namespace,
		DisplayName: registry.Spec.DisplayName,
		Status:      registrystate.ToDisplayStatus(registry.Status.Phase),
		ServerCount: s.counter.Count(ctx, registry),
		Source:      resolved,
		AuthType:    v1alpha1.AuthTypeNone,
		LogoURL:     registry.Annotations[v1alpha1.AnnotationLogoURL],
	}
	if registry.Spec.Auth != nil {
		view.AuthType = registry.Spec.Auth.Type
	}
	if registry.Status.LastSyncAt != nil {
		t := registry.Status.LastSyncAt.Time
		view.LastSyncAt = &t
	}
	return view
}

// discoverLogo probes Git sources for a repository logo.
func (s *registryService) discoverLogo(ctx context.Context, src *v1alpha1.RegistrySource) string {
	variant, err := sources.ExtractVariant(src)
	if err != nil {
		return ""
	}
	git, ok := variant.(sources.GitVariant)
	if !ok {
		return ""
	}
	return sources.DiscoverLogo(ctx, s.probe, git.Repository, git.Branch)
}

// validateCreateShape performs the structural checks that gate
// source-specific validation.
func validateCreateShape(req *CreateRegistryRequest) error {
	if req == nil {
		return NewError(CodeMalformedInput, "request body is required")
	}
	if req.Name == "" {
		return NewError(CodeMalformedInput, "name is required")
	}
	if req.Namespace == "" {
		return NewError(CodeMalformedInput, "namespace is required")
	}
	if req.Source == nil && req.URL == "" {
		return NewError(CodeMalformedInput, "a source or url is required")
	}
	if req.SyncPolicy != nil && req.SyncPolicy.Interval != "" {
		if _, err := time.ParseDuration(req.SyncPolicy.Interval); err != nil {
			return WrapError(CodeMalformedInput, err, "invalid sync interval %q", req.SyncPolicy.Interval)
		}
	}
	if req.Auth != nil {
		switch req.Auth.Type {
		case v1alpha1.AuthTypeNone, v1alpha1.AuthTypeBasic, v1alpha1.AuthTypeBearer, v1alpha1.AuthTypeOAuth:
		default:
			return NewError(CodeMalformedInput, "auth type must be one of none, basic, bearer, oauth")
		}
	}
	return nil
}

// describeSource resolves the create request's source for metrics labels.
func describeSource(req *CreateRegistryRequest) sources.ResolvedSource {
	resolved, err := sources.Resolve(&v1alpha1.ToolRegistrySpec{URL: req.URL, Source: req.Source})
	if err != nil {
		return sources.ResolvedSource{}
	}
	return resolved
}

// toInstance assembles the display view of an instance. Orphan status is a
// derived predicate, not stored.
func toInstance(instance *v1alpha1.ToolServerInstance) Instance {
	labels := instance.GetLabels()
	return Instance{
		Name:              instance.Name,
		Namespace:         instance.Namespace,
		RegistryName:      labels[v1alpha1.LabelRegistryName],
		RegistryNamespace: labels[v1alpha1.LabelRegistryNamespace],
		ServerName:        labels[v1alpha1.LabelServerName],
		Status:            string(instance.Status.Phase),
		URL:               instance.Status.URL,
		Image:             instance.Spec.Image,
		Orphaned:          instances.IsOrphaned(instance),
	}
}

// isInstanceNotFound reports the scan/connect race outcome.
func isInstanceNotFound(err error) bool {
	return err != nil && instances.IsNotFound(err)
}
