package v1

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toolforge/registry-console/internal/service"
	"github.com/toolforge/registry-console/pkg/sources"
)

// stubService is a canned-response RegistryService for handler tests.
type stubService struct {
	registries  []service.Registry
	registry    *service.Registry
	created     *service.Registry
	validation  sources.ValidationResult
	catalogErr  error
	syncResult  *service.SyncResult
	orphanViews []service.Instance
	instance    *service.Instance
	err         error
}

func (s *stubService) ListRegistries(context.Context, string) ([]service.Registry, error) {
	return s.registries, s.err
}

func (s *stubService) GetRegistry(context.Context, string, string) (*service.Registry, error) {
	return s.registry, s.err
}

func (s *stubService) CreateRegistry(context.Context, *service.CreateRegistryRequest) (*service.Registry, error) {
	return s.created, s.err
}

func (s *stubService) DeleteRegistry(context.Context, string, string) error {
	return s.err
}

func (s *stubService) ValidateSource(context.Context, *service.ValidateSourceRequest) sources.ValidationResult {
	return s.validation
}

func (s *stubService) ValidateCatalog(context.Context, []byte) error {
	return s.catalogErr
}

func (s *stubService) TriggerSync(context.Context, string, string) (*service.SyncResult, error) {
	return s.syncResult, s.err
}

func (s *stubService) ListOrphans(context.Context, string) ([]service.Instance, error) {
	return s.orphanViews, s.err
}

func (s *stubService) ConnectInstance(context.Context, string, string, *service.ConnectInstanceRequest) (*service.Instance, error) {
	return s.instance, s.err
}

func doRequest(t *testing.T, svc service.RegistryService, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	NewRoutes(svc).Router().ServeHTTP(rec, req)
	return rec
}

func TestListRegistries(t *testing.T) {
	t.Parallel()

	svc := &stubService{registries: []service.Registry{
		{Name: "alpha", Namespace: "tools"},
		{Name: "beta", Namespace: "tools"},
	}}
	rec := doRequest(t, svc, http.MethodGet, "/namespaces/tools/registries/", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Registries []service.Registry `json:"registries"`
		Total      int                `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Total)
	assert.Len(t, body.Registries, 2)
}

func TestGetRegistry(t *testing.T) {
	t.Parallel()

	svc := &stubService{registry: &service.Registry{Name: "alpha", Namespace: "tools"}}
	rec := doRequest(t, svc, http.MethodGet, "/namespaces/tools/registries/alpha/", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got service.Registry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "alpha", got.Name)
}

func TestCreateRegistry(t *testing.T) {
	t.Parallel()

	svc := &stubService{created: &service.Registry{Name: "alpha", Namespace: "tools"}}
	rec := doRequest(t, svc, http.MethodPost, "/namespaces/tools/registries/",
		`{"name": "alpha", "source": {"http": {"url": "https://registry.example.com"}}}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateRegistryInvalidBody(t *testing.T) {
	t.Parallel()

	rec := doRequest(t, &stubService{}, http.MethodPost, "/namespaces/tools/registries/", "{not json")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, string(service.CodeMalformedInput), body.Code)
}

func TestDeleteRegistry(t *testing.T) {
	t.Parallel()

	rec := doRequest(t, &stubService{}, http.MethodDelete, "/namespaces/tools/registries/alpha/", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestErrorCodeMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "malformed input",
			err:        service.NewError(service.CodeMalformedInput, "name is required"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "not found",
			err:        service.NewError(service.CodeNotFound, "registry tools/alpha not found"),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "access denied",
			err:        service.NewError(service.CodeAccessDenied, "permission denied"),
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "conflict",
			err:        service.NewError(service.CodeConflict, "registry tools/alpha already exists"),
			wantStatus: http.StatusConflict,
		},
		{
			name:       "internal",
			err:        service.NewError(service.CodeInternal, "store failed"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &stubService{err: tt.err}
			rec := doRequest(t, svc, http.MethodGet, "/namespaces/tools/registries/alpha/", "")
			assert.Equal(t, tt.wantStatus, rec.Code)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.err.Error(), body.Error)
		})
	}
}

func TestUnclassifiedErrorsAreMasked(t *testing.T) {
	t.Parallel()

	svc := &stubService{err: fmt.Errorf("connection to 10.0.0.5:6443 refused")}
	rec := doRequest(t, svc, http.MethodGet, "/namespaces/tools/registries/alpha/", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "internal error", body.Error)
	assert.NotContains(t, rec.Body.String(), "10.0.0.5")
}

func TestValidateSource(t *testing.T) {
	t.Parallel()

	svc := &stubService{validation: sources.ValidationResult{Valid: true, Accessible: true}}
	rec := doRequest(t, svc, http.MethodPost, "/namespaces/tools/registries/validate-source",
		`{"source": {"git": {"repository": "https://github.com/acme/tools", "path": "registry.json"}}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var result sources.ValidationResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.Valid)
	assert.True(t, result.Accessible)
}

func TestValidateCatalog(t *testing.T) {
	t.Parallel()

	t.Run("valid document", func(t *testing.T) {
		t.Parallel()

		rec := doRequest(t, &stubService{}, http.MethodPost,
			"/namespaces/tools/registries/validate-catalog", `{"servers": []}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"valid":true`)
	})

	t.Run("invalid document reports structured failure", func(t *testing.T) {
		t.Parallel()

		svc := &stubService{catalogErr: service.NewError(service.CodeMalformedInput, "missing servers")}
		rec := doRequest(t, svc, http.MethodPost,
			"/namespaces/tools/registries/validate-catalog", `{}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"valid":false`)
		assert.Contains(t, rec.Body.String(), "missing servers")
	})
}

func TestTriggerSync(t *testing.T) {
	t.Parallel()

	t.Run("accepted", func(t *testing.T) {
		t.Parallel()

		svc := &stubService{syncResult: &service.SyncResult{Triggered: true, Message: "sync requested"}}
		rec := doRequest(t, svc, http.MethodPost, "/namespaces/tools/registries/alpha/sync", "")
		assert.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("registry missing", func(t *testing.T) {
		t.Parallel()

		svc := &stubService{syncResult: &service.SyncResult{Triggered: false, Message: "registry tools/alpha not found"}}
		rec := doRequest(t, svc, http.MethodPost, "/namespaces/tools/registries/alpha/sync", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestListOrphans(t *testing.T) {
	t.Parallel()

	svc := &stubService{orphanViews: []service.Instance{
		{Name: "orphan", Namespace: "tools", Orphaned: true},
	}}
	rec := doRequest(t, svc, http.MethodGet, "/namespaces/tools/instances/orphans", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Instances []service.Instance `json:"instances"`
		Total     int                `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Total)
	assert.True(t, body.Instances[0].Orphaned)
}

func TestConnectInstance(t *testing.T) {
	t.Parallel()

	svc := &stubService{instance: &service.Instance{
		Name: "orphan", Namespace: "tools", RegistryName: "community", Orphaned: false,
	}}
	rec := doRequest(t, svc, http.MethodPost, "/namespaces/tools/instances/orphan/connect",
		`{"registryName": "community", "registryNamespace": "tools", "serverName": "fetch"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var got service.Instance
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "community", got.RegistryName)
	assert.False(t, got.Orphaned)
}
