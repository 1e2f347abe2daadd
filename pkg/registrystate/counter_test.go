package registrystate

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	k8sfake "k8s.io/client-go/kubernetes/fake"
	restclient "k8s.io/client-go/rest"
	k8stesting "k8s.io/client-go/testing"

	"github.com/toolforge/registry-console/api/v1alpha1"
	"github.com/toolforge/registry-console/pkg/httpclient"
)

// fakeServiceProxy records proxied requests and returns a canned body.
type fakeServiceProxy struct {
	body      []byte
	err       error
	namespace string
	service   string
	port      string
	path      string
}

func (f *fakeServiceProxy) Get(_ context.Context, namespace, service, port, path string) ([]byte, error) {
	f.namespace = namespace
	f.service = service
	f.port = port
	f.path = path
	return f.body, f.err
}

func registryWithEndpoint(endpoint string) *v1alpha1.ToolRegistry {
	return &v1alpha1.ToolRegistry{
		ObjectMeta: metav1.ObjectMeta{Name: "tools", Namespace: "default"},
		Status: v1alpha1.ToolRegistryStatus{
			API: &v1alpha1.APIStatus{Endpoint: endpoint},
		},
	}
}

func TestCountNoEndpoint(t *testing.T) {
	t.Parallel()

	counter := NewCounter(nil, nil)

	assert.Equal(t, 0, counter.Count(context.Background(), nil))
	assert.Equal(t, 0, counter.Count(context.Background(), &v1alpha1.ToolRegistry{}))
	assert.Equal(t, 0, counter.Count(context.Background(), registryWithEndpoint("")))
}

func TestCountProxiedClusterEndpoint(t *testing.T) {
	t.Parallel()

	proxy := &fakeServiceProxy{body: []byte(`{"total": 7}`)}
	counter := NewCounter(nil, proxy)

	got := counter.Count(context.Background(), registryWithEndpoint("http://tools-api.prod.svc.cluster.local:8080"))

	assert.Equal(t, 7, got)
	assert.Equal(t, "prod", proxy.namespace)
	assert.Equal(t, "tools-api", proxy.service)
	assert.Equal(t, "8080", proxy.port)
	assert.Equal(t, ServersPath, proxy.path)
}

// fakeResponseWrapper satisfies rest.ResponseWrapper for proxy reactors.
type fakeResponseWrapper struct {
	body []byte
}

func (f *fakeResponseWrapper) DoRaw(context.Context) ([]byte, error) {
	return f.body, nil
}

func (f *fakeResponseWrapper) Stream(context.Context) (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(f.body)), nil
}

// proxyReactingClientset records the proxy request the clientset issues and
// answers it with the given body.
func proxyReactingClientset(body []byte, got *k8stesting.ProxyGetActionImpl) *k8sfake.Clientset {
	clientset := k8sfake.NewSimpleClientset()
	clientset.AddProxyReactor("services", func(action k8stesting.Action) (bool, restclient.ResponseWrapper, error) {
		proxyAction, ok := action.(k8stesting.ProxyGetActionImpl)
		if !ok {
			return false, nil, fmt.Errorf("unexpected action type %T", action)
		}
		*got = proxyAction
		return true, &fakeResponseWrapper{body: body}, nil
	})
	return clientset
}

func TestClientsetServiceProxyGet(t *testing.T) {
	t.Parallel()

	var action k8stesting.ProxyGetActionImpl
	clientset := proxyReactingClientset([]byte(`{"total": 7}`), &action)

	proxy := NewClientsetServiceProxy(clientset)
	body, err := proxy.Get(context.Background(), "prod", "tools-api", "8080", ServersPath)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"total": 7}`), body)

	// The port travels in its own argument; joining it into the service
	// name produces a proxy id the API server rejects.
	assert.Equal(t, "prod", action.GetNamespace())
	assert.Equal(t, "http", action.GetScheme())
	assert.Equal(t, "tools-api", action.GetName())
	assert.Equal(t, "8080", action.GetPort())
	assert.Equal(t, ServersPath, action.GetPath())
}

func TestCountThroughClientsetProxy(t *testing.T) {
	t.Parallel()

	var action k8stesting.ProxyGetActionImpl
	clientset := proxyReactingClientset([]byte(`{"total": 7}`), &action)
	counter := NewCounter(nil, NewClientsetServiceProxy(clientset))

	got := counter.Count(context.Background(), registryWithEndpoint("http://tools-api.prod.svc.cluster.local:8080"))

	assert.Equal(t, 7, got)
	assert.Equal(t, "tools-api", action.GetName())
	assert.Equal(t, "8080", action.GetPort())
}

func TestClientsetServiceProxyNilClientset(t *testing.T) {
	t.Parallel()

	proxy := NewClientsetServiceProxy(nil)
	_, err := proxy.Get(context.Background(), "prod", "tools-api", "8080", ServersPath)
	require.Error(t, err)
}

func TestCountProxiedShortServiceHost(t *testing.T) {
	t.Parallel()

	proxy := &fakeServiceProxy{body: []byte(`{"servers": [{"name": "a"}, {"name": "b"}]}`)}
	counter := NewCounter(nil, proxy)

	got := counter.Count(context.Background(), registryWithEndpoint("http://tools-api.prod.svc"))

	assert.Equal(t, 2, got)
	assert.Empty(t, proxy.port)
}

func TestCountProxyFailureDegradesToZero(t *testing.T) {
	t.Parallel()

	proxy := &fakeServiceProxy{err: fmt.Errorf("service unavailable")}
	counter := NewCounter(nil, proxy)

	got := counter.Count(context.Background(), registryWithEndpoint("http://tools-api.prod.svc.cluster.local"))
	assert.Equal(t, 0, got)
}

func TestCountProxyNotConfigured(t *testing.T) {
	t.Parallel()

	counter := NewCounter(httpclient.NewDefaultClient(time.Second), nil)
	got := counter.Count(context.Background(), registryWithEndpoint("http://tools-api.prod.svc.cluster.local"))
	assert.Equal(t, 0, got)
}

func TestCountDirectEndpoint(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, ServersPath, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"servers": [{"name": "fetch"}, {"name": "search"}, {"name": "notify"}]}`)
	}))
	defer server.Close()

	counter := NewCounter(httpclient.NewDefaultClient(time.Second), nil)
	got := counter.Count(context.Background(), registryWithEndpoint(server.URL))
	assert.Equal(t, 3, got)
}

func TestCountDirectEndpointTrailingSlash(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, ServersPath, r.URL.Path)
		fmt.Fprint(w, `{"total": 4}`)
	}))
	defer server.Close()

	counter := NewCounter(httpclient.NewDefaultClient(time.Second), nil)
	got := counter.Count(context.Background(), registryWithEndpoint(server.URL+"/"))
	assert.Equal(t, 4, got)
}

func TestCountDirectFailureDegradesToZero(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	counter := NewCounter(httpclient.NewDefaultClient(time.Second), nil)
	got := counter.Count(context.Background(), registryWithEndpoint(server.URL))
	assert.Equal(t, 0, got)
}

func TestParseCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "servers array", body: `{"servers": [{}, {}, {}]}`, want: 3},
		{name: "empty servers array", body: `{"servers": []}`, want: 0},
		{name: "total field", body: `{"total": 7}`, want: 7},
		{name: "negative total clamps to zero", body: `{"total": -2}`, want: 0},
		{name: "servers array wins over total", body: `{"servers": [{}], "total": 9}`, want: 1},
		{name: "unrelated shape", body: `{"items": [1, 2, 3]}`, want: 0},
		{name: "not json", body: `plain text`, want: 0},
		{name: "empty body", body: ``, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, parseCount([]byte(tt.body)))
		})
	}
}

func TestClusterService(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		host          string
		wantService   string
		wantNamespace string
		wantOK        bool
	}{
		{name: "full cluster dns", host: "tools-api.prod.svc.cluster.local", wantService: "tools-api", wantNamespace: "prod", wantOK: true},
		{name: "short cluster dns", host: "tools-api.prod.svc", wantService: "tools-api", wantNamespace: "prod", wantOK: true},
		{name: "external host", host: "registry.example.com", wantOK: false},
		{name: "bare host", host: "localhost", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			service, namespace, ok := clusterService(tt.host)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantService, service)
			assert.Equal(t, tt.wantNamespace, namespace)
		})
	}
}
