package registrystate

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"
	"k8s.io/client-go/kubernetes"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/toolforge/registry-console/api/v1alpha1"
	"github.com/toolforge/registry-console/pkg/httpclient"
)

// ServersPath is the listing endpoint queried for server counts.
const ServersPath = "/v0/servers"

// ServiceProxy reaches a named service through the cluster control plane
// instead of directly. Used when a registry's serving endpoint resolves to a
// cluster-internal address.
type ServiceProxy interface {
	// Get issues a GET through the control plane to the named service
	// port and path, returning the raw response body
	Get(ctx context.Context, namespace, service, port, path string) ([]byte, error)
}

// ClientsetServiceProxy implements ServiceProxy with a Kubernetes clientset.
type ClientsetServiceProxy struct {
	clientset kubernetes.Interface
}

// NewClientsetServiceProxy creates a proxy backed by the given clientset.
func NewClientsetServiceProxy(clientset kubernetes.Interface) *ClientsetServiceProxy {
	return &ClientsetServiceProxy{clientset: clientset}
}

// Get proxies a GET request to a service through the API server.
func (p *ClientsetServiceProxy) Get(ctx context.Context, namespace, service, port, path string) ([]byte, error) {
	if p.clientset == nil {
		return nil, fmt.Errorf("kubernetes clientset not initialized")
	}
	return p.clientset.CoreV1().Services(namespace).
		ProxyGet("http", service, port, path, nil).
		DoRaw(ctx)
}

// Counter assembles best-effort server counts for registries. Every failure
// path degrades to zero; counting never fails the caller.
type Counter struct {
	http  httpclient.Client
	proxy ServiceProxy
}

// NewCounter creates a counter. Either client may be nil, in which case the
// corresponding path reports zero.
func NewCounter(httpClient httpclient.Client, proxy ServiceProxy) *Counter {
	return &Counter{http: httpClient, proxy: proxy}
}

// Count returns the number of servers the registry currently serves. A
// registry without a serving endpoint counts zero. Cluster-internal
// endpoints are queried through the control-plane proxy, external ones
// directly; any network, parse, or status failure degrades to zero.
func (c *Counter) Count(ctx context.Context, registry *v1alpha1.ToolRegistry) int {
	if registry == nil || registry.Status.API == nil || registry.Status.API.Endpoint == "" {
		return 0
	}
	endpoint := registry.Status.API.Endpoint

	parsed, err := url.Parse(endpoint)
	if err != nil {
		log.FromContext(ctx).V(1).Info("Unparseable serving endpoint",
			"registry", registry.Name, "endpoint", endpoint)
		return 0
	}

	var body []byte
	if service, namespace, ok := clusterService(parsed.Hostname()); ok {
		body = c.proxied(ctx, namespace, service, parsed.Port())
	} else {
		body = c.direct(ctx, endpoint)
	}
	if body == nil {
		return 0
	}

	return parseCount(body)
}

// proxied fetches the listing through the control-plane proxy.
func (c *Counter) proxied(ctx context.Context, namespace, service, port string) []byte {
	if c.proxy == nil {
		return nil
	}
	body, err := c.proxy.Get(ctx, namespace, service, port, ServersPath)
	if err != nil {
		log.FromContext(ctx).V(1).Info("Proxied server count failed",
			"service", service, "namespace", namespace, "error", err.Error())
		return nil
	}
	return body
}

// direct fetches the listing straight from the endpoint.
func (c *Counter) direct(ctx context.Context, endpoint string) []byte {
	if c.http == nil {
		return nil
	}
	listURL := strings.TrimSuffix(endpoint, "/") + ServersPath
	body, err := c.http.Get(ctx, listURL)
	if err != nil {
		log.FromContext(ctx).V(1).Info("Direct server count failed",
			"url", listURL, "error", err.Error())
		return nil
	}
	return body
}

// clusterService reports whether a hostname is a cluster-internal service
// address (name.namespace.svc[.cluster.local]) and extracts the service name
// and namespace.
func clusterService(host string) (service, namespace string, ok bool) {
	parts := strings.Split(host, ".")
	if len(parts) < 3 || parts[2] != "svc" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// parseCount extracts the server count from a listing response: the length
// of a "servers" array, a "total" integer, or zero for any other shape.
func parseCount(body []byte) int {
	if servers := gjson.GetBytes(body, "servers"); servers.IsArray() {
		return len(servers.Array())
	}
	if total := gjson.GetBytes(body, "total"); total.Exists() {
		if n := int(total.Int()); n > 0 {
			return n
		}
		return 0
	}
	return 0
}
