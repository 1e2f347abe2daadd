package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/kubernetes"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	"sigs.k8s.io/controller-runtime/pkg/client"
	ctrllog "sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/toolforge/registry-console/api/v1alpha1"
	"github.com/toolforge/registry-console/internal/api"
	"github.com/toolforge/registry-console/internal/catalog"
	"github.com/toolforge/registry-console/internal/config"
	"github.com/toolforge/registry-console/internal/logger"
	"github.com/toolforge/registry-console/internal/service"
	"github.com/toolforge/registry-console/pkg/httpclient"
	"github.com/toolforge/registry-console/pkg/instances"
	"github.com/toolforge/registry-console/pkg/registrystate"
	"github.com/toolforge/registry-console/pkg/sources"
	registrysync "github.com/toolforge/registry-console/pkg/sync"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the registry console API server",
	Long: `Start the registry console API server. The server exposes registry
management, source validation, manual sync, and orphaned-instance operations
over the cluster's ToolRegistry and ToolServerInstance resources.`,
	RunE: runServe,
}

const (
	defaultGracefulTimeout = 30 * time.Second // Kubernetes-friendly shutdown time
	serverRequestTimeout   = 10 * time.Second
	serverReadTimeout      = 10 * time.Second
	serverWriteTimeout     = 15 * time.Second // Must exceed the request timeout so middleware can answer
	serverIdleTimeout      = 60 * time.Second
)

func init() {
	serveCmd.Flags().String("address", "", "Address to listen on (overrides config)")
	serveCmd.Flags().String("config", "", "Path to configuration file (YAML format)")

	if err := viper.BindPFlag("address", serveCmd.Flags().Lookup("address")); err != nil {
		logger.Fatalf("Failed to bind address flag: %v", err)
	}
	if err := viper.BindPFlag("config", serveCmd.Flags().Lookup("config")); err != nil {
		logger.Fatalf("Failed to bind config flag: %v", err)
	}
}

// getKubernetesConfig returns a Kubernetes REST config, preferring in-cluster.
func getKubernetesConfig() (*rest.Config, error) {
	restConfig, err := rest.InClusterConfig()
	if err == nil {
		return restConfig, nil
	}

	loadingRules := clientcmd.NewDefaultClientConfigLoadingRules()
	kubeConfig := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(loadingRules, &clientcmd.ConfigOverrides{})
	return kubeConfig.ClientConfig()
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(viper.GetString("config"))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if viper.GetBool("debug") {
		cfg.Debug = true
	}
	if address := viper.GetString("address"); address != "" {
		cfg.Address = address
	}

	logger.Initialize(cfg.Debug)
	ctrllog.SetLogger(logger.NewLogr())
	logger.Infof("Starting registry console on %s", cfg.Address)

	k8sRestConfig, err := getKubernetesConfig()
	if err != nil {
		return fmt.Errorf("failed to create kubernetes config: %w", err)
	}

	scheme := runtime.NewScheme()
	if err := clientgoscheme.AddToScheme(scheme); err != nil {
		return fmt.Errorf("failed to add core types to scheme: %w", err)
	}
	if err := v1alpha1.AddToScheme(scheme); err != nil {
		return fmt.Errorf("failed to add registry types to scheme: %w", err)
	}

	k8sClient, err := client.New(k8sRestConfig, client.Options{Scheme: scheme})
	if err != nil {
		return fmt.Errorf("failed to create kubernetes client: %w", err)
	}
	clientset, err := kubernetes.NewForConfig(k8sRestConfig)
	if err != nil {
		return fmt.Errorf("failed to create kubernetes clientset: %w", err)
	}

	svc, err := buildService(cfg, k8sClient, clientset)
	if err != nil {
		return err
	}

	router := api.NewServer(svc,
		api.WithMiddlewares(
			middleware.Logger,
			middleware.Timeout(serverRequestTimeout),
		),
	)

	server := &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  serverReadTimeout,
		WriteTimeout: serverWriteTimeout,
		IdleTimeout:  serverIdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-stop:
		logger.Infof("Received signal %s, shutting down", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultGracefulTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// buildService wires the service from its collaborators.
func buildService(cfg *config.Config, k8sClient client.Client, clientset kubernetes.Interface) (service.RegistryService, error) {
	catalogValidator, err := catalog.NewValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog validator: %w", err)
	}

	var probe httpclient.Client
	if !cfg.Validation.DisableProbes {
		probe = httpclient.NewDefaultClient(cfg.Validation.ProbeTimeout)
	}

	cache := sources.NewValidationCache(cfg.Validation.CacheTTL, cfg.Validation.CacheCapacity, nil)
	validator := sources.NewValidator(k8sClient,
		sources.WithProbeClient(probe),
		sources.WithCache(cache),
	)

	countClient := httpclient.NewRetryingClient(
		httpclient.NewDefaultClient(cfg.Validation.ProbeTimeout),
		cfg.Validation.ProbeTimeout,
	)

	return service.New(service.Options{
		Client:           k8sClient,
		Validator:        validator,
		Counter:          registrystate.NewCounter(countClient, registrystate.NewClientsetServiceProxy(clientset)),
		Trigger:          registrysync.NewTrigger(k8sClient, nil),
		Orphans:          instances.NewReconciler(k8sClient),
		CatalogValidator: catalogValidator,
		Probe:            probe,
		Metrics:          service.NewMetrics(prometheus.DefaultRegisterer),
	}), nil
}
