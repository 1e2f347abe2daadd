// Package v1 provides the REST handlers for the registry console API.
package v1

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/toolforge/registry-console/internal/logger"
	"github.com/toolforge/registry-console/internal/service"
)

// maxBodySize bounds request bodies (1MB).
const maxBodySize = 1 << 20

// ErrorResponse is the standardized error body.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// Routes holds the handlers for the registry console API.
type Routes struct {
	service service.RegistryService
}

// NewRoutes creates a Routes instance over the given service.
func NewRoutes(svc service.RegistryService) *Routes {
	return &Routes{service: svc}
}

// Router builds the route tree.
func (routes *Routes) Router() chi.Router {
	r := chi.NewRouter()

	r.Route("/namespaces/{namespace}", func(r chi.Router) {
		r.Route("/registries", func(r chi.Router) {
			r.Get("/", routes.listRegistries)
			r.Post("/", routes.createRegistry)
			r.Post("/validate-source", routes.validateSource)
			r.Post("/validate-catalog", routes.validateCatalog)
			r.Route("/{name}", func(r chi.Router) {
				r.Get("/", routes.getRegistry)
				r.Delete("/", routes.deleteRegistry)
				r.Post("/sync", routes.triggerSync)
			})
		})
		r.Route("/instances", func(r chi.Router) {
			r.Get("/orphans", routes.listOrphans)
			r.Post("/{name}/connect", routes.connectInstance)
		})
	})

	return r
}

func (routes *Routes) listRegistries(w http.ResponseWriter, r *http.Request) {
	namespace := chi.URLParam(r, "namespace")
	registries, err := routes.service.ListRegistries(r.Context(), namespace)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"registries": registries,
		"total":      len(registries),
	})
}

func (routes *Routes) getRegistry(w http.ResponseWriter, r *http.Request) {
	registry, err := routes.service.GetRegistry(r.Context(),
		chi.URLParam(r, "namespace"), chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, registry)
}

func (routes *Routes) createRegistry(w http.ResponseWriter, r *http.Request) {
	var req service.CreateRegistryRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Namespace == "" {
		req.Namespace = chi.URLParam(r, "namespace")
	}

	registry, err := routes.service.CreateRegistry(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, registry)
}

func (routes *Routes) deleteRegistry(w http.ResponseWriter, r *http.Request) {
	err := routes.service.DeleteRegistry(r.Context(),
		chi.URLParam(r, "namespace"), chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (routes *Routes) validateSource(w http.ResponseWriter, r *http.Request) {
	var req service.ValidateSourceRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Namespace == "" {
		req.Namespace = chi.URLParam(r, "namespace")
	}

	result := routes.service.ValidateSource(r.Context(), &req)
	writeJSON(w, http.StatusOK, result)
}

func (routes *Routes) validateCatalog(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "failed to read request body"})
		return
	}

	if err := routes.service.ValidateCatalog(r.Context(), body); err != nil {
		writeJSON(w, http.StatusOK, map[string]any{
			"valid": false,
			"error": err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"valid": true})
}

func (routes *Routes) triggerSync(w http.ResponseWriter, r *http.Request) {
	result, err := routes.service.TriggerSync(r.Context(),
		chi.URLParam(r, "namespace"), chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, err)
		return
	}
	status := http.StatusAccepted
	if !result.Triggered {
		status = http.StatusNotFound
	}
	writeJSON(w, status, result)
}

func (routes *Routes) listOrphans(w http.ResponseWriter, r *http.Request) {
	namespace := chi.URLParam(r, "namespace")
	orphans, err := routes.service.ListOrphans(r.Context(), namespace)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"instances": orphans,
		"total":     len(orphans),
	})
}

func (routes *Routes) connectInstance(w http.ResponseWriter, r *http.Request) {
	var req service.ConnectInstanceRequest
	if !decodeBody(w, r, &req) {
		return
	}

	instance, err := routes.service.ConnectInstance(r.Context(),
		chi.URLParam(r, "namespace"), chi.URLParam(r, "name"), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, instance)
}

// decodeBody decodes a JSON request body, writing a 400 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dest any) bool {
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodySize))
	if err := decoder.Decode(dest); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error: "invalid JSON request body",
			Code:  string(service.CodeMalformedInput),
		})
		return false
	}
	return true
}

// writeError translates a service error into an HTTP response.
func writeError(w http.ResponseWriter, err error) {
	code := service.CodeOf(err)
	status := http.StatusInternalServerError
	switch code {
	case service.CodeMalformedInput:
		status = http.StatusBadRequest
	case service.CodeNotFound:
		status = http.StatusNotFound
	case service.CodeAccessDenied:
		status = http.StatusForbidden
	case service.CodeConflict:
		status = http.StatusConflict
	}

	message := err.Error()
	var svcErr *service.Error
	if !errors.As(err, &svcErr) {
		// Never leak raw internal fault strings
		message = "internal error"
		logger.Errorf("Unclassified service error: %v", err)
	}

	writeJSON(w, status, ErrorResponse{Error: message, Code: string(code)})
}

// writeJSON writes a JSON response body.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Errorf("Failed to encode response: %v", err)
	}
}
