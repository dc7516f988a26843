package http

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/go-chi/chi/v5"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"

	storePingTimeout = 5 * time.Second
)

// HealthChecker is satisfied by every document store.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports whether the dev backend and its document store are up.
type HealthHandler struct {
	store     HealthChecker
	backend   string
	version   string
	startTime time.Time
}

// NewHealthHandler creates a new health handler. backend names the store
// in the check output, for example "memory" or "postgres".
func NewHealthHandler(store HealthChecker, backend, version string) *HealthHandler {
	return &HealthHandler{store: store, backend: backend, version: version, startTime: time.Now()}
}

// HealthResponse is the body of every health endpoint.
type HealthResponse struct {
	Status    string           `json:"status"`
	Timestamp string           `json:"timestamp"`
	Version   string           `json:"version,omitempty"`
	Uptime    string           `json:"uptime,omitempty"`
	Checks    map[string]Check `json:"checks,omitempty"`
	Runtime   *RuntimeStats    `json:"runtime,omitempty"`
}

// Check is the outcome of one dependency check.
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Latency string `json:"latency,omitempty"`
}

// RuntimeStats is the process detail shown by GET /health.
type RuntimeStats struct {
	GoVersion  string `json:"goVersion"`
	Goroutines int    `json:"goroutines"`
	HeapBytes  uint64 `json:"heapBytes"`
	NumGC      uint32 `json:"numGC"`
}

// RegisterRoutes registers health check routes
func (h *HealthHandler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.HandleHealth)
	r.Get("/health/live", h.HandleLiveness)
	r.Get("/health/ready", h.HandleReadiness)
}

// HandleLiveness answers without touching the store.
func (h *HealthHandler) HandleLiveness(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, HealthResponse{
		Status:    statusHealthy,
		Timestamp: timestamp(),
	})
}

// HandleReadiness answers 503 while the store cannot be reached.
func (h *HealthHandler) HandleReadiness(w http.ResponseWriter, r *http.Request) {
	status, resp := h.report(r.Context())
	WriteJSON(w, status, resp)
}

// HandleHealth is HandleReadiness plus runtime stats.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	status, resp := h.report(r.Context())

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	resp.Runtime = &RuntimeStats{
		GoVersion:  runtime.Version(),
		Goroutines: runtime.NumGoroutine(),
		HeapBytes:  mem.HeapAlloc,
		NumGC:      mem.NumGC,
	}

	WriteJSON(w, status, resp)
}

// report pings the store and builds the shared part of the response.
func (h *HealthHandler) report(ctx context.Context) (int, HealthResponse) {
	check := h.checkStore(ctx)

	resp := HealthResponse{
		Status:    check.Status,
		Timestamp: timestamp(),
		Version:   h.version,
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Checks:    map[string]Check{"store": check},
	}
	if check.Status != statusHealthy {
		return http.StatusServiceUnavailable, resp
	}
	return http.StatusOK, resp
}

func (h *HealthHandler) checkStore(ctx context.Context) Check {
	if h.store == nil {
		return Check{Status: statusUnhealthy, Message: "store not configured"}
	}

	ctx, cancel := context.WithTimeout(ctx, storePingTimeout)
	defer cancel()

	start := time.Now()
	err := h.store.Ping(ctx)
	latency := time.Since(start).String()
	if err != nil {
		return Check{Status: statusUnhealthy, Message: h.backend + ": " + err.Error(), Latency: latency}
	}
	return Check{Status: statusHealthy, Message: h.backend, Latency: latency}
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
