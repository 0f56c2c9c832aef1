package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/heartmarshall/lexdb/internal/app/loader"
)

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// loadState reports on the index load without triggering it.
type loadState interface {
	Loaded() bool
	Report() (loader.Report, bool)
}

// HealthHandler serves health check endpoints. The database is optional:
// a nil pinger leaves it out of every check.
type HealthHandler struct {
	load    loadState
	db      dbPinger
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(load loadState, db dbPinger, version string) *HealthHandler {
	return &HealthHandler{load: load, db: db, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	RunID      string                `json:"run_id,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness check. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness check: 200 once the index has loaded and the
// database, if any, answers a ping; 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	ready := h.load.Loaded()
	if ready && h.db != nil {
		ready = h.db.Ping(ctx) == nil
	}

	if !ready {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "down",
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health is the full health check. It reports the lexicon load, pings the
// database with latency measurement and includes the version. A load with
// failed files is "degraded" and still answers 200.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	components := make(map[string]CompStatus)
	overallStatus := "ok"
	resp := HealthResponse{Version: h.version}

	switch rep, ok := h.load.Report(); {
	case !ok:
		components["lexicon"] = CompStatus{Status: "loading"}
		overallStatus = "down"
	case !rep.Complete:
		components["lexicon"] = CompStatus{Status: "degraded", Latency: rep.Duration.String()}
		overallStatus = "degraded"
		resp.RunID = rep.RunID.String()
	default:
		components["lexicon"] = CompStatus{Status: "ok", Latency: rep.Duration.String()}
		resp.RunID = rep.RunID.String()
	}

	if h.db != nil {
		start := time.Now()
		err := h.db.Ping(ctx)
		latency := time.Since(start)

		if err != nil {
			components["database"] = CompStatus{Status: "down"}
			overallStatus = "down"
		} else {
			components["database"] = CompStatus{
				Status:  "ok",
				Latency: latency.String(),
			}
		}
	}

	status := http.StatusOK
	if overallStatus == "down" {
		status = http.StatusServiceUnavailable
	}

	resp.Status = overallStatus
	resp.Components = components
	resp.Timestamp = time.Now()
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
