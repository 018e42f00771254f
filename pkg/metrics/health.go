package metrics

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"
)

// HealthStatus is the JSON body returned by the health and readiness
// endpoints.
type HealthStatus struct {
	Status    string    `json:"status"` // "healthy"/"unhealthy", "ready"/"not_ready"
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message,omitempty"`
	Version   string    `json:"version,omitempty"`
	Uptime    string    `json:"uptime,omitempty"`
	Hosts     int       `json:"hosts,omitempty"`
}

var (
	healthMu    sync.RWMutex
	healthStart = time.Now()
	version     string
	sizer       StoreSizer
)

// readinessTimeout bounds how long GetReadiness waits on a Sizes() call
// before declaring the store unresponsive. store.Store.Sizes takes the same
// RWMutex every update holds, so a store wedged under a stuck writer shows
// up here as a timeout rather than hanging the probe indefinitely.
const readinessTimeout = 2 * time.Second

// SetVersion sets the version string reported by the health endpoints.
func SetVersion(v string) {
	healthMu.Lock()
	defer healthMu.Unlock()
	version = v
}

// Init wires the store into the readiness check. Until Init is called,
// GetReadiness reports not_ready, since there is nothing yet to verify.
func Init(s StoreSizer) {
	healthMu.Lock()
	defer healthMu.Unlock()
	sizer = s
}

// GetHealth reports process liveness: sysdbd is healthy whenever it is
// running and able to answer the request at all. It does not touch the
// store.
func GetHealth() HealthStatus {
	healthMu.RLock()
	v := version
	healthMu.RUnlock()

	return HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   v,
		Uptime:    time.Since(healthStart).String(),
	}
}

// GetReadiness reports whether the store is actually answering reads. It
// calls Sizes() — which takes the store's read lock — on a goroutine and
// races it against readinessTimeout, so a store whose lock is held by a
// stuck writer is reported not_ready instead of hanging the caller.
func GetReadiness() HealthStatus {
	healthMu.RLock()
	v, s := version, sizer
	healthMu.RUnlock()

	base := HealthStatus{Timestamp: time.Now(), Version: v, Uptime: time.Since(healthStart).String()}

	if s == nil {
		base.Status = "not_ready"
		base.Message = "store not initialized"
		return base
	}

	type sizes struct{ hosts int }
	done := make(chan sizes, 1)
	go func() {
		hosts, _, _, _ := s.Sizes()
		done <- sizes{hosts: hosts}
	}()

	select {
	case r := <-done:
		base.Status = "ready"
		base.Hosts = r.hosts
		return base
	case <-time.After(readinessTimeout):
		base.Status = "not_ready"
		base.Message = "store did not respond within " + readinessTimeout.String()
		return base
	}
}

// HealthHandler serves the liveness+version probe.
func HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		health := GetHealth()

		w.Header().Set("Content-Type", "application/json")
		statusCode := http.StatusOK
		if health.Status != "healthy" {
			statusCode = http.StatusServiceUnavailable
		}
		w.WriteHeader(statusCode)

		_ = json.NewEncoder(w).Encode(health)
	}
}

// ReadyHandler serves the store-aware readiness probe.
func ReadyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		readiness := GetReadiness()

		w.Header().Set("Content-Type", "application/json")
		statusCode := http.StatusOK
		if readiness.Status != "ready" {
			statusCode = http.StatusServiceUnavailable
		}
		w.WriteHeader(statusCode)

		_ = json.NewEncoder(w).Encode(readiness)
	}
}

// LivenessHandler reports only that the process is running, with no store
// access at all — the last-resort probe for an orchestrator deciding
// whether to restart the container.
func LivenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"status": "alive",
			"uptime": time.Since(healthStart).String(),
		})
	}
}
