// Package httpapi exposes the store's introspection surface over HTTP:
// health/readiness probes, Prometheus metrics, and an optional debug dump of
// the whole store. It carries no update or query endpoints of its own —
// those are the connection layer's job, out of scope here (see
// SPEC_FULL.md's Non-goals).
package httpapi

import (
	"net/http"
	"time"

	"github.com/cuemby/sysdb/pkg/metrics"
	"github.com/cuemby/sysdb/pkg/serialize"
	"github.com/cuemby/sysdb/pkg/store"
)

// Server wraps the HTTP handlers used to run sysdbd as a standalone daemon.
type Server struct {
	store *store.Store
	mux   *http.ServeMux
}

// Options configures which optional endpoints Server registers.
type Options struct {
	// EnableDebugStore registers /debug/store, rendering the entire store
	// as JSON with no filter applied. Intended for local troubleshooting.
	EnableDebugStore bool
}

// NewServer builds a Server backed by s.
func NewServer(s *store.Store, opts Options) *Server {
	mux := http.NewServeMux()
	srv := &Server{store: s, mux: mux}

	mux.Handle("/healthz", metrics.HealthHandler())
	mux.Handle("/readyz", metrics.ReadyHandler())
	mux.Handle("/livez", metrics.LivenessHandler())
	mux.Handle("/metrics", metrics.Handler())

	if opts.EnableDebugStore {
		mux.HandleFunc("/debug/store", srv.debugStore)
	}

	return srv
}

// ListenAndServe runs the HTTP server on addr until it errors or the process
// is stopped.
func (s *Server) ListenAndServe(addr string) error {
	server := &http.Server{
		Addr:         addr,
		Handler:      s.mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return server.ListenAndServe()
}

func (s *Server) debugStore(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := serialize.ToJSON(w, s.store, nil, 0); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
