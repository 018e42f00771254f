package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestHandlerServesPrometheusFormat(t *testing.T) {
	if Handler() == nil {
		t.Fatal("Handler() returned nil")
	}

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /metrics = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "sysdb_hosts_total") {
		t.Fatal("exposition output does not include sysdb_hosts_total")
	}
}

func TestUpdatesTotalAcceptsLabels(t *testing.T) {
	UpdatesTotal.WithLabelValues("host", "stored").Inc()
	UpdatesTotal.WithLabelValues("attribute", "unchanged").Inc()
}

type fakeSizer struct {
	hosts, services, metricsN, attributes int
}

func (f fakeSizer) Sizes() (hosts, services, metrics, attributes int) {
	return f.hosts, f.services, f.metricsN, f.attributes
}

func TestCollectorUpdatesGauges(t *testing.T) {
	c := NewCollector(fakeSizer{hosts: 2, services: 3, metricsN: 1, attributes: 5}, 0)
	c.collect()

	if got := testutil.ToFloat64(HostsTotal); got != 2 {
		t.Errorf("HostsTotal = %v, want 2", got)
	}
	if got := testutil.ToFloat64(ServicesTotal); got != 3 {
		t.Errorf("ServicesTotal = %v, want 3", got)
	}
	if got := testutil.ToFloat64(MetricsTotal); got != 1 {
		t.Errorf("MetricsTotal = %v, want 1", got)
	}
	if got := testutil.ToFloat64(AttributesTotal); got != 5 {
		t.Errorf("AttributesTotal = %v, want 5", got)
	}
}
