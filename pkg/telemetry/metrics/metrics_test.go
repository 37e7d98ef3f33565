package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/xfumihiro/elixium-core/pkg/config"
)

func newTestMetrics() *CompileMetrics {
	return NewCompileMetrics(config.MetricsConfig{Namespace: "elixium", Subsystem: "instrument"})
}

func TestCompileMetrics_RecordSuccess(t *testing.T) {
	cm := newTestMetrics()
	cm.RecordSuccess(2503, 2, 9, 1, 0.001)

	families, err := cm.Registry().Gather()
	if err != nil {
		t.Fatalf("Gather() returned error: %v", err)
	}

	byName := map[string]bool{}
	for _, mf := range families {
		byName[mf.GetName()] = true
	}
	for _, want := range []string{
		"elixium_instrument_compilations_total",
		"elixium_instrument_gamma_static",
		"elixium_instrument_charges",
		"elixium_instrument_tree_nodes",
		"elixium_instrument_diagnostics_total",
		"elixium_instrument_duration_seconds",
	} {
		if !byName[want] {
			t.Errorf("metric %q was not gathered", want)
		}
	}
}

func TestCompileMetrics_Handler(t *testing.T) {
	cm := newTestMetrics()
	cm.RecordRejection("cost")

	rec := httptest.NewRecorder()
	cm.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body := rec.Body.String()
	if !strings.Contains(body, "elixium_instrument_compilations_total") {
		t.Error("handler output is missing the compilations counter")
	}
	if !strings.Contains(body, `status="rejected_cost"`) {
		t.Error("handler output is missing the rejection status label")
	}
}
