package observability_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stateboard/stateboard/pkg/domain"
	"github.com/stateboard/stateboard/pkg/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsObserver_CountsTransitionsAndIgnores(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs := observability.NewMetrics(reg).Observer()

	login := domain.StateValue{Name: "login"}
	dashboard := domain.StateValue{Name: "dashboard", Child: "idle"}

	obs(login, domain.Snapshot{State: dashboard, Changed: true}, domain.Event{Type: domain.EventLoginSuccess})
	obs(dashboard, domain.Snapshot{State: dashboard, Changed: false}, domain.Event{Type: "BOGUS"})
	obs(dashboard, domain.Snapshot{State: dashboard, Changed: false}, domain.Event{Type: "BOGUS"})

	assert.Equal(t, 1.0, counterValue(t, reg, "stateboard_events_total", "type", domain.EventLoginSuccess))
	assert.Equal(t, 2.0, counterValue(t, reg, "stateboard_events_total", "type", "BOGUS"))
	assert.Equal(t, 2.0, counterValue(t, reg, "stateboard_ignored_events_total", "type", "BOGUS"))
	assert.Equal(t, 1.0, counterValue(t, reg, "stateboard_transitions_total", "event", domain.EventLoginSuccess))
}

// counterValue gathers the registry and returns the value of the metric whose
// labels include the given pair.
func counterValue(t *testing.T, reg *prometheus.Registry, name, labelKey, labelVal string) float64 {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			if hasLabel(m, labelKey, labelVal) {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func hasLabel(m *dto.Metric, key, val string) bool {
	for _, lp := range m.GetLabel() {
		if lp.GetName() == key && lp.GetValue() == val {
			return true
		}
	}
	return false
}
