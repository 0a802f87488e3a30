package registry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Resolution outcomes reported by the resolver metrics.
const (
	statusResolved   = "resolved"
	statusNotFound   = "not_found"
	statusNoOverload = "no_overload"
)

// metrics is a container of metrics for a resolver.
type metrics struct {
	resolutionsTotal    *prometheus.CounterVec
	registeredFunctions prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer) *metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	return &metrics{
		resolutionsTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "kestrel_engine_function_resolutions_total",
			Help: "Total number of function call type resolutions by outcome",
		}, []string{"status"}),
		registeredFunctions: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "kestrel_engine_registered_functions",
			Help: "Number of function names registered in the type registry",
		}),
	}
}
