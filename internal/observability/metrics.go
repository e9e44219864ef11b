package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the engine's Prometheus metrics. Each Metrics value owns a
// private registry, so independent engines (and tests) never collide on
// metric registration; embedders that serve metrics pull the registry out
// via Registry.
type Metrics struct {
	registry *prometheus.Registry

	// Transactions accepted by a client ledger, by kind.
	TxApplied *prometheus.CounterVec

	// Transactions ignored by a client ledger (business-rule rejections),
	// by kind and reason.
	TxIgnored *prometheus.CounterVec

	// Distinct client ids referenced by the stream so far.
	ClientsSeen prometheus.Gauge
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		TxApplied: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "payengine_transactions_applied_total",
			Help: "Transactions accepted by a client ledger",
		}, []string{"kind"}),

		TxIgnored: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "payengine_transactions_ignored_total",
			Help: "Transactions ignored by a client ledger",
		}, []string{"kind", "reason"}),

		ClientsSeen: factory.NewGauge(prometheus.GaugeOpts{
			Name: "payengine_clients_seen",
			Help: "Distinct client ids referenced by the transaction stream",
		}),
	}
}

// Registry exposes the underlying registry for embedders.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }
