package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// LifecycleMetricsCollector handles construction, upgrade and training metrics
type LifecycleMetricsCollector struct {
	finishTotal     *prometheus.CounterVec
	sweepBatchSize  *prometheus.HistogramVec
	demolitionTotal prometheus.Counter
	exchangeTotal   prometheus.Counter
	exchangeEnergy  prometheus.Counter
	planetSyncTotal prometheus.Counter
}

// NewLifecycleMetricsCollector creates a new lifecycle metrics collector
func NewLifecycleMetricsCollector() *LifecycleMetricsCollector {
	return &LifecycleMetricsCollector{
		finishTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "finish_total",
				Help:      "Total number of finish attempts by operation kind and outcome",
			},
			[]string{"kind", "outcome"},
		),

		sweepBatchSize: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "sweep_batch_size",
				Help:      "Number of due operations dispatched per sweep",
				Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100, 250},
			},
			[]string{"kind"},
		),

		demolitionTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "demolition_total",
				Help:      "Total number of building demolitions",
			},
		),

		exchangeTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "exchange_total",
				Help:      "Total number of producer stock exchanges",
			},
		),

		exchangeEnergy: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "exchange_energy_total",
				Help:      "Total energy granted through producer exchanges",
			},
		),

		planetSyncTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "planet_sync_total",
				Help:      "Total number of planet aggregate recomputations",
			},
		),
	}
}

// Register registers all metrics with the given registry
func (c *LifecycleMetricsCollector) Register(registry *prometheus.Registry) error {
	collectors := []prometheus.Collector{
		c.finishTotal,
		c.sweepBatchSize,
		c.demolitionTotal,
		c.exchangeTotal,
		c.exchangeEnergy,
		c.planetSyncTotal,
	}
	for _, collector := range collectors {
		if err := registry.Register(collector); err != nil {
			return err
		}
	}
	return nil
}

// RecordFinish records a finish attempt with its outcome
func (c *LifecycleMetricsCollector) RecordFinish(kind string, outcome string) {
	c.finishTotal.WithLabelValues(kind, outcome).Inc()
}

// RecordSweep records the size of a dispatched sweep batch
func (c *LifecycleMetricsCollector) RecordSweep(kind string, batchSize int) {
	c.sweepBatchSize.WithLabelValues(kind).Observe(float64(batchSize))
}

// RecordDemolition records a demolition event
func (c *LifecycleMetricsCollector) RecordDemolition() {
	c.demolitionTotal.Inc()
}

// RecordExchange records a producer exchange and the energy it granted
func (c *LifecycleMetricsCollector) RecordExchange(energyGained int64) {
	c.exchangeTotal.Inc()
	c.exchangeEnergy.Add(float64(energyGained))
}

// RecordPlanetSync records a planet aggregate recomputation
func (c *LifecycleMetricsCollector) RecordPlanetSync() {
	c.planetSyncTotal.Inc()
}
