package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	// Namespace for all metrics
	namespace = "galaxyofdrones"
	// Subsystem for scheduler metrics
	subsystem = "scheduler"
)

var (
	// Registry is the global Prometheus registry for all metrics
	Registry *prometheus.Registry

	// globalCollector is the singleton lifecycle metrics collector
	// Set by SetGlobalCollector() when metrics are enabled
	globalCollector LifecycleRecorder
)

// LifecycleRecorder defines the interface for recording lifecycle events.
// Application handlers call through the package-level functions so they
// never depend on whether metrics are enabled.
type LifecycleRecorder interface {
	RecordFinish(kind string, outcome string)
	RecordSweep(kind string, batchSize int)
	RecordDemolition()
	RecordExchange(energyGained int64)
	RecordPlanetSync()
}

// InitRegistry initializes the Prometheus registry
// Should be called once at application startup if metrics are enabled
func InitRegistry() {
	Registry = prometheus.NewRegistry()
}

// GetRegistry returns the global Prometheus registry
// Returns nil if metrics are not initialized
func GetRegistry() *prometheus.Registry {
	return Registry
}

// IsEnabled returns true if metrics collection is enabled
func IsEnabled() bool {
	return Registry != nil
}

// SetGlobalCollector sets the global lifecycle metrics collector
func SetGlobalCollector(collector LifecycleRecorder) {
	globalCollector = collector
}

// RecordFinish records a completed or skipped finish attempt globally
func RecordFinish(kind string, outcome string) {
	if globalCollector != nil {
		globalCollector.RecordFinish(kind, outcome)
	}
}

// RecordSweep records a scheduler sweep dispatch globally
func RecordSweep(kind string, batchSize int) {
	if globalCollector != nil {
		globalCollector.RecordSweep(kind, batchSize)
	}
}

// RecordDemolition records a demolition event globally
func RecordDemolition() {
	if globalCollector != nil {
		globalCollector.RecordDemolition()
	}
}

// RecordExchange records a producer exchange event globally
func RecordExchange(energyGained int64) {
	if globalCollector != nil {
		globalCollector.RecordExchange(energyGained)
	}
}

// RecordPlanetSync records a planet aggregate recomputation globally
func RecordPlanetSync() {
	if globalCollector != nil {
		globalCollector.RecordPlanetSync()
	}
}
