// Package metrics holds shared metric conventions for the service.
package metrics

// MeterName is the OpenTelemetry meter name under which the service registers
// its instruments.
const MeterName = "bodycomp"

// DefaultBuckets are the latency histogram buckets (seconds) shared by all
// duration metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals
