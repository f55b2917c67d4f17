// Package metrics defines the interfaces used to observe the block registry
// and block discovery. The registry reports every registration attempt and
// every resolution to a MetricsSink; optional recorder interfaces cover
// inventory snapshots and discovery runs. Sinks like PromSink and InfluxSink
// live in infra/metrics and can be combined with NewMultiSink. The factory
// helpers return a MultiSink automatically when multiple sinks are configured.
package metrics
