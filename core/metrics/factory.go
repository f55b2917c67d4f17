package metrics

import (
	"fmt"

	"github.com/kilianp07/fabric/core/factory"
)

// sinkRegistry holds the sink kinds selectable from the metrics.sinks
// configuration list. infra/metrics registers nop, prometheus and influx.
var sinkRegistry = factory.NewRegistry[MetricsSink]()

// RegisterMetricsSink makes a sink kind available under name. The first
// registration of a name wins; later ones return an error wrapping
// factory.ErrDuplicate.
func RegisterMetricsSink(name string, f factory.Factory[MetricsSink]) error {
	return sinkRegistry.Register(name, f)
}

// SinkTypes lists the registered sink kinds in name order.
func SinkTypes() []string { return sinkRegistry.Types() }

// NewMetricsSink builds the observer handed to the block registry and the
// enumerator. No entry yields a NopSink, one entry its sink, and several a
// MultiSink fanning events out in configuration order.
func NewMetricsSink(cfgs []factory.ModuleConfig) (MetricsSink, error) {
	switch len(cfgs) {
	case 0:
		return NopSink{}, nil
	case 1:
		return sinkRegistry.Create(cfgs[0])
	}
	sinks := make([]MetricsSink, 0, len(cfgs))
	for _, c := range cfgs {
		s, err := sinkRegistry.Create(c)
		if err != nil {
			return nil, fmt.Errorf("sink %s: %w", c.Type, err)
		}
		sinks = append(sinks, s)
	}
	return NewMultiSink(sinks...), nil
}
