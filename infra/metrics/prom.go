package metrics

import (
	"strconv"

	coremetrics "github.com/kilianp07/fabric/core/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records registry activity in Prometheus metrics.
type PromSink struct {
	registrations *prometheus.CounterVec
	resolutions   *prometheus.CounterVec
	inventory     *prometheus.GaugeVec
	enumerations  *prometheus.CounterVec
	enumDuration  prometheus.Histogram
}

// NewPromSink registers registry metrics on the default Prometheus registerer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	registrations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fabric_block_registrations_total",
		Help: "Block registration attempts by table and outcome",
	}, []string{"table", "accepted"})
	resolutions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fabric_block_resolutions_total",
		Help: "NoC ID lookups by table and result",
	}, []string{"table", "found"})
	inventory := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "fabric_registered_blocks",
		Help: "Number of registered block factories per table",
	}, []string{"table"})
	enumerations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fabric_enumerations_total",
		Help: "Discovery runs by result",
	}, []string{"failed"})
	enumDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "fabric_enumeration_duration_seconds",
		Help:    "Time spent resolving and constructing the blocks of a device",
		Buckets: prometheus.DefBuckets,
	})

	var err error
	if registrations, err = register(reg, registrations); err != nil {
		return nil, err
	}
	if resolutions, err = register(reg, resolutions); err != nil {
		return nil, err
	}
	if inventory, err = register(reg, inventory); err != nil {
		return nil, err
	}
	if enumerations, err = register(reg, enumerations); err != nil {
		return nil, err
	}
	if enumDuration, err = register(reg, enumDuration); err != nil {
		return nil, err
	}
	return &PromSink{
		registrations: registrations,
		resolutions:   resolutions,
		inventory:     inventory,
		enumerations:  enumerations,
		enumDuration:  enumDuration,
	}, nil
}

// register returns the already registered collector when c was registered
// before, so several sinks can share one registerer.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// RecordRegistration increments the registration counter.
func (s *PromSink) RecordRegistration(ev coremetrics.RegistrationEvent) error {
	s.registrations.WithLabelValues(string(ev.Table), strconv.FormatBool(ev.Accepted)).Inc()
	if ev.Accepted {
		s.inventory.WithLabelValues(string(ev.Table)).Inc()
	}
	return nil
}

// RecordResolution increments the resolution counter.
func (s *PromSink) RecordResolution(ev coremetrics.ResolutionEvent) error {
	table := string(ev.Table)
	if table == "" {
		table = "none"
	}
	s.resolutions.WithLabelValues(table, strconv.FormatBool(ev.Found)).Inc()
	return nil
}

// RecordInventory sets the registered block gauges.
func (s *PromSink) RecordInventory(direct, descriptor int) error {
	s.inventory.WithLabelValues(string(coremetrics.TableDirect)).Set(float64(direct))
	s.inventory.WithLabelValues(string(coremetrics.TableDescriptor)).Set(float64(descriptor))
	return nil
}

// RecordEnumeration records a discovery run.
func (s *PromSink) RecordEnumeration(ev coremetrics.EnumerationEvent) error {
	s.enumerations.WithLabelValues(strconv.FormatBool(ev.Failed)).Inc()
	s.enumDuration.Observe(ev.Duration.Seconds())
	return nil
}
