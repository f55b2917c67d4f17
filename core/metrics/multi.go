package metrics

// MultiSink fans events out to multiple sinks.
type MultiSink struct {
	Sinks []MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordRegistration forwards the event to all sinks, returning the first error encountered.
func (m *MultiSink) RecordRegistration(ev RegistrationEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordRegistration(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordResolution forwards the event to all sinks, returning the first error encountered.
func (m *MultiSink) RecordResolution(ev ResolutionEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordResolution(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordInventory forwards inventory snapshots when supported by the sink.
func (m *MultiSink) RecordInventory(direct, descriptor int) error {
	for _, s := range m.Sinks {
		if r, ok := s.(InventoryRecorder); ok {
			if err := r.RecordInventory(direct, descriptor); err != nil {
				return err
			}
		}
	}
	return nil
}

// RecordEnumeration forwards discovery runs when supported by the sink.
func (m *MultiSink) RecordEnumeration(ev EnumerationEvent) error {
	for _, s := range m.Sinks {
		if r, ok := s.(EnumerationRecorder); ok {
			if err := r.RecordEnumeration(ev); err != nil {
				return err
			}
		}
	}
	return nil
}

// Close closes every sink that holds resources.
func (m *MultiSink) Close() {
	for _, s := range m.Sinks {
		if c, ok := s.(interface{ Close() }); ok {
			c.Close()
		}
	}
}
