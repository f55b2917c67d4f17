package metrics

import "github.com/kilianp07/fabric/core/factory"

// Config defines settings for metrics sinks.
type Config struct {
	Sinks []factory.ModuleConfig `json:"sinks"`
	// ListenAddr exposes Prometheus metrics over HTTP when set, e.g. ":9100".
	ListenAddr string `json:"listen_addr"`
}
