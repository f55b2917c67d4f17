// Package plugins links the built-in blocks and metrics sinks into the
// binary. Importing it runs their registrations.
package plugins

import (
	// Direct table blocks.
	_ "github.com/kilianp07/fabric/blocks/ddc"
	_ "github.com/kilianp07/fabric/blocks/duc"
	_ "github.com/kilianp07/fabric/blocks/fft"
	_ "github.com/kilianp07/fabric/blocks/fir"
	_ "github.com/kilianp07/fabric/blocks/nullsrcsink"
	_ "github.com/kilianp07/fabric/blocks/radio"

	// Descriptor table blocks.
	_ "github.com/kilianp07/fabric/blocks/gain"

	// Metrics sinks: nop, prometheus, influx.
	_ "github.com/kilianp07/fabric/infra/metrics"
)
