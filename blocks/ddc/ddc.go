// Package ddc provides the digital down-converter block controller.
package ddc

import (
	"fmt"

	"github.com/kilianp07/fabric/core/block"
	"github.com/kilianp07/fabric/core/registry"
)

// NocID identifies the DDC block on the bus.
const NocID block.NocID = 0xDDC00000

// Config holds the construction parameters.
type Config struct {
	NumChans  int     `json:"num_chans"`
	InputRate float64 `json:"input_rate"`
	// OutputRate defaults to InputRate.
	OutputRate float64 `json:"output_rate"`
}

// Controller drives one DDC instance.
type Controller struct {
	block.Base
	cfg Config
}

func init() {
	registry.RegisterDirect(NocID, "DDC", New)
}

// New builds a DDC controller from args.
func New(args block.Args) (block.Controller, error) {
	cfg := Config{NumChans: 1}
	if err := args.DecodeParams(&cfg); err != nil {
		return nil, fmt.Errorf("ddc: %w", err)
	}
	if cfg.NumChans < 1 {
		return nil, fmt.Errorf("ddc: num_chans must be positive, got %d", cfg.NumChans)
	}
	if cfg.OutputRate == 0 {
		cfg.OutputRate = cfg.InputRate
	}
	if cfg.InputRate > 0 && cfg.OutputRate > cfg.InputRate {
		return nil, fmt.Errorf("ddc: output rate %g exceeds input rate %g", cfg.OutputRate, cfg.InputRate)
	}
	return &Controller{Base: block.NewBase(args), cfg: cfg}, nil
}

// Config returns the construction parameters.
func (c *Controller) Config() Config { return c.cfg }

// Decimation returns the integer rate reduction, or 1 when rates are unset.
func (c *Controller) Decimation() int {
	if c.cfg.InputRate <= 0 || c.cfg.OutputRate <= 0 {
		return 1
	}
	return int(c.cfg.InputRate / c.cfg.OutputRate)
}
