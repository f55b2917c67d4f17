// Package duc provides the digital up-converter block controller.
package duc

import (
	"fmt"

	"github.com/kilianp07/fabric/core/block"
	"github.com/kilianp07/fabric/core/registry"
)

const NocID block.NocID = 0xD0C00000

type Config struct {
	NumChans   int     `json:"num_chans"`
	InputRate  float64 `json:"input_rate"`
	OutputRate float64 `json:"output_rate"`
}

type Controller struct {
	block.Base
	cfg Config
}

func init() {
	registry.RegisterDirect(NocID, "DUC", New)
}

func New(args block.Args) (block.Controller, error) {
	cfg := Config{NumChans: 1}
	if err := args.DecodeParams(&cfg); err != nil {
		return nil, fmt.Errorf("duc: %w", err)
	}
	if cfg.NumChans < 1 {
		return nil, fmt.Errorf("duc: num_chans must be positive, got %d", cfg.NumChans)
	}
	if cfg.OutputRate == 0 {
		cfg.OutputRate = cfg.InputRate
	}
	if cfg.OutputRate < cfg.InputRate {
		return nil, fmt.Errorf("duc: output rate %g below input rate %g", cfg.OutputRate, cfg.InputRate)
	}
	return &Controller{Base: block.NewBase(args), cfg: cfg}, nil
}

func (c *Controller) Config() Config { return c.cfg }
