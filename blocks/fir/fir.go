// Package fir provides the FIR filter block controller.
package fir

import (
	"fmt"

	"github.com/kilianp07/fabric/core/block"
	"github.com/kilianp07/fabric/core/registry"
)

const NocID block.NocID = 0xF1120000

// maxTaps is the coefficient memory depth of the synthesized filter.
const maxTaps = 41

type Config struct {
	Coeffs []int16 `json:"coeffs"`
}

type Controller struct {
	block.Base
	coeffs []int16
}

func init() {
	registry.RegisterDirect(NocID, "FIR", New)
}

// New builds a FIR controller. Without coefficients the filter passes
// samples through unchanged.
func New(args block.Args) (block.Controller, error) {
	var cfg Config
	if err := args.DecodeParams(&cfg); err != nil {
		return nil, fmt.Errorf("fir: %w", err)
	}
	if len(cfg.Coeffs) > maxTaps {
		return nil, fmt.Errorf("fir: %d coefficients exceed the %d available taps", len(cfg.Coeffs), maxTaps)
	}
	coeffs := make([]int16, maxTaps)
	if len(cfg.Coeffs) == 0 {
		coeffs[0] = 1<<15 - 1
	}
	copy(coeffs, cfg.Coeffs)
	return &Controller{Base: block.NewBase(args), coeffs: coeffs}, nil
}

// Coeffs returns a copy of the zero-padded coefficient set.
func (c *Controller) Coeffs() []int16 {
	return append([]int16(nil), c.coeffs...)
}
