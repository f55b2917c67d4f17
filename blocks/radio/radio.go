// Package radio provides the radio front-end block controller.
package radio

import (
	"fmt"

	"github.com/kilianp07/fabric/core/block"
	"github.com/kilianp07/fabric/core/registry"
)

// NocID identifies the radio block on the bus.
const NocID block.NocID = 0x12AD1000

// Config holds the construction parameters.
type Config struct {
	NumRx    int     `json:"num_rx"`
	NumTx    int     `json:"num_tx"`
	TickRate float64 `json:"tick_rate"`
}

// Controller drives one radio instance.
type Controller struct {
	block.Base
	cfg Config
}

func init() {
	registry.RegisterDirect(NocID, "Radio", New)
}

// New builds a radio controller. A radio needs at least one channel.
func New(args block.Args) (block.Controller, error) {
	cfg := Config{NumRx: 1, NumTx: 1}
	if err := args.DecodeParams(&cfg); err != nil {
		return nil, fmt.Errorf("radio: %w", err)
	}
	if cfg.NumRx < 0 || cfg.NumTx < 0 || cfg.NumRx+cfg.NumTx == 0 {
		return nil, fmt.Errorf("radio: invalid channel count rx=%d tx=%d", cfg.NumRx, cfg.NumTx)
	}
	if cfg.TickRate < 0 {
		return nil, fmt.Errorf("radio: negative tick rate %g", cfg.TickRate)
	}
	if l := args.Logger; l != nil {
		l.Debugf("radio %s: %d rx, %d tx", args.ID, cfg.NumRx, cfg.NumTx)
	}
	return &Controller{Base: block.NewBase(args), cfg: cfg}, nil
}

// Config returns the construction parameters.
func (c *Controller) Config() Config { return c.cfg }
