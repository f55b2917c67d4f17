// Package fft provides the FFT block controller.
package fft

import (
	"fmt"
	"math/bits"

	"github.com/kilianp07/fabric/core/block"
	"github.com/kilianp07/fabric/core/registry"
)

// NocID identifies the FFT block on the bus.
const NocID block.NocID = 0xFF700000

const (
	defaultLength = 256
	maxLength     = 1 << 16
)

// Direction selects forward or inverse transforms.
type Direction string

const (
	Forward Direction = "forward"
	Reverse Direction = "reverse"
)

// Config holds the construction parameters.
type Config struct {
	Length    int       `json:"length"`
	Direction Direction `json:"direction"`
	Shift     bool      `json:"shift"`
}

// Controller drives one FFT instance.
type Controller struct {
	block.Base
	cfg Config
}

func init() {
	registry.RegisterDirect(NocID, "FFT", New)
}

// New builds an FFT controller. The length must be a power of two.
func New(args block.Args) (block.Controller, error) {
	cfg := Config{Length: defaultLength, Direction: Forward}
	if err := args.DecodeParams(&cfg); err != nil {
		return nil, fmt.Errorf("fft: %w", err)
	}
	if cfg.Length < 2 || cfg.Length > maxLength || bits.OnesCount(uint(cfg.Length)) != 1 {
		return nil, fmt.Errorf("fft: length %d is not a power of two in [2, %d]", cfg.Length, maxLength)
	}
	switch cfg.Direction {
	case Forward, Reverse:
	default:
		return nil, fmt.Errorf("fft: unknown direction %q", cfg.Direction)
	}
	return &Controller{Base: block.NewBase(args), cfg: cfg}, nil
}

// Config returns the construction parameters.
func (c *Controller) Config() Config { return c.cfg }
