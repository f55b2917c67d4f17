// Package gain provides the example gain block. It has no compiled-in NoC
// ID; it registers under its descriptor key and is reached through the
// descriptor manifest.
package gain

import (
	"fmt"

	"github.com/kilianp07/fabric/core/block"
	"github.com/kilianp07/fabric/core/registry"
)

// Key is the descriptor key of the gain block.
const Key block.Key = "gain"

// Config holds the construction parameters.
type Config struct {
	Gain int `json:"gain"`
}

// Controller drives one gain instance.
type Controller struct {
	block.Base
	gain int
}

func init() {
	registry.RegisterDescriptor(Key, New)
}

// New builds a gain controller. The gain register is 16 bits wide.
func New(args block.Args) (block.Controller, error) {
	cfg := Config{Gain: 1}
	if err := args.DecodeParams(&cfg); err != nil {
		return nil, fmt.Errorf("gain: %w", err)
	}
	if cfg.Gain < 0 || cfg.Gain > 0xFFFF {
		return nil, fmt.Errorf("gain: value %d out of range", cfg.Gain)
	}
	return &Controller{Base: block.NewBase(args), gain: cfg.Gain}, nil
}

// Gain returns the configured gain.
func (c *Controller) Gain() int { return c.gain }
