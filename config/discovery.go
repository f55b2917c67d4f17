package config

import (
	"fmt"

	"github.com/kilianp07/fabric/core/block"
	"github.com/kilianp07/fabric/core/discovery"
)

// DescriptorConfig points at the NoC ID to descriptor key manifest.
type DescriptorConfig struct {
	// Manifest is a YAML or JSON file; empty disables descriptor lookup.
	Manifest string `json:"manifest"`
}

// SlotConfig is one statically configured block slot.
type SlotConfig struct {
	Device int    `json:"device"`
	Port   int    `json:"port"`
	NocID  string `json:"noc_id"`
}

// DiscoveryConfig controls block enumeration.
type DiscoveryConfig struct {
	// Policy is "skip" or "fail" and applies to unknown NoC IDs.
	Policy      string                    `json:"policy"`
	Parallelism int                       `json:"parallelism"`
	Slots       []SlotConfig              `json:"slots"`
	// Params holds construction parameters per block name. Names are folded
	// to lower case, matching the keys produced by environment overrides.
	Params      map[string]map[string]any `json:"params"`
}

// SetDefaults applies sane defaults.
func (c *DiscoveryConfig) SetDefaults() {
	if c.Policy == "" {
		c.Policy = string(discovery.PolicySkip)
	}
	if c.Parallelism <= 0 {
		c.Parallelism = 4
	}
	c.Params = discovery.FoldParams(c.Params)
}

// Validate checks the policy and every slot.
func (c DiscoveryConfig) Validate() error {
	if _, err := discovery.ParsePolicy(c.Policy); err != nil {
		return err
	}
	_, err := c.ToSlots()
	return err
}

// ToSlots converts the configured slots.
func (c DiscoveryConfig) ToSlots() ([]discovery.Slot, error) {
	slots := make([]discovery.Slot, 0, len(c.Slots))
	for i, s := range c.Slots {
		id, err := block.ParseNocID(s.NocID)
		if err != nil {
			return nil, fmt.Errorf("slot %d: %w", i, err)
		}
		if s.Device < 0 || s.Port < 0 {
			return nil, fmt.Errorf("slot %d: negative device or port", i)
		}
		slots = append(slots, discovery.Slot{Device: s.Device, Port: s.Port, NocID: id})
	}
	return slots, nil
}
