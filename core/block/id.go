package block

import (
	"fmt"
	"strconv"
	"strings"
)

// NocID is the numeric identifier a block reports on the hardware bus.
type NocID uint32

// nocIDWidth is the number of hex digits needed to render a NocID.
const nocIDWidth = 8

// Hex renders the id zero-padded to its byte width without a prefix.
func (id NocID) Hex() string {
	return fmt.Sprintf("%0*x", nocIDWidth, uint32(id))
}

// String renders the id as 0x-prefixed, zero-padded hexadecimal.
func (id NocID) String() string {
	return "0x" + id.Hex()
}

// ParseNocID parses a NocID written in hexadecimal (0x prefix) or decimal.
func ParseNocID(s string) (NocID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty noc id")
	}
	v, err := strconv.ParseUint(strings.ReplaceAll(s, "_", ""), 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid noc id %q: %w", s, err)
	}
	return NocID(v), nil
}

// Key names a block type described by an external block descriptor.
type Key string

func (k Key) String() string { return string(k) }

// BlockID names one block instance on a device, e.g. "0/DDC#1".
type BlockID struct {
	Device   int
	Name     string
	Instance int
}

func (b BlockID) String() string {
	return fmt.Sprintf("%d/%s#%d", b.Device, b.Name, b.Instance)
}

// ParseBlockID parses the "<device>/<name>#<instance>" form produced by
// BlockID.String.
func ParseBlockID(s string) (BlockID, error) {
	dev, rest, ok := strings.Cut(s, "/")
	if !ok {
		return BlockID{}, fmt.Errorf("invalid block id %q: missing device", s)
	}
	name, inst, ok := strings.Cut(rest, "#")
	if !ok || name == "" {
		return BlockID{}, fmt.Errorf("invalid block id %q: missing name or instance", s)
	}
	d, err := strconv.Atoi(dev)
	if err != nil || d < 0 {
		return BlockID{}, fmt.Errorf("invalid block id %q: bad device", s)
	}
	i, err := strconv.Atoi(inst)
	if err != nil || i < 0 {
		return BlockID{}, fmt.Errorf("invalid block id %q: bad instance", s)
	}
	return BlockID{Device: d, Name: name, Instance: i}, nil
}
