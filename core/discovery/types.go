package discovery

import (
	"fmt"
	"strings"

	"github.com/kilianp07/fabric/core/block"
)

// Policy selects how unknown blocks are handled.
type Policy string

const (
	PolicySkip Policy = "skip"
	PolicyFail Policy = "fail"
)

// ParsePolicy validates s. An empty string selects PolicySkip.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PolicySkip, nil
	case PolicySkip, PolicyFail:
		return p, nil
	default:
		return "", fmt.Errorf("unknown policy %q", s)
	}
}

// Slot is one block position reported by the hardware.
type Slot struct {
	Device int
	Port   int
	NocID  block.NocID
}

func (s Slot) String() string {
	return fmt.Sprintf("device %d port %d (noc id %s)", s.Device, s.Port, s.NocID)
}

// Instance is a constructed block.
type Instance struct {
	ID         block.BlockID
	Slot       Slot
	Name       string
	Controller block.Controller
}

// Skipped is a slot left out under PolicySkip.
type Skipped struct {
	Slot Slot
	Err  error
}

// Result is the outcome of one enumeration run.
type Result struct {
	RunID   string
	Blocks  []Instance
	Skipped []Skipped
}

// UnknownBlockError reports a slot whose NoC ID has no registered factory.
type UnknownBlockError struct {
	Slot Slot
	Err  error
}

func (e *UnknownBlockError) Error() string {
	return fmt.Sprintf("device %d port %d: unrecognized block %s; link the block implementation or map the id in the descriptor manifest: %v",
		e.Slot.Device, e.Slot.Port, e.Slot.NocID, e.Err)
}

func (e *UnknownBlockError) Unwrap() error { return e.Err }
