// Package nullsrcsink provides the null source/sink test block controller.
package nullsrcsink

import (
	"github.com/kilianp07/fabric/core/block"
	"github.com/kilianp07/fabric/core/registry"
)

// NocID identifies the null source/sink block.
const NocID block.NocID = 0x00000001

// Controller drives a null source/sink. It has no parameters.
type Controller struct {
	block.Base
}

func init() {
	registry.RegisterDirect(NocID, "NullSrcSink", New)
}

// New builds a null source/sink controller.
func New(args block.Args) (block.Controller, error) {
	return &Controller{Base: block.NewBase(args)}, nil
}
