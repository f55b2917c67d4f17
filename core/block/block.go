package block

import (
	"github.com/kilianp07/fabric/core/factory"
	"github.com/kilianp07/fabric/core/logger"
)

// Controller is the host-side handle for one block instance.
type Controller interface {
	ID() BlockID
	NocID() NocID
}

// Args carries the context a factory needs to build one controller.
type Args struct {
	ID     BlockID
	NocID  NocID
	Port   int
	Params map[string]any
	Logger logger.Logger
}

// DecodeParams fills out using the json tags of the target struct.
func (a Args) DecodeParams(out any) error {
	if a.Params == nil {
		return nil
	}
	return factory.Decode(a.Params, out)
}

// Factory constructs a controller from its construction arguments.
type Factory func(Args) (Controller, error)

// Base holds the state shared by every controller and can be embedded.
type Base struct {
	id    BlockID
	nocID NocID
	port  int
	log   logger.Logger
}

// NewBase captures the identity fields of args.
func NewBase(args Args) Base {
	return Base{id: args.ID, nocID: args.NocID, port: args.Port, log: args.Logger}
}

func (b Base) ID() BlockID  { return b.id }
func (b Base) NocID() NocID { return b.nocID }
func (b Base) Port() int    { return b.port }

// Logger returns the logger supplied at construction, or nil.
func (b Base) Logger() logger.Logger { return b.log }
