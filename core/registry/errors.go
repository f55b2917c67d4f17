package registry

import (
	"errors"
	"fmt"

	"github.com/kilianp07/fabric/core/block"
	"github.com/kilianp07/fabric/core/factory"
)

var (
	// ErrNotFound indicates that no factory is registered for an identifier.
	ErrNotFound = errors.New("block not found")
	// ErrDuplicate indicates an identifier was already registered.
	ErrDuplicate = factory.ErrDuplicate
	// ErrInvalidFactory indicates a registration with a nil factory.
	ErrInvalidFactory = errors.New("invalid block factory")
	// ErrInvalidKey indicates a descriptor registration with an empty key.
	ErrInvalidKey = errors.New("invalid block key")
)

// NotFoundError reports the identifier that could not be resolved.
type NotFoundError struct {
	ID block.NocID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("could not find block with noc id %s", e.ID)
}

// Is makes errors.Is(err, ErrNotFound) hold.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// KeyNotFoundError reports a descriptor key with no registered factory.
type KeyNotFoundError struct {
	Key block.Key
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("could not find block with key %q", string(e.Key))
}

func (e *KeyNotFoundError) Is(target error) bool { return target == ErrNotFound }
