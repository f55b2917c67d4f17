package registry

import (
	"sync"

	"github.com/kilianp07/fabric/core/block"
)

var (
	defaultStore *Store
	defaultOnce  sync.Once
)

// Default returns the process-wide store, creating it on first call.
func Default() *Store {
	defaultOnce.Do(func() {
		defaultStore = NewStore()
	})
	return defaultStore
}

// RegisterDirect registers f under id in the default store.
func RegisterDirect(id block.NocID, name string, f block.Factory) Outcome {
	return Default().RegisterDirect(id, name, f)
}

// RegisterDescriptor registers f under key in the default store.
func RegisterDescriptor(key block.Key, f block.Factory) Outcome {
	return Default().RegisterDescriptor(key, f)
}

// Resolve looks up id in the default store.
func Resolve(id block.NocID) (block.Factory, string, error) {
	return Default().Resolve(id)
}

// ResolveKey looks up key in the default store's descriptor table.
func ResolveKey(key block.Key) (block.Factory, string, error) {
	return Default().ResolveKey(key)
}
