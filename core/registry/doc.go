// Package registry maps hardware block identifiers to controller factories.
//
// Block implementations register themselves from their package init
// functions, so no central list of block types exists:
//
//	func init() {
//	    registry.RegisterDirect(0xDDC00000, "DDC", New)
//	}
//
// Two independent tables are kept. The direct table is keyed by the NocID a
// block reports on the bus; the descriptor table is keyed by the string key
// of an external block descriptor. Both are append-only: the first
// registration for an identifier wins, and later ones are rejected with a
// warning but never abort the process.
//
// Resolve turns an observed NocID into a factory. When a Translator is
// installed it first maps the NocID to a descriptor key and consults the
// descriptor table; otherwise, or when that fails, it uses the direct table.
// Unknown identifiers yield a *NotFoundError.
//
// Default returns the process-wide store, created on first use. It does not
// depend on application configuration and may be used from init functions.
package registry
