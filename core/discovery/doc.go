// Package discovery turns the NoC IDs reported by a device into constructed
// block controllers.
//
// An Enumerator resolves every observed slot through the registry, names each
// block instance ("<device>/<name>#<n>", counted per device and name in slot
// order) and then invokes the factories in parallel. What happens to slots
// whose id is unknown is a Policy decision: PolicySkip records them and
// carries on, PolicyFail aborts the run with an *UnknownBlockError.
package discovery
