// Package blocks groups the built-in block controllers. Each subpackage
// registers its factory with the default registry from its init function;
// importing a subpackage is enough to make its block resolvable.
package blocks
