// Package up is the root of the up-go module, the Go language library of
// the uProtocol URI addressing scheme.
//
// The library implements the authority component of a uProtocol URI and its
// micro form validation, see the [github.com/PLeVasseur/up-go/uri] package.
// This package re-exports the most commonly used types and functions.
package up
