// Package kernel provides the pure numeric primitives consumed by the shape
// package: the Gamma function, unit-ball volume coefficients,
// and small exact combinatorial helpers.
//
// Every function in this package is pure and stateless; the only shared
// state is a bounded, concurrency-safe memoization cache (see cache.go) that
// never affects the result, only its cost.
package kernel
