// Package analyze compares shapes, sweeps a property across a dimension
// range, and batches report generation over many shapes at once.
//
// Every division that could produce a non-finite result reports the
// sentinel Ratio{Undefined: true} instead (spec section 6.4: "implementations
// MUST NOT emit NaN or ±∞ in reports").
package analyze
