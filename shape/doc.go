// Package shape implements the N-dimensional shape library: a closed set of
// parametric shape kinds (HyperSphere, HyperCube, HyperEllipsoid, Simplex,
// HyperPyramid), each satisfying the common capability set of spec section
// 4.2 (Shape interface below). Every shape value is immutable once
// constructed and every exposed numeric is a finite float64 -- constructors
// validate eagerly and return *errs.DomainError rather than ever producing
// NaN or +/-Inf.
package shape
