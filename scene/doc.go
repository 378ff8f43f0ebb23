// Package scene renders a Shape into a dimension-keyed structured scene
// descriptor for downstream visualization (spec section 4.6): an interval
// for N=1, a sampled outline polygon for N=2, a triangulated surface mesh
// for N=3, and a family of (N-1)-cross-sections — each itself rendered
// recursively down to N=3 — for N≥4.
//
// Every boundary point scene derives is found by a single generic
// mechanism: binary search along a ray from the shape's kind-appropriate
// center against Shape.Contains. This works for any convex shape in the
// library without per-kind boundary math, the same way the rest of the
// package treats shapes polymorphically through the Shape interface.
package scene
