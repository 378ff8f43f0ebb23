package scene

// MaxPrimitives is the soft budget on primitives per scene (spec section
// 4.6: "≤ 10k primitives per scene; if exceeded, subsample uniformly").
const MaxPrimitives = 10_000
