// Package mult implements the scalar-multiplication and multi-scalar-
// multiplication engines for groups satisfying the interfaces in the
// group package.
//
// Three layers build on each other:
//
//   - [LookupTable]: odd multiples {A, 3A, ..., 15A} of a base element,
//     precomputed once and consulted by the windowed algorithms
//   - Single-scalar multiplication: [ScalarMulConstTime] for secret
//     scalars, [ScalarMulVarTime] (windowed NAF) for public ones
//   - Multi-scalar multiplication: [MultiScalarMulNaive],
//     [MultiScalarMulVarTime] (Strauss), and [MultiScalarMulConstTime]
//     (fixed window), all computing the inner product sum(s_i * A_i)
//
// The windowed strategies expose WithTables/WithMultiples entry points
// so callers with fixed bases (for example public parameters) can
// amortize precomputation across many calls.
//
// # Timing profiles
//
// Every function documents whether it is safe for secret scalars. The
// variable-time paths branch on digit values and must only see public
// scalars. The "constant-time" windowed multi-scalar path still
// branches on whether a digit is zero; it hides digit values but leaks
// digit-zero positions, a known limitation inherited from the windowed
// algorithm it implements.
//
// # Vector operations
//
// The package also provides elementwise vector helpers over []group.Point:
// [Sum], [Add], [Sub], [Hadamard], [SplitAt], [Scale] and
// [ScaleVarTime]. Length disagreements surface as [ErrSizeMismatch];
// the expensive elementwise maps run data-parallel since the elements
// are independent.
package mult
