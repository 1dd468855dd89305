package mult

import (
	"github.com/f3rmion/bilinear/group"
)

// WNAFWidth is the windowed-NAF window width used by the variable-time
// paths. Width 5 (digits zero or odd in [-15, 15]) is the empirical
// sweet spot for 255-bit scalars against an 8-entry table.
const WNAFWidth = 5

// ScalarMulConstTime returns s*p via the group's own scalar
// multiplication, which runs with data-independent control flow. Use
// this whenever the scalar may be secret.
func ScalarMulConstTime(g group.Group, p group.Point, s group.Scalar) group.Point {
	return g.NewPoint().ScalarMult(s, p)
}

// ScalarMulVarTime returns s*p using a freshly built lookup table and
// the windowed-NAF encoding of s. It is faster than the constant-time
// multiply but the digit-dependent branching leaks the digit pattern
// through timing: only use it when the scalar is public, such as a
// verification exponent.
//
// Callers multiplying repeatedly against the same base should build the
// table once with [NewLookupTable] and call [WNAFMul] directly.
func ScalarMulVarTime(g group.Group, p group.Point, s group.Scalar) group.Point {
	table := NewLookupTable(g, p)
	return WNAFMul(g, table, s.NAF(WNAFWidth))
}

// WNAFMul evaluates the windowed-NAF multiplication of the table's base
// by the scalar encoded in naf (least significant digit first, width
// [WNAFWidth]). Starting from the identity it walks the digits from
// most significant to least: double the accumulator, then add
// Select(d) for a positive digit, subtract Select(-d) for a negative
// one, and do nothing for zero. Variable time.
func WNAFMul(g group.Group, table *LookupTable, naf []int8) group.Point {
	acc := g.NewPoint()
	for i := len(naf) - 1; i >= 0; i-- {
		acc.Double(acc)
		if d := naf[i]; d > 0 {
			acc.Add(acc, table.Select(int(d)))
		} else if d < 0 {
			acc.Sub(acc, table.Select(int(-d)))
		}
	}
	return acc
}

// Multiples returns the first n positive multiples [A, 2A, ..., nA] of
// p by repeated addition. The fixed-window multi-scalar engine uses it
// to precompute the multiples addressed by radix-2^w digits.
func Multiples(g group.Group, p group.Point, n int) []group.Point {
	res := make([]group.Point, 0, n)
	if n < 1 {
		return res
	}
	res = append(res, g.NewPoint().Set(p))
	for i := 1; i < n; i++ {
		res = append(res, g.NewPoint().Add(res[i-1], p))
	}
	return res
}
