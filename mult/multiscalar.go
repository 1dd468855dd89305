package mult

import (
	"errors"
	"fmt"

	"github.com/f3rmion/bilinear/group"
)

// ErrSizeMismatch is returned when the points and scalars handed to a
// multi-scalar multiplication (or an elementwise vector operation) do
// not have the same length. Inputs are never silently truncated or
// padded across this boundary; only the internal digit sequences of
// equal-length inputs get zero-padded.
var ErrSizeMismatch = errors.New("mult: vector size mismatch")

// fixedWindow is the window width of the fixed-radix multi-scalar
// path: radix 8, digits 0..7, seven precomputed multiples per base.
const fixedWindow = 3

func checkSameSize(points, scalars int) error {
	if points != scalars {
		return fmt.Errorf("%w: %d points, %d scalars", ErrSizeMismatch, points, scalars)
	}
	return nil
}

// MultiScalarMulNaive computes sum(scalars[i] * points[i]) as n
// independent constant-time multiplications followed by n-1 additions.
// It is the correctness baseline the windowed strategies are tested
// against, and the only strategy whose per-element multiplies are
// constant time end to end.
func MultiScalarMulNaive(g group.Group, points []group.Point, scalars []group.Scalar) (group.Point, error) {
	if err := checkSameSize(len(points), len(scalars)); err != nil {
		return nil, err
	}
	acc := g.NewPoint()
	for i := range points {
		acc.Add(acc, g.NewPoint().ScalarMult(scalars[i], points[i]))
	}
	return acc, nil
}

// MultiScalarMulVarTime computes sum(scalars[i] * points[i]) with the
// Strauss trick: one lookup table per base, one shared accumulator
// doubled once per digit position regardless of how many bases there
// are. Variable time; public scalars only.
func MultiScalarMulVarTime(g group.Group, points []group.Point, scalars []group.Scalar) (group.Point, error) {
	if err := checkSameSize(len(points), len(scalars)); err != nil {
		return nil, err
	}
	tables := make([]*LookupTable, len(points))
	for i, p := range points {
		tables[i] = NewLookupTable(g, p)
	}
	return MultiScalarMulVarTimeWithTables(g, tables, scalars)
}

// MultiScalarMulVarTimeWithTables is [MultiScalarMulVarTime] with the
// per-base lookup tables already built, for callers whose bases are
// fixed across many calls (generators, public parameters).
func MultiScalarMulVarTimeWithTables(g group.Group, tables []*LookupTable, scalars []group.Scalar) (group.Point, error) {
	if err := checkSameSize(len(tables), len(scalars)); err != nil {
		return nil, err
	}

	nafs := make([][]int8, len(scalars))
	longest := 0
	for i, s := range scalars {
		nafs[i] = s.NAF(WNAFWidth)
		if len(nafs[i]) > longest {
			longest = len(nafs[i])
		}
	}
	// Pad every NAF with zero digits to the common length so one digit
	// index walks all of them together.
	for i := range nafs {
		for len(nafs[i]) < longest {
			nafs[i] = append(nafs[i], 0)
		}
	}

	acc := g.NewPoint()
	for i := longest - 1; i >= 0; i-- {
		acc.Double(acc)
		for j, naf := range nafs {
			if d := naf[i]; d > 0 {
				acc.Add(acc, tables[j].Select(int(d)))
			} else if d < 0 {
				acc.Sub(acc, tables[j].Select(int(-d)))
			}
		}
	}
	return acc, nil
}

// MultiScalarMulConstTime computes sum(scalars[i] * points[i]) by
// simultaneous fixed-window multiplication (Guide to Elliptic Curve
// Cryptography, Algorithm 3.48): per base the multiples A..7A, per
// scalar the radix-8 digits, three shared doublings per digit position.
//
// The name records the intent rather than a guarantee: the add is
// skipped when a digit is zero, so digit-zero positions still leak
// through timing even though digit values do not. See the package
// documentation.
func MultiScalarMulConstTime(g group.Group, points []group.Point, scalars []group.Scalar) (group.Point, error) {
	if err := checkSameSize(len(points), len(scalars)); err != nil {
		return nil, err
	}
	multiples := make([][]group.Point, len(points))
	for i, p := range points {
		multiples[i] = Multiples(g, p, 1<<fixedWindow-1)
	}
	return MultiScalarMulConstTimeWithMultiples(g, multiples, scalars)
}

// MultiScalarMulConstTimeWithMultiples is [MultiScalarMulConstTime]
// with the per-base multiples [A..7A] already computed (see
// [Multiples]), for fixed reused bases.
func MultiScalarMulConstTimeWithMultiples(g group.Group, multiples [][]group.Point, scalars []group.Scalar) (group.Point, error) {
	if err := checkSameSize(len(multiples), len(scalars)); err != nil {
		return nil, err
	}

	digits := make([][]uint8, len(scalars))
	longest := 0
	for i, s := range scalars {
		digits[i] = s.Digits(fixedWindow)
		if len(digits[i]) > longest {
			longest = len(digits[i])
		}
	}
	for i := range digits {
		for len(digits[i]) < longest {
			digits[i] = append(digits[i], 0)
		}
	}

	acc := g.NewPoint()
	for i := longest - 1; i >= 0; i-- {
		// acc = 8*acc
		acc.Double(acc)
		acc.Double(acc)
		acc.Double(acc)
		for j, ds := range digits {
			if d := ds[i]; d != 0 {
				acc.Add(acc, multiples[j][d-1])
			}
		}
	}
	return acc, nil
}
