package mult

import (
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/f3rmion/bilinear/group"
)

// Sum returns the group sum of all elements of v. The group is
// commutative, so the fold order is irrelevant; an empty vector sums to
// the identity.
func Sum(g group.Group, v []group.Point) group.Point {
	acc := g.NewPoint()
	for _, p := range v {
		acc.Add(acc, p)
	}
	return acc
}

// Add returns the elementwise sum of a and b, which must have the same
// length.
func Add(g group.Group, a, b []group.Point) ([]group.Point, error) {
	if err := checkSameSize(len(a), len(b)); err != nil {
		return nil, err
	}
	out := make([]group.Point, len(a))
	for i := range a {
		out[i] = g.NewPoint().Add(a[i], b[i])
	}
	return out, nil
}

// Sub returns the elementwise difference of a and b, which must have
// the same length.
func Sub(g group.Group, a, b []group.Point) ([]group.Point, error) {
	if err := checkSameSize(len(a), len(b)); err != nil {
		return nil, err
	}
	out := make([]group.Point, len(a))
	for i := range a {
		out[i] = g.NewPoint().Sub(a[i], b[i])
	}
	return out, nil
}

// Hadamard returns the Hadamard "product" of a and b: the elementwise
// combination under the group operation, which for an elliptic-curve
// group is point addition.
func Hadamard(g group.Group, a, b []group.Point) ([]group.Point, error) {
	return Add(g, a, b)
}

// SplitAt splits v into v[:mid] and v[mid:] without copying the
// elements. mid must be in [0, len(v)]; out-of-range values panic, as
// they do for any Go slice expression.
func SplitAt(v []group.Point, mid int) ([]group.Point, []group.Point) {
	return v[:mid], v[mid:]
}

// Scale returns a new vector with every element multiplied by n using
// the constant-time multiply. Elements are independent, so the
// multiplications run in parallel.
func Scale(g group.Group, v []group.Point, n group.Scalar) []group.Point {
	out := make([]group.Point, len(v))
	var eg errgroup.Group
	for i := range v {
		i := i
		eg.Go(func() error {
			out[i] = g.NewPoint().ScalarMult(n, v[i])
			return nil
		})
	}
	// The workers never fail; Wait is only a join point.
	_ = eg.Wait()
	return out
}

// ScaleVarTime returns a new vector with every element multiplied by n
// using windowed-NAF multiplication. The NAF of n is computed once and
// shared by all elements, each of which still needs its own lookup
// table. Variable time; public scalars only.
func ScaleVarTime(g group.Group, v []group.Point, n group.Scalar) []group.Point {
	naf := n.NAF(WNAFWidth)
	out := make([]group.Point, len(v))
	var eg errgroup.Group
	for i := range v {
		i := i
		eg.Go(func() error {
			out[i] = WNAFMul(g, NewLookupTable(g, v[i]), naf)
			return nil
		})
	}
	_ = eg.Wait()
	return out
}

// RandomVector returns size independent random group elements drawn
// from r. Sampling is sequential because the random source is shared.
func RandomVector(g group.Group, r io.Reader, size int) ([]group.Point, error) {
	out := make([]group.Point, size)
	for i := range out {
		p, err := g.RandomPoint(r)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}
