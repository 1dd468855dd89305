package pairing

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/f3rmion/bilinear/bls381"
)

// Pair evaluates the reduced ate pairing e(p, q).
//
// If either input is the identity of its group the result is the GT
// identity, short-circuited before the Miller loop so degenerate points
// never reach the underlying curve routines.
func Pair(p *bls381.G1, q *bls381.G2) *GT {
	if p.IsIdentity() || q.IsIdentity() {
		return One()
	}
	acc := NewAccumulator()
	acc.Fold(p, q)
	return acc.finalize()
}

// Pair2 evaluates e(p1, q1) * e(p2, q2) with one combined Miller loop
// and a single final exponentiation, cheaper than two independent
// pairings because the final exponentiation dominates the cost.
//
// Identity inputs degrade gracefully: if either element of the first
// pair is the identity the result is Pair(p2, q2), and symmetrically
// for the second pair. This matches the naive product, since a pairing
// with an identity argument contributes the GT identity factor.
func Pair2(p1 *bls381.G1, q1 *bls381.G2, p2 *bls381.G1, q2 *bls381.G2) *GT {
	if p1.IsIdentity() || q1.IsIdentity() {
		return Pair(p2, q2)
	}
	if p2.IsIdentity() || q2.IsIdentity() {
		return Pair(p1, q1)
	}
	acc := NewAccumulator()
	acc.Fold(p1, q1)
	acc.Fold(p2, q2)
	return acc.finalize()
}

// GPair is one (G1, G2) input pair of a batched pairing.
type GPair struct {
	P *bls381.G1
	Q *bls381.G2
}

// PairMany evaluates the product of the pairings of all input pairs
// with one shared Miller loop and exactly one final exponentiation,
// regardless of batch size. Pairs containing an identity element are
// skipped, which is equivalent to multiplying by the GT identity; an
// empty (or all-identity) batch yields the GT identity.
//
// This is the most efficient way to compute a product of pairings:
// computing them independently pays the final exponentiation once per
// pair instead of once per batch.
func PairMany(pairs []GPair) *GT {
	acc := NewAccumulator()
	for _, pair := range pairs {
		acc.Fold(pair.P, pair.Q)
	}
	return acc.finalize()
}

// Accumulator is the running state of a Miller-loop computation over
// multiple (G1, G2) pairs. It is initialized empty, mutated by folding
// in one pair at a time, and consumed exactly once by Miller. The zero
// value is not usable; call [NewAccumulator].
type Accumulator struct {
	ps       []bls12381.G1Affine
	qs       []bls12381.G2Affine
	consumed bool
}

// NewAccumulator returns an empty pairing accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{
		ps: make([]bls12381.G1Affine, 0, 2),
		qs: make([]bls12381.G2Affine, 0, 2),
	}
}

// Fold adds one (p, q) pair's contribution to the accumulated Miller
// loop. Pairs with an identity element contribute the identity factor
// and are skipped.
func (a *Accumulator) Fold(p *bls381.G1, q *bls381.G2) {
	if a.consumed {
		panic("pairing: accumulator already consumed")
	}
	if p.IsIdentity() || q.IsIdentity() {
		return
	}
	a.ps = append(a.ps, p.Affine())
	a.qs = append(a.qs, q.Affine())
}

// Miller consumes the accumulator and returns the combined Miller-loop
// value, an extension-field element that still needs one final
// exponentiation to land in GT. Consuming an accumulator twice is a
// programming defect and panics.
func (a *Accumulator) Miller() bls12381.GT {
	if a.consumed {
		panic("pairing: accumulator already consumed")
	}
	a.consumed = true
	if len(a.ps) == 0 {
		return gtOne
	}
	// Lengths are equal by construction, so the only error MillerLoop
	// reports cannot occur.
	ml, err := bls12381.MillerLoop(a.ps, a.qs)
	if err != nil {
		panic("pairing: miller loop rejected equal-length inputs: " + err.Error())
	}
	return ml
}

// finalize consumes the accumulator and applies the final
// exponentiation, producing the reduced pairing product.
func (a *Accumulator) finalize() *GT {
	if len(a.ps) == 0 {
		a.consumed = true
		return One()
	}
	ml := a.Miller()
	return &GT{inner: bls12381.FinalExponentiation(&ml)}
}
