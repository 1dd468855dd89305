package pairing

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/f3rmion/bilinear/bls381"
	"github.com/f3rmion/bilinear/group"
)

var (
	grp1 group.Group = &bls381.G1Group{}
	grp2 group.Group = &bls381.G2Group{}
)

func randG1(t *testing.T) *bls381.G1 {
	t.Helper()
	p, err := grp1.RandomPoint(rand.Reader)
	require.NoError(t, err)
	return p.(*bls381.G1)
}

func randG2(t *testing.T) *bls381.G2 {
	t.Helper()
	p, err := grp2.RandomPoint(rand.Reader)
	require.NoError(t, err)
	return p.(*bls381.G2)
}

func randScalar(t *testing.T) *bls381.Scalar {
	t.Helper()
	s, err := grp1.RandomScalar(rand.Reader)
	require.NoError(t, err)
	return s.(*bls381.Scalar)
}

func mustScalar(s group.Scalar) *bls381.Scalar { return s.(*bls381.Scalar) }

func idG1() *bls381.G1 { return grp1.NewPoint().(*bls381.G1) }
func idG2() *bls381.G2 { return grp2.NewPoint().(*bls381.G2) }

func addG1(a, b *bls381.G1) *bls381.G1 { return grp1.NewPoint().Add(a, b).(*bls381.G1) }
func addG2(a, b *bls381.G2) *bls381.G2 { return grp2.NewPoint().Add(a, b).(*bls381.G2) }
func negG1(a *bls381.G1) *bls381.G1    { return grp1.NewPoint().Negate(a).(*bls381.G1) }
func negG2(a *bls381.G2) *bls381.G2    { return grp2.NewPoint().Negate(a).(*bls381.G2) }

func mulG1(a *bls381.G1, r *bls381.Scalar) *bls381.G1 {
	return grp1.NewPoint().ScalarMult(r, a).(*bls381.G1)
}

func mulG2(a *bls381.G2, r *bls381.Scalar) *bls381.G2 {
	return grp2.NewPoint().ScalarMult(r, a).(*bls381.G2)
}

func TestUnity(t *testing.T) {
	require.True(t, One().IsOne())

	e := Pair(randG1(t), randG2(t))
	require.False(t, e.IsOne(), "a random pairing should not be the identity")
	require.True(t, new(GT).Mul(e, One()).Equal(e), "e * 1 != e")
}

func TestInverse(t *testing.T) {
	one := grp1.NewScalar().SetUint64(1)
	minusOne := grp1.NewScalar().Negate(one).(*bls381.Scalar)

	for i := 0; i < 5; i++ {
		e := Pair(randG1(t), randG2(t))
		eInv := new(GT).Inverse(e)

		require.True(t, new(GT).Mul(e, eInv).IsOne(), "e * e^-1 != 1")
		require.True(t, new(GT).Exp(e, minusOne).Equal(eInv), "e^-1 via Exp disagrees with Inverse")
		require.True(t, new(GT).Exp(eInv, minusOne).Equal(e))
	}
}

func TestPairIdentity(t *testing.T) {
	g1 := randG1(t)
	g2 := randG2(t)
	h1 := randG1(t)
	h2 := randG2(t)

	// e(g1 + 0, g2) == e(g1, g2) * e(0, g2)
	lhs := Pair(addG1(g1, idG1()), g2)
	rhs := new(GT).Mul(Pair(g1, g2), Pair(idG1(), g2))
	require.True(t, lhs.Equal(rhs))

	// e(g1, g2 + 0) == e(g1, g2) * e(g1, 0)
	lhs = Pair(g1, addG2(g2, idG2()))
	rhs = new(GT).Mul(Pair(g1, g2), Pair(g1, idG2()))
	require.True(t, lhs.Equal(rhs))

	// An identity pairing is an absorbing identity factor.
	require.True(t, Pair(idG1(), g2).IsOne())
	require.True(t, Pair(g1, idG2()).IsOne())
	require.True(t, Pair(idG1(), idG2()).IsOne())
	require.True(t, new(GT).Mul(Pair(g1, g2), Pair(idG1(), h2)).Equal(Pair(g1, g2)))

	// Double pairing degrades to the non-identity pair.
	require.True(t, Pair2(g1, g2, idG1(), h2).Equal(Pair(g1, g2)))
	require.True(t, Pair2(g1, g2, h1, idG2()).Equal(Pair(g1, g2)))
	require.True(t, Pair2(idG1(), g2, h1, h2).Equal(Pair(h1, h2)))
	require.True(t, Pair2(g1, idG2(), h1, h2).Equal(Pair(h1, h2)))
	require.True(t, Pair2(idG1(), idG2(), idG1(), idG2()).IsOne())

	// Multi-pairing skips identity pairs entirely.
	k1 := randG1(t)
	k2 := randG2(t)
	require.True(t,
		PairMany([]GPair{{g1, g2}, {h1, h2}, {idG1(), k2}}).Equal(
			PairMany([]GPair{{g1, g2}, {h1, h2}})))
	require.True(t,
		PairMany([]GPair{{g1, g2}, {h1, h2}, {k1, idG2()}}).Equal(
			PairMany([]GPair{{g1, g2}, {h1, h2}})))
	require.True(t,
		PairMany([]GPair{{g1, g2}, {idG1(), h2}, {k1, k2}}).Equal(
			PairMany([]GPair{{g1, g2}, {k1, k2}})))
	require.True(t, PairMany([]GPair{{idG1(), idG2()}, {idG1(), idG2()}}).IsOne())
	require.True(t, PairMany(nil).IsOne())
}

func TestPairNegative(t *testing.T) {
	g1 := randG1(t)
	g2 := randG2(t)

	// e(g1, -g2) == e(-g1, g2) == e(g1, g2)^-1
	lhs := Pair(g1, negG2(g2))
	rhs := Pair(negG1(g1), g2)
	require.True(t, lhs.Equal(rhs))

	e := Pair(g1, g2)
	require.True(t, lhs.Equal(new(GT).Inverse(e)))

	// e(g1, g2) * e(g1, -g2) == 1 and e(g1, g2) * e(-g1, g2) == 1
	require.True(t, new(GT).Mul(e, lhs).IsOne())
	require.True(t, new(GT).Mul(e, rhs).IsOne())
}

func TestBilinearity(t *testing.T) {
	g1 := randG1(t)
	h1 := randG1(t)
	g2 := randG2(t)
	h2 := randG2(t)

	// e(g1 + h1, g2) == e(g1, g2) * e(h1, g2)
	lhs := Pair(addG1(g1, h1), g2)
	rhs := new(GT).Mul(Pair(g1, g2), Pair(h1, g2))
	require.True(t, lhs.Equal(rhs))
	require.True(t, Pair2(g1, g2, h1, g2).Equal(rhs))
	require.True(t, PairMany([]GPair{{g1, g2}, {h1, g2}}).Equal(rhs))

	// e(g1, g2 + h2) == e(g1, g2) * e(g1, h2)
	lhs = Pair(g1, addG2(g2, h2))
	rhs = new(GT).Mul(Pair(g1, g2), Pair(g1, h2))
	require.True(t, lhs.Equal(rhs))
	require.True(t, Pair2(g1, g2, g1, h2).Equal(rhs))
	require.True(t, PairMany([]GPair{{g1, g2}, {g1, h2}}).Equal(rhs))
}

func TestScalarExponent(t *testing.T) {
	g1 := randG1(t)
	g2 := randG2(t)
	r := randScalar(t)

	// e(g1, r*g2) == e(r*g1, g2) == e(g1, g2)^r
	p1 := Pair(g1, mulG2(g2, r))
	p2 := Pair(mulG1(g1, r), g2)
	p := new(GT).Exp(Pair(g1, g2), r)

	require.True(t, p1.Equal(p2))
	require.True(t, p1.Equal(p))
}

func TestPairManyMatchesNaiveProduct(t *testing.T) {
	const count = 4
	pairs := make([]GPair, count)
	naive := One()
	for i := range pairs {
		pairs[i] = GPair{randG1(t), randG2(t)}
		naive.Mul(naive, Pair(pairs[i].P, pairs[i].Q))
	}
	require.True(t, PairMany(pairs).Equal(naive),
		"batched pairing disagrees with the product of single pairings")
}

func TestAccumulatorConsumedOnce(t *testing.T) {
	acc := NewAccumulator()
	acc.Fold(randG1(t), randG2(t))
	acc.Miller()

	require.Panics(t, func() { acc.Miller() }, "second consumption must panic")
	require.Panics(t, func() { acc.Fold(randG1(t), randG2(t)) },
		"folding into a consumed accumulator must panic")
}

func TestAccumulatorEmptyMiller(t *testing.T) {
	acc := NewAccumulator()
	ml := acc.Miller()
	require.True(t, ml.Equal(&gtOne), "empty Miller loop should be the field identity")
}
