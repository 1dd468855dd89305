// Package barrett implements Barrett modular reduction (Handbook of
// Applied Cryptography, Algorithm 14.42).
//
// Barrett reduction replaces the division in x mod m with two
// multiplications against precomputed parameters derived from m. It
// pays off when many values are reduced against the same modulus, as
// with arithmetic modulo a fixed curve order.
//
// The reduction is variable-time: the final correction subtracts the
// modulus a data-dependent number of times. Do not feed it
// secret-dependent values without separate side-channel mitigation.
package barrett

import (
	"fmt"
	"math/big"
)

// Params holds the precomputed reduction parameters for a modulus m:
//
//	K = bit length of m
//	U = floor(2^{2K} / m)
//	V = 2^{K+1}
//
// Params are immutable once computed and safe for concurrent use.
type Params struct {
	K int
	U *big.Int
	V *big.Int
}

// NewParams computes the reduction parameters for the given modulus.
// It panics if m is not positive.
func NewParams(m *big.Int) Params {
	if m.Sign() <= 0 {
		panic(fmt.Sprintf("barrett: modulus must be positive, got %s", m))
	}
	k := m.BitLen()

	// u = floor(2^{2k} / m)
	u := new(big.Int).Lsh(big.NewInt(1), uint(2*k))
	u.Quo(u, m)

	// v = 2^{k+1}
	v := new(big.Int).Lsh(big.NewInt(1), uint(k+1))

	return Params{K: k, U: u, V: v}
}

// Reduce returns x mod m using the precomputed params p, which must
// have been derived from m via [NewParams]. The input must satisfy
// 0 <= x < 2^{2K}; products and sums of values already reduced modulo m
// always do. Neither input is modified.
func Reduce(x, m *big.Int, p Params) *big.Int {
	kPlus1 := uint(p.K + 1)

	// q1 = floor(x / 2^{k-1})
	q1 := new(big.Int).Rsh(x, uint(p.K-1))

	// q2 = q1 * u
	q2 := q1.Mul(q1, p.U)

	// q3 = floor(q2 / 2^{k+1})
	q3 := q2.Rsh(q2, kPlus1)

	// r1 = x mod 2^{k+1}
	r1 := new(big.Int).Set(x)
	mod2m(r1, kPlus1)

	// r2 = (q3 * m) mod 2^{k+1}
	r2 := q3.Mul(q3, m)
	mod2m(r2, kPlus1)

	// r = r1 - r2, adding v when r1 < r2. Intermediates are kept
	// non-negative, so compute v - (r2 - r1) rather than going through
	// a negative difference.
	r := new(big.Int)
	if r1.Cmp(r2) < 0 {
		r.Sub(r2, r1)
		r.Sub(p.V, r)
	} else {
		r.Sub(r1, r2)
	}

	// The estimate overshoots by at most a couple of multiples of m.
	for r.Cmp(m) >= 0 {
		r.Sub(r, m)
	}
	return r
}

// mod2m reduces z modulo 2^m in place.
func mod2m(z *big.Int, m uint) {
	mask := new(big.Int).Lsh(big.NewInt(1), m)
	mask.Sub(mask, big.NewInt(1))
	z.And(z, mask)
}
