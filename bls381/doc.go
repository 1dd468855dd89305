// Package bls381 provides BLS12-381 implementations of the [group.Group]
// interface for both source groups of the pairing.
//
// BLS12-381 is a pairing-friendly curve with embedding degree 12. Its
// two source groups share one scalar field:
//
//   - [G1]: points over the base field Fp (48-byte compressed encoding)
//   - [G2]: points over the quadratic extension Fp2 (96-byte compressed encoding)
//   - [Scalar]: integers modulo the 255-bit subgroup order
//
// This package wraps the BLS12-381 implementation from gnark-crypto,
// providing clean interfaces that satisfy [group.Group], [group.Scalar],
// and [group.Point]. The pairing itself lives in the pairing package,
// which consumes the raw representations exposed by [G1.Affine] and
// [G2.Affine].
//
// # Usage
//
// Create a group and multiply through the engines in the mult package:
//
//	g := &bls381.G1Group{}
//	s, _ := g.RandomScalar(rand.Reader)
//	p := mult.ScalarMulConstTime(g, g.Generator(), s)
//
// # Scalar sampling
//
// Random and hashed scalars are derived from 384-bit wide values
// reduced with the barrett package against the precomputed order
// parameters, so the residues are statistically uniform.
//
// # Security
//
// This implementation relies on gnark-crypto for the underlying curve
// arithmetic. Deserialized points are rejected unless they are valid
// curve points of correct subgroup order; [G1.HasCorrectOrder] and
// [G2.HasCorrectOrder] re-verify the invariant on demand. Points and
// scalars expose Zeroize for callers that must scrub secret-derived
// values before release.
package bls381
