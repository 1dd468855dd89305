// Package pairing evaluates the reduced ate pairing of BLS12-381 and
// provides the arithmetic of its target group GT.
//
// The pairing is a bilinear map e: G1 x G2 -> GT. Three entry points
// cover the common shapes:
//
//   - [Pair]: one pair, one Miller loop, one final exponentiation
//   - [Pair2]: the product e(p1,q1)*e(p2,q2) with a combined Miller
//     loop and a single final exponentiation
//   - [PairMany]: the product over an arbitrary batch, paying for the
//     final exponentiation once regardless of batch size
//
// All three are identity-safe: pairs containing the identity of either
// source group contribute the GT identity and never reach the Miller
// loop. The batching state is an explicit [Accumulator] value, folded
// one pair at a time and consumed exactly once.
//
// # Bilinearity
//
// The pipeline preserves the pairing laws exactly, including under
// identity and negation edge cases:
//
//	e(P1+P2, Q) = e(P1,Q) * e(P2,Q)
//	e(P, Q1+Q2) = e(P,Q1) * e(P,Q2)
//	e(P, -Q)    = e(-P, Q) = e(P,Q)^-1
//	e(rP, Q)    = e(P, rQ) = e(P,Q)^r
//	e(0, Q)     = e(P, 0)  = 1
//
// # GT arithmetic
//
// [GT] wraps the degree-12 extension field element produced by the
// pairing. It supports multiplication, inversion, exponentiation by a
// scalar field element, identity test and canonical serialization;
// equality is field equality, never byte comparison.
package pairing
