// Package group defines abstract interfaces for the source groups of a
// pairing-friendly elliptic curve.
//
// This package provides three core interfaces that abstract over the
// mathematical operations needed by the scalar-multiplication and
// multi-scalar-multiplication engines in the mult package:
//
//   - [Scalar]: Elements of the scalar field (integers modulo the group order)
//   - [Point]: Elements of the group (points on an elliptic curve)
//   - [Group]: Factory and utility methods for creating scalars and points
//
// # Design Philosophy
//
// The interfaces use a mutable receiver pattern for efficiency. Operations
// like Add, Mul, and ScalarMult set the receiver to the result and return it,
// allowing method chaining while minimizing allocations:
//
//	// Compute P + s*Q
//	result := g.NewPoint().ScalarMult(s, Q)
//	result = g.NewPoint().Add(P, result)
//
// All operations that can fail on untrusted input return errors rather
// than panicking. Violations of internal preconditions (for example an
// out-of-range lookup-table index) are programming defects and do panic.
//
// # Implementing a Group
//
// To implement these interfaces for a new curve:
//
//  1. Create a Scalar type that wraps your field element and implements [Scalar]
//  2. Create a Point type that wraps your curve point and implements [Point]
//  3. Create a Group type that implements [Group] as a factory
//
// See the bls381 package for complete implementations covering both
// source groups of BLS12-381.
//
// # Security Considerations
//
// Implementations must ensure:
//
//   - Scalar arithmetic is performed modulo the group order
//   - ScalarMult runs with data-independent control flow
//   - Random scalars are generated from cryptographically secure sources
//   - Invalid curve points are rejected in SetBytes
//
// The digit encodings ([Scalar.NAF], [Scalar.Digits]) are inherently
// variable-time views of a scalar and must only be requested for public
// values.
package group
