package group

import (
	"io"
)

// Scalar represents an element of the scalar field associated with a
// cryptographic group. Scalars are integers modulo the group order and
// are used as exponents in scalar multiplication.
//
// All arithmetic methods use a mutable receiver pattern: they modify
// the receiver, store the result in it, and return it. This allows for
// efficient method chaining while minimizing memory allocations.
//
// Implementations must ensure all operations produce results in the
// valid range [0, order).
type Scalar interface {
	// Add sets the receiver to a+b and returns it.
	Add(a, b Scalar) Scalar
	// Sub sets the receiver to a-b and returns it.
	Sub(a, b Scalar) Scalar
	// Mul sets the receiver to a*b and returns it.
	Mul(a, b Scalar) Scalar
	// Negate sets the receiver to -a and returns it.
	Negate(a Scalar) Scalar
	// Invert sets the receiver to a^{-1} and returns it.
	// Returns an error if a is zero.
	Invert(a Scalar) (Scalar, error)
	// Set sets the receiver to a and returns it.
	Set(a Scalar) Scalar
	// SetUint64 sets the receiver to the given small integer and
	// returns it.
	SetUint64(v uint64) Scalar
	// Bytes returns the canonical byte representation of the scalar.
	Bytes() []byte
	// SetBytes sets the receiver from a byte slice and returns it.
	// Returns an error if the data is invalid or out of range.
	SetBytes(data []byte) (Scalar, error)
	// Equal reports whether the receiver equals b.
	Equal(b Scalar) bool
	// IsZero reports whether the receiver is zero.
	IsZero() bool
	// NAF returns the windowed non-adjacent form of the scalar for the
	// given window width, least significant digit first. Every digit is
	// either zero or odd in the open range (-2^{width-1}, 2^{width-1}).
	// Widths 2 through 8 are supported; anything else panics.
	//
	// The digit pattern reveals the scalar. Only encode public scalars.
	NAF(width uint) []int8
	// Digits returns the fixed-radix representation of the scalar in
	// base 2^window, least significant digit first. Every digit is in
	// [0, 2^window). Windows 1 through 8 are supported; anything else
	// panics.
	Digits(window uint) []uint8
	// Zeroize overwrites the scalar's internal state with zero.
	Zeroize()
}

// Point represents an element of a cryptographic group, typically a point
// on an elliptic curve. Points support addition, subtraction, negation,
// doubling, and scalar multiplication.
//
// Like [Scalar], all arithmetic methods use a mutable receiver pattern
// for efficiency.
//
// The identity element (zero point, point at infinity) is the additive
// identity: P + Identity = P for all points P.
type Point interface {
	// Add sets the receiver to a+b and returns it.
	Add(a, b Point) Point
	// Sub sets the receiver to a-b and returns it.
	Sub(a, b Point) Point
	// Negate sets the receiver to -a and returns it.
	Negate(a Point) Point
	// Double sets the receiver to a+a and returns it.
	Double(a Point) Point
	// ScalarMult sets the receiver to s*p and returns it. It delegates
	// to the underlying curve's scalar multiplication, which is
	// expected to run with data-independent control flow; this is the
	// multiply to use when the scalar may be secret.
	ScalarMult(s Scalar, p Point) Point
	// Set sets the receiver to a and returns it.
	Set(a Point) Point
	// Bytes returns the canonical byte representation of the point.
	Bytes() []byte
	// SetBytes sets the receiver from a byte slice and returns it.
	// Returns an error if the data is invalid or out of range.
	SetBytes(data []byte) (Point, error)
	// Equal reports whether the receiver equals b.
	Equal(b Point) bool
	// IsIdentity reports whether the receiver is the identity element.
	IsIdentity() bool
	// Zeroize overwrites the point's internal coordinate state with the
	// identity element so secret-dependent points do not linger in
	// memory after use.
	Zeroize()
}

// Group defines a cryptographic group suitable for pairing-based
// protocols. It provides factory methods for creating scalars and
// points, access to the group's generator, and utility functions for
// random element generation and hashing.
//
// A Group implementation encapsulates all curve-specific details,
// allowing the multiplication engines in the mult package to be generic
// over different groups (G1 and G2 of a pairing-friendly curve behave
// uniformly through this interface).
//
// Example usage:
//
//	g := &bls381.G1Group{}
//	scalar, _ := g.RandomScalar(rand.Reader)
//	point := g.NewPoint().ScalarMult(scalar, g.Generator())
type Group interface {
	// NewScalar returns a new zero scalar.
	NewScalar() Scalar
	// NewPoint returns a new identity point.
	NewPoint() Point
	// Generator returns the group's base point.
	Generator() Point
	// RandomScalar returns a cryptographically random scalar.
	RandomScalar(r io.Reader) (Scalar, error)
	// RandomPoint returns a uniformly random group element, computed as
	// a random scalar multiple of the generator.
	RandomPoint(r io.Reader) (Point, error)
	// HashToScalar hashes the input data to a scalar.
	HashToScalar(data ...[]byte) (Scalar, error)
	// Order returns the group order as a big-endian byte slice.
	Order() []byte
}
