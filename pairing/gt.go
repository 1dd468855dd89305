package pairing

import (
	"fmt"
	"math/big"
	"runtime"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/f3rmion/bilinear/bls381"
)

// GTSize is the byte length of a serialized GT element: twelve base
// field coordinates of 48 bytes each.
const GTSize = bls12381.SizeOfGT

// gtOne is the multiplicative identity of the extension field, kept as
// a comparison reference.
var gtOne = func() bls12381.GT {
	var one bls12381.GT
	one.SetOne()
	return one
}()

// GT represents an element of the target group of the pairing, a
// multiplicative subgroup of the degree-12 extension field. GT elements
// are created by pairing evaluation, multiplication, exponentiation or
// deserialization; the identity of the group is the multiplicative
// identity of the field.
//
// Like the point types, GT uses a mutable receiver pattern: operations
// set the receiver and return it.
type GT struct {
	inner bls12381.GT
}

// One returns the multiplicative identity of GT.
func One() *GT {
	return &GT{inner: gtOne}
}

// IsOne reports whether e is the multiplicative identity.
func (e *GT) IsOne() bool {
	return e.inner.Equal(&gtOne)
}

// Mul sets e to a * b in the extension field and returns e.
func (e *GT) Mul(a, b *GT) *GT {
	e.inner.Mul(&a.inner, &b.inner)
	return e
}

// Inverse sets e to the field inverse of a and returns e.
func (e *GT) Inverse(a *GT) *GT {
	e.inner.Inverse(&a.inner)
	return e
}

// Exp sets e to a^s and returns e. The scalar is converted to its
// integer value and the extension field's exponentiation routine is
// invoked; exponents respect the group order, so e(P,Q)^s matches
// e(sP,Q) for any scalar s.
func (e *GT) Exp(a *GT, s *bls381.Scalar) *GT {
	var k big.Int
	s.BigInt(&k)
	e.inner.Exp(a.inner, &k)
	return e
}

// Set copies the value of a into e and returns e.
func (e *GT) Set(a *GT) *GT {
	e.inner.Set(&a.inner)
	return e
}

// Equal reports whether e and b represent the same element, using the
// extension field's equality rather than byte comparison.
func (e *GT) Equal(b *GT) bool {
	return e.inner.Equal(&b.inner)
}

// Bytes returns the canonical serialization of e ([GTSize] bytes).
func (e *GT) Bytes() []byte {
	b := e.inner.Bytes()
	return b[:]
}

// SetBytes sets e from a serialization produced by Bytes and returns e.
// Returns an error if the data has the wrong length or does not decode
// to a field element.
func (e *GT) SetBytes(data []byte) (*GT, error) {
	if len(data) != GTSize {
		return nil, fmt.Errorf("pairing: GT serialization must be %d bytes, got %d", GTSize, len(data))
	}
	if err := e.inner.SetBytes(data); err != nil {
		return nil, err
	}
	return e, nil
}

// Zeroize overwrites the element with the identity. The write is
// anchored with runtime.KeepAlive so it cannot be elided as a dead
// store.
func (e *GT) Zeroize() {
	e.inner.SetOne()
	runtime.KeepAlive(&e.inner)
}
