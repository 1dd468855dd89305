package bls381

import (
	"io"
	"math/big"
	"runtime"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/f3rmion/bilinear/group"
)

// G2 represents a point in the second source group of BLS12-381,
// defined over the quadratic extension of the base field. It implements
// [group.Point] the same way [G1] does; serialization goes through the
// 96-byte compressed affine encoding.
type G2 struct {
	inner bls12381.G2Jac
}

// Add sets p to a + b and returns p.
func (p *G2) Add(a, b group.Point) group.Point {
	aPoint := a.(*G2)
	bPoint := b.(*G2)
	var r bls12381.G2Jac
	r.Set(&aPoint.inner)
	r.AddAssign(&bPoint.inner)
	p.inner = r
	return p
}

// Sub sets p to a - b and returns p.
func (p *G2) Sub(a, b group.Point) group.Point {
	aPoint := a.(*G2)
	bPoint := b.(*G2)
	var r bls12381.G2Jac
	r.Set(&aPoint.inner)
	r.SubAssign(&bPoint.inner)
	p.inner = r
	return p
}

// Negate sets p to -a and returns p.
func (p *G2) Negate(a group.Point) group.Point {
	aPoint := a.(*G2)
	p.inner.Neg(&aPoint.inner)
	return p
}

// Double sets p to a + a and returns p.
func (p *G2) Double(a group.Point) group.Point {
	aPoint := a.(*G2)
	var r bls12381.G2Jac
	r.Double(&aPoint.inner)
	p.inner = r
	return p
}

// ScalarMult sets p to s * q and returns p. It delegates to the
// underlying curve's scalar multiplication; this is the multiply to use
// when the scalar may be secret.
func (p *G2) ScalarMult(s group.Scalar, q group.Point) group.Point {
	scalar := s.(*Scalar)
	qPoint := q.(*G2)
	var k big.Int
	scalar.inner.BigInt(&k)
	var r bls12381.G2Jac
	r.ScalarMultiplication(&qPoint.inner, &k)
	p.inner = r
	return p
}

// Set copies the value of a into p and returns p.
func (p *G2) Set(a group.Point) group.Point {
	aPoint := a.(*G2)
	p.inner.Set(&aPoint.inner)
	return p
}

// Bytes returns the compressed affine encoding of p (96 bytes).
func (p *G2) Bytes() []byte {
	var aff bls12381.G2Affine
	aff.FromJacobian(&p.inner)
	b := aff.Bytes()
	return b[:]
}

// SetBytes sets p from a compressed affine encoding and returns p.
// Returns an error if the data does not represent a valid point of
// correct subgroup order.
func (p *G2) SetBytes(data []byte) (group.Point, error) {
	var aff bls12381.G2Affine
	if _, err := aff.SetBytes(data); err != nil {
		return nil, err
	}
	p.inner.FromAffine(&aff)
	return p, nil
}

// Equal reports whether p and b represent the same curve point.
func (p *G2) Equal(b group.Point) bool {
	bPoint := b.(*G2)
	return p.inner.Equal(&bPoint.inner)
}

// IsIdentity reports whether p is the point at infinity.
func (p *G2) IsIdentity() bool {
	return p.inner.Z.IsZero()
}

// HasCorrectOrder reports whether p is the identity or a point of
// correct subgroup order, checked with one constant-time scalar
// multiplication by the group order compared against the identity.
func (p *G2) HasCorrectOrder() bool {
	var r bls12381.G2Jac
	r.ScalarMultiplication(&p.inner, order)
	return r.Z.IsZero()
}

// Affine returns the underlying point in affine coordinates. The
// pairing package consumes this raw representation.
func (p *G2) Affine() bls12381.G2Affine {
	var aff bls12381.G2Affine
	aff.FromJacobian(&p.inner)
	return aff
}

// Zeroize overwrites the point's coordinates with the canonical
// identity so secret-derived points do not linger in memory. The write
// is anchored with runtime.KeepAlive so it cannot be elided as a dead
// store.
func (p *G2) Zeroize() {
	p.inner.X.SetOne()
	p.inner.Y.SetOne()
	p.inner.Z.SetZero()
	runtime.KeepAlive(&p.inner)
}

// G2Group implements [group.Group] for the second source group of
// BLS12-381. It is a zero-sized type; create an instance with
// &G2Group{} or new(G2Group).
type G2Group struct{}

// NewScalar returns a new scalar initialized to zero.
func (g *G2Group) NewScalar() group.Scalar {
	return newScalar()
}

// NewPoint returns a new point initialized to the identity element.
func (g *G2Group) NewPoint() group.Point {
	var p G2
	p.inner.X.SetOne()
	p.inner.Y.SetOne()
	return &p
}

// Generator returns the standard base point of G2.
func (g *G2Group) Generator() group.Point {
	var p G2
	p.inner.Set(&g2Gen)
	return &p
}

// RandomScalar generates a cryptographically random scalar using the
// provided random source. 48 bytes are sampled and Barrett-reduced so
// the result is statistically uniform in [0, order).
func (g *G2Group) RandomScalar(r io.Reader) (group.Scalar, error) {
	return randomScalar(r)
}

// RandomPoint returns a uniformly random element of G2, computed as a
// random scalar multiple of the generator.
func (g *G2Group) RandomPoint(r io.Reader) (group.Point, error) {
	s, err := randomScalar(r)
	if err != nil {
		return nil, err
	}
	return g.NewPoint().ScalarMult(s, g.Generator()), nil
}

// HashToScalar hashes the provided data to a scalar using BLAKE2b-384.
// Multiple byte slices are concatenated before hashing; the 384-bit
// digest is Barrett-reduced modulo the curve order.
func (g *G2Group) HashToScalar(data ...[]byte) (group.Scalar, error) {
	return hashToScalar(data...)
}

// Order returns the order of the group as a big-endian byte slice.
func (g *G2Group) Order() []byte {
	return order.Bytes()
}
