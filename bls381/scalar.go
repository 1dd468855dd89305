package bls381

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"runtime"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"golang.org/x/crypto/blake2b"

	"github.com/f3rmion/bilinear/barrett"
	"github.com/f3rmion/bilinear/group"
)

// order is the BLS12-381 scalar field (and subgroup) order, shared by
// G1, G2 and GT. orderParams are its Barrett reduction parameters,
// computed once and reused for every wide reduction.
var (
	order       = fr.Modulus()
	orderParams = barrett.NewParams(order)
)

// Scalar represents an element of the BLS12-381 scalar field.
// It implements [group.Scalar] by wrapping gnark-crypto's fr.Element,
// which keeps values in Montgomery form and reduces every operation
// modulo the curve order.
type Scalar struct {
	inner fr.Element
}

// newScalar creates a new scalar initialized to zero.
func newScalar() *Scalar {
	return new(Scalar)
}

// Add sets s to a + b (mod order) and returns s.
func (s *Scalar) Add(a, b group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	bScalar := b.(*Scalar)
	s.inner.Add(&aScalar.inner, &bScalar.inner)
	return s
}

// Sub sets s to a - b (mod order) and returns s.
func (s *Scalar) Sub(a, b group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	bScalar := b.(*Scalar)
	s.inner.Sub(&aScalar.inner, &bScalar.inner)
	return s
}

// Mul sets s to a * b (mod order) and returns s.
func (s *Scalar) Mul(a, b group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	bScalar := b.(*Scalar)
	s.inner.Mul(&aScalar.inner, &bScalar.inner)
	return s
}

// Negate sets s to -a (mod order) and returns s.
func (s *Scalar) Negate(a group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	s.inner.Neg(&aScalar.inner)
	return s
}

// Invert sets s to a^(-1) (mod order) and returns s.
// Returns an error if a is zero, as zero has no multiplicative inverse.
func (s *Scalar) Invert(a group.Scalar) (group.Scalar, error) {
	aScalar := a.(*Scalar)
	if aScalar.IsZero() {
		return nil, errors.New("bls381: cannot invert zero scalar")
	}
	s.inner.Inverse(&aScalar.inner)
	return s, nil
}

// Set copies the value of a into s and returns s.
func (s *Scalar) Set(a group.Scalar) group.Scalar {
	aScalar := a.(*Scalar)
	s.inner.Set(&aScalar.inner)
	return s
}

// SetUint64 sets s to the given small integer and returns s.
func (s *Scalar) SetUint64(v uint64) group.Scalar {
	s.inner.SetUint64(v)
	return s
}

// Bytes returns the scalar as a 32-byte big-endian representation.
func (s *Scalar) Bytes() []byte {
	b := s.inner.Bytes()
	return b[:]
}

// SetBytes sets s from a big-endian byte slice and returns s.
// The value is reduced modulo the curve order.
func (s *Scalar) SetBytes(data []byte) (group.Scalar, error) {
	s.inner.SetBytes(data)
	return s, nil
}

// setWide sets s from a big-endian byte slice of up to 48 bytes,
// reducing via Barrett against the precomputed order parameters. The
// oversampling (384 bits against a 255-bit order) keeps the reduced
// value statistically close to uniform.
func (s *Scalar) setWide(data []byte) *Scalar {
	x := new(big.Int).SetBytes(data)
	if x.BitLen() <= 2*orderParams.K {
		x = barrett.Reduce(x, order, orderParams)
	} else {
		// Outside the Barrett input domain; fall back to a division.
		x.Mod(x, order)
	}
	s.inner.SetBigInt(x)
	return s
}

// Equal reports whether s and b represent the same scalar value.
func (s *Scalar) Equal(b group.Scalar) bool {
	bScalar := b.(*Scalar)
	return s.inner.Equal(&bScalar.inner)
}

// IsZero reports whether s is the zero scalar.
func (s *Scalar) IsZero() bool {
	return s.inner.IsZero()
}

// BigInt writes the scalar's integer value into v and returns v.
func (s *Scalar) BigInt(v *big.Int) *big.Int {
	return s.inner.BigInt(v)
}

// NAF returns the windowed non-adjacent form of s, least significant
// digit first. Each digit is zero or odd in (-2^{width-1}, 2^{width-1});
// for the default width 5 that is the odd values in [-15, 15].
// Variable time, and the digits reveal the scalar: public values only.
func (s *Scalar) NAF(width uint) []int8 {
	if width < 2 || width > 8 {
		panic(fmt.Sprintf("bls381: NAF width %d outside [2, 8]", width))
	}
	k := s.inner.BigInt(new(big.Int))

	radix := int64(1) << width
	half := radix >> 1
	naf := make([]int8, 0, k.BitLen()+1)
	for k.Sign() > 0 {
		var d int64
		if k.Bit(0) == 1 {
			// d = k mods 2^width, the signed residue closest to zero.
			d = new(big.Int).And(k, big.NewInt(radix-1)).Int64()
			if d >= half {
				d -= radix
			}
			k.Sub(k, big.NewInt(d))
		}
		naf = append(naf, int8(d))
		k.Rsh(k, 1)
	}
	return naf
}

// Digits returns the base-2^window representation of s, least
// significant digit first, with digits in [0, 2^window). This is the
// non-negative encoding consumed by the fixed-window multi-scalar
// multiplication.
func (s *Scalar) Digits(window uint) []uint8 {
	if window < 1 || window > 8 {
		panic(fmt.Sprintf("bls381: digit window %d outside [1, 8]", window))
	}
	k := s.inner.BigInt(new(big.Int))

	mask := big.NewInt(int64(1)<<window - 1)
	digits := make([]uint8, 0, k.BitLen()/int(window)+1)
	d := new(big.Int)
	for k.Sign() > 0 {
		d.And(k, mask)
		digits = append(digits, uint8(d.Uint64()))
		k.Rsh(k, window)
	}
	return digits
}

// Zeroize overwrites the scalar with zero. The write is anchored with
// runtime.KeepAlive so it cannot be elided as a dead store.
func (s *Scalar) Zeroize() {
	s.inner.SetZero()
	runtime.KeepAlive(&s.inner)
}

// scalarWideBytes is how many random bytes feed one scalar: 384 bits
// against a 255-bit order, enough oversampling for a near-uniform
// residue and still inside the Barrett input domain.
const scalarWideBytes = 48

// randomScalar samples a scalar from r, shared by both group factories.
func randomScalar(r io.Reader) (*Scalar, error) {
	var buf [scalarWideBytes]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, err
	}
	return newScalar().setWide(buf[:]), nil
}

// hashToScalar maps arbitrary data to a scalar via BLAKE2b-384,
// shared by both group factories.
func hashToScalar(data ...[]byte) (*Scalar, error) {
	var msg []byte
	for _, d := range data {
		msg = append(msg, d...)
	}
	digest := blake2b.Sum384(msg)
	return newScalar().setWide(digest[:]), nil
}
