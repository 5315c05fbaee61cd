package ecdsa

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/btcmath/go-btc-ecc/pkg/codec"
	"github.com/btcmath/go-btc-ecc/pkg/ecc"
)

// SEC prefix bytes for serialized public keys.
const (
	secCompressedEven = 0x02
	secCompressedOdd  = 0x03
	secUncompressed   = 0x04

	// CompressedPubKeyLen is the length of a compressed SEC public key.
	CompressedPubKeyLen = 33

	// UncompressedPubKeyLen is the length of an uncompressed SEC public key.
	UncompressedPubKeyLen = 65
)

// PublicKey is a point on secp256k1 in the subgroup generated by G.
type PublicKey struct {
	point ecc.Point
}

// PrivateKey is a secret scalar in [1, n-1] together with the public point
// derived from it. The public point is computed once at construction and the
// pair is immutable afterwards, so the two can never fall out of sync.
type PrivateKey struct {
	d   *big.Int
	pub *PublicKey
}

// NewPrivateKey constructs a key pair from a secret scalar, deriving the
// public point d*G immediately. Scalars outside [1, n-1] are rejected.
func NewPrivateKey(d *big.Int) (*PrivateKey, error) {
	curve := ecc.Secp256k1()
	if d.Sign() <= 0 || d.Cmp(curve.N) >= 0 {
		return nil, ErrInvalidPrivateKey
	}
	point, err := curve.Generator().ScalarMult(d)
	if err != nil {
		return nil, fmt.Errorf("derive public point: %w", err)
	}
	return &PrivateKey{
		d:   new(big.Int).Set(d),
		pub: &PublicKey{point: point},
	}, nil
}

// GeneratePrivateKey draws a fresh secret scalar from crypto/rand.
func GeneratePrivateKey() (*PrivateKey, error) {
	curve := ecc.Secp256k1()
	max := new(big.Int).Sub(curve.N, big.NewInt(1))
	d, err := rand.Int(rand.Reader, max)
	if err != nil {
		return nil, fmt.Errorf("read entropy: %w", err)
	}
	d.Add(d, big.NewInt(1)) // shift [0, n-2] onto [1, n-1]
	return NewPrivateKey(d)
}

// PubKey returns the public key of the pair.
func (priv *PrivateKey) PubKey() *PublicKey {
	return priv.pub
}

// Secret returns a copy of the secret scalar. The scalar is never part of
// any serialized form produced by this package.
func (priv *PrivateKey) Secret() *big.Int {
	return new(big.Int).Set(priv.d)
}

// NewPublicKey wraps a curve point as a public key. The identity is not a
// valid public key.
func NewPublicKey(point ecc.Point) (*PublicKey, error) {
	if point.IsInfinity() {
		return nil, fmt.Errorf("%w: point at infinity", ErrMalformedPublicKey)
	}
	return &PublicKey{point: point}, nil
}

// Point returns the underlying curve point.
func (pub *PublicKey) Point() ecc.Point {
	return pub.point
}

// IsEqual reports whether two public keys are the same point.
func (pub *PublicKey) IsEqual(other *PublicKey) bool {
	return pub.point.Equal(other.point)
}

// SerializeCompressed encodes the key in the 33-byte compressed SEC format:
// a parity prefix (0x02 for even y, 0x03 for odd) followed by the 32-byte
// big-endian x coordinate.
func (pub *PublicKey) SerializeCompressed() []byte {
	b := make([]byte, 0, CompressedPubKeyLen)
	if pub.point.Y().Bit(0) == 0 {
		b = append(b, secCompressedEven)
	} else {
		b = append(b, secCompressedOdd)
	}
	return append(b, codec.IntToBigEndian(pub.point.X(), 32)...)
}

// SerializeUncompressed encodes the key in the 65-byte uncompressed SEC
// format: 0x04 followed by the 32-byte big-endian x and y coordinates.
func (pub *PublicKey) SerializeUncompressed() []byte {
	b := make([]byte, 0, UncompressedPubKeyLen)
	b = append(b, secUncompressed)
	b = append(b, codec.IntToBigEndian(pub.point.X(), 32)...)
	return append(b, codec.IntToBigEndian(pub.point.Y(), 32)...)
}

// ParsePublicKey decodes a SEC public key, dispatching on the prefix byte.
// For compressed keys the y coordinate is recovered by solving
// y^2 = x^3 + 7 with the modular square root x' = v^((p+1)/4) (valid because
// the secp256k1 prime is congruent to 3 mod 4) and picking the root whose
// parity matches the prefix. Unknown prefixes, wrong lengths, and
// coordinates off the curve all fail with ErrMalformedPublicKey.
func ParsePublicKey(b []byte) (*PublicKey, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedPublicKey)
	}
	curve := ecc.Secp256k1()

	switch b[0] {
	case secCompressedEven, secCompressedOdd:
		if len(b) != CompressedPubKeyLen {
			return nil, fmt.Errorf("%w: compressed key must be %d bytes, got %d",
				ErrMalformedPublicKey, CompressedPubKeyLen, len(b))
		}
		return parseCompressed(curve, b[0] == secCompressedOdd, b[1:])

	case secUncompressed:
		if len(b) != UncompressedPubKeyLen {
			return nil, fmt.Errorf("%w: uncompressed key must be %d bytes, got %d",
				ErrMalformedPublicKey, UncompressedPubKeyLen, len(b))
		}
		x := new(big.Int).SetBytes(b[1:33])
		y := new(big.Int).SetBytes(b[33:])
		point, err := ecc.NewPoint(curve, x, y)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedPublicKey, err)
		}
		return &PublicKey{point: point}, nil

	default:
		return nil, fmt.Errorf("%w: unknown prefix 0x%02x", ErrMalformedPublicKey, b[0])
	}
}

func parseCompressed(curve *ecc.CurveParams, odd bool, xBytes []byte) (*PublicKey, error) {
	xInt := new(big.Int).SetBytes(xBytes)
	x, err := ecc.NewFieldElement(xInt, curve.P)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPublicKey, err)
	}

	// y^2 = x^3 + b (a = 0 for secp256k1).
	b, err := ecc.NewFieldElement(curve.B, curve.P)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPublicKey, err)
	}
	rhs, err := x.Pow(big.NewInt(3)).Add(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPublicKey, err)
	}
	y, err := rhs.Sqrt()
	if err != nil {
		return nil, fmt.Errorf("%w: x has no matching y on the curve", ErrMalformedPublicKey)
	}
	if (y.Num().Bit(0) == 1) != odd {
		y = y.Neg()
	}

	point, err := ecc.NewPoint(curve, xInt, y.Num())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPublicKey, err)
	}
	return &PublicKey{point: point}, nil
}
