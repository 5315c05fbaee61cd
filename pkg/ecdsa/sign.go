package ecdsa

import (
	"fmt"
	"math/big"

	"github.com/btcmath/go-btc-ecc/pkg/ecc"
)

// maxNonceAttempts bounds the signing retry loop. Each retry only happens
// when r or s collapses to zero, which for a 256-bit group is vanishingly
// rare, so hitting the bound means the nonce source is broken.
const maxNonceAttempts = 100

// Sign produces a low-s ECDSA signature over the 256-bit integer digest z
// using the deterministic nonce scheme of RFC 6979, so the same key and
// digest always yield the same signature and nonces can never repeat across
// distinct digests.
func (priv *PrivateKey) Sign(z *big.Int) (*Signature, error) {
	return priv.SignWithNonce(z, RFC6979Nonce{})
}

// SignWithNonce produces a low-s ECDSA signature using nonces drawn from the
// given source. The core computation is r = (k*G).x mod n and
// s = (z + r*d) * k^-1 mod n; a draw whose r or s is zero is discarded and a
// new nonce requested, bounded by a fixed attempt budget after which
// ErrExhaustedNonceAttempts is returned. If s lands above n/2 it is replaced
// by n-s so the returned signature is canonical.
func (priv *PrivateKey) SignWithNonce(z *big.Int, src NonceSource) (*Signature, error) {
	curve := ecc.Secp256k1()
	n := curve.N
	zRed := new(big.Int).Mod(z, n)

	for attempt := 0; attempt < maxNonceAttempts; attempt++ {
		k, err := src.Nonce(zRed, priv.d, attempt)
		if err != nil {
			return nil, fmt.Errorf("draw nonce: %w", err)
		}
		if k.Sign() <= 0 || k.Cmp(n) >= 0 {
			continue
		}

		point, err := curve.Generator().ScalarMult(k)
		if err != nil {
			return nil, err
		}
		r := new(big.Int).Mod(point.X(), n)
		if r.Sign() == 0 {
			continue
		}

		// k^-1 via Fermat: k^(n-2) mod n, mirroring the field inversion.
		kInv := new(big.Int).Exp(k, nMinusTwo(n), n)

		s := new(big.Int).Mul(r, priv.d)
		s.Add(s, zRed)
		s.Mul(s, kInv)
		s.Mod(s, n)
		if s.Sign() == 0 {
			continue
		}

		// (r, s) and (r, n-s) verify equally; pick the low-s form.
		if s.Cmp(halfOrder(n)) > 0 {
			s.Sub(n, s)
		}
		return NewSignature(r, s)
	}
	return nil, ErrExhaustedNonceAttempts
}

// Verify checks the signature against the digest z. Scalars outside
// [1, n-1] fail with ErrInvalidSignature; a well-formed signature that does
// not satisfy the verification equation simply returns false.
func (pub *PublicKey) Verify(z *big.Int, sig *Signature) (bool, error) {
	curve := ecc.Secp256k1()
	n := curve.N

	if sig.r.Sign() <= 0 || sig.r.Cmp(n) >= 0 {
		return false, fmt.Errorf("%w: r", ErrInvalidSignature)
	}
	if sig.s.Sign() <= 0 || sig.s.Cmp(n) >= 0 {
		return false, fmt.Errorf("%w: s", ErrInvalidSignature)
	}

	w := new(big.Int).Exp(sig.s, nMinusTwo(n), n)
	u := new(big.Int).Mul(new(big.Int).Mod(z, n), w)
	u.Mod(u, n)
	v := new(big.Int).Mul(sig.r, w)
	v.Mod(v, n)

	uG, err := curve.Generator().ScalarMult(u)
	if err != nil {
		return false, err
	}
	vP, err := pub.point.ScalarMult(v)
	if err != nil {
		return false, err
	}
	total, err := uG.Add(vP)
	if err != nil {
		return false, err
	}
	if total.IsInfinity() {
		return false, nil
	}
	return new(big.Int).Mod(total.X(), n).Cmp(sig.r) == 0, nil
}

func nMinusTwo(n *big.Int) *big.Int {
	return new(big.Int).Sub(n, big.NewInt(2))
}

func halfOrder(n *big.Int) *big.Int {
	return new(big.Int).Rsh(n, 1)
}
