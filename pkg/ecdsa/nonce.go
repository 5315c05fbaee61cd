package ecdsa

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/btcmath/go-btc-ecc/internal/rfc6979"
	"github.com/btcmath/go-btc-ecc/pkg/ecc"
)

// NonceSource supplies per-signature nonce candidates. A nonce must be
// unpredictable to anyone without the secret and must never repeat for two
// different digests signed with the same key; a repeated nonce exposes the
// secret through simple algebra on the two signatures.
//
// The attempt parameter is the retry ordinal within one signing call,
// starting at zero. Deterministic sources use it to derive a fresh candidate
// when an earlier one produced an unusable signature; random sources may
// ignore it. Each call must return a fresh value, never a cached one.
type NonceSource interface {
	Nonce(z, d *big.Int, attempt int) (*big.Int, error)
}

// RandomNonce draws nonces uniformly from [1, n-1] using crypto/rand. The
// entropy source is acquired per call and never cached.
type RandomNonce struct{}

// Nonce implements NonceSource.
func (RandomNonce) Nonce(_, _ *big.Int, _ int) (*big.Int, error) {
	n := ecc.Secp256k1().N
	max := new(big.Int).Sub(n, big.NewInt(1))
	k, err := rand.Int(rand.Reader, max)
	if err != nil {
		return nil, fmt.Errorf("read entropy: %w", err)
	}
	return k.Add(k, big.NewInt(1)), nil
}

// RFC6979Nonce derives the deterministic nonce of RFC 6979 from the secret
// and the digest via an HMAC-SHA256 DRBG. The same (secret, digest) pair
// always yields the same nonce; distinct digests yield independent ones.
// Retry attempts continue the DRBG stream for additional candidates.
type RFC6979Nonce struct{}

// Nonce implements NonceSource.
func (RFC6979Nonce) Nonce(z, d *big.Int, attempt int) (*big.Int, error) {
	return rfc6979.Nonce(ecc.Secp256k1().N, d, z, attempt), nil
}
