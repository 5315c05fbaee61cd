// Package rfc6979 implements the deterministic nonce derivation of RFC 6979
// section 3.2 for 256-bit group orders, using HMAC-SHA256 as the DRBG.
package rfc6979

import (
	"crypto/hmac"
	"math/big"

	"github.com/minio/sha256-simd"
)

// scalarSize is the octet length of the group order; the package only
// supports 256-bit orders (qlen == hlen == 256), which removes the bit
// shifting the general algorithm needs for other widths.
const scalarSize = 32

// Nonce derives the deterministic nonce for signing digest z with secret x
// in a group of order q. skip selects later candidates from the DRBG stream:
// skip == 0 returns the first valid candidate, skip == 1 the second, and so
// on, which gives signing retry loops a fresh deterministic value per
// attempt.
func Nonce(q, x, z *big.Int, skip int) *big.Int {
	// Step a: h1 is already the digest; reduce it into the group and pad,
	// the combined bits2octets transform for a 256-bit q.
	h1 := int2octets(new(big.Int).Mod(z, q))
	x1 := int2octets(x)

	// Step b/c: V = 0x01..01, K = 0x00..00.
	v := make([]byte, scalarSize)
	for i := range v {
		v[i] = 0x01
	}
	k := make([]byte, scalarSize)

	// Step d: K = HMAC_K(V || 0x00 || int2octets(x) || bits2octets(h1)).
	k = mac(k, v, []byte{0x00}, x1, h1)
	// Step e: V = HMAC_K(V).
	v = mac(k, v)
	// Step f: K = HMAC_K(V || 0x01 || int2octets(x) || bits2octets(h1)).
	k = mac(k, v, []byte{0x01}, x1, h1)
	// Step g: V = HMAC_K(V).
	v = mac(k, v)

	// Step h: draw candidates until one lands in [1, q-1], skipping the
	// requested number of valid candidates first.
	for {
		v = mac(k, v)
		candidate := new(big.Int).SetBytes(v)
		if candidate.Sign() > 0 && candidate.Cmp(q) < 0 {
			if skip == 0 {
				return candidate
			}
			skip--
		}
		k = mac(k, v, []byte{0x00})
		v = mac(k, v)
	}
}

// mac computes HMAC-SHA256 over the concatenation of the chunks.
func mac(key []byte, chunks ...[]byte) []byte {
	h := hmac.New(sha256.New, key)
	for _, c := range chunks {
		h.Write(c)
	}
	return h.Sum(nil)
}

// int2octets left-pads the big-endian bytes of v to the scalar width.
func int2octets(v *big.Int) []byte {
	out := make([]byte, scalarSize)
	b := v.Bytes()
	copy(out[scalarSize-len(b):], b)
	return out
}
