// Package ecdsa implements ECDSA key pairs, signing and verification over
// the secp256k1 curve, together with the canonical byte encodings used on
// the Bitcoin wire: SEC for public keys and strict DER for signatures.
//
// The package consumes message digests as 256-bit integers; computing the
// digest (for Bitcoin, double SHA-256 over the signable transaction form)
// is the caller's responsibility.
//
// Nonce generation is an injected capability. The default is the
// deterministic scheme of RFC 6979, which makes signatures reproducible and
// rules out nonce reuse; SignWithNonce accepts any NonceSource, including a
// cryptographically random one. Reusing a nonce across two signatures leaks
// the private key, so custom sources must never repeat.
package ecdsa
