package ecdsa

import "errors"

// Common errors returned by the ECDSA layer.
var (
	// ErrMalformedSignature is returned when DER signature bytes fail the
	// strict structural parse: wrong tags, inconsistent lengths, trailing or
	// missing bytes, negative or non-minimal integer encodings.
	ErrMalformedSignature = errors.New("malformed DER signature")

	// ErrMalformedPublicKey is returned when SEC public key bytes have an
	// unknown prefix, the wrong length, or encode a point off the curve.
	ErrMalformedPublicKey = errors.New("malformed SEC public key")

	// ErrInvalidSignature is returned when a signature scalar is outside the
	// valid range [1, n-1]. Well-formed signatures that simply fail the
	// verification equation do not produce an error; Verify returns false.
	ErrInvalidSignature = errors.New("signature scalar outside [1, n-1]")

	// ErrInvalidPrivateKey is returned when a secret scalar is outside the
	// valid range [1, n-1].
	ErrInvalidPrivateKey = errors.New("private key scalar outside [1, n-1]")

	// ErrExhaustedNonceAttempts is returned when signing fails to find a
	// usable nonce within the attempt budget. With any functioning nonce
	// source the probability is negligible, but the failure is defined and
	// recoverable rather than an unbounded loop.
	ErrExhaustedNonceAttempts = errors.New("no usable signing nonce after maximum attempts")
)
