package ecdsa

import (
	"fmt"
	"math/big"

	"github.com/btcmath/go-btc-ecc/pkg/ecc"
)

const (
	// asn1SequenceID is the ASN.1 identifier for a sequence.
	asn1SequenceID = 0x30

	// asn1IntegerID is the ASN.1 identifier for an integer.
	asn1IntegerID = 0x02

	// minSigLen is the shortest possible DER signature: sequence header,
	// two integer headers, and one byte for each of R and S.
	minSigLen = 8

	// maxSigLen is the longest possible DER signature for secp256k1: both
	// R and S take 32 bytes plus a possible leading zero byte.
	maxSigLen = 6 + 33 + 33
)

// Signature is an ECDSA signature, the scalar pair (r, s). Both scalars are
// always in [1, n-1]. Signatures are immutable once constructed.
type Signature struct {
	r *big.Int
	s *big.Int
}

// NewSignature constructs a signature from its two scalars, rejecting values
// outside [1, n-1] with ErrInvalidSignature.
func NewSignature(r, s *big.Int) (*Signature, error) {
	n := ecc.Secp256k1().N
	if r.Sign() <= 0 || r.Cmp(n) >= 0 {
		return nil, fmt.Errorf("%w: r", ErrInvalidSignature)
	}
	if s.Sign() <= 0 || s.Cmp(n) >= 0 {
		return nil, fmt.Errorf("%w: s", ErrInvalidSignature)
	}
	return &Signature{
		r: new(big.Int).Set(r),
		s: new(big.Int).Set(s),
	}, nil
}

// R returns a copy of the r scalar.
func (sig *Signature) R() *big.Int {
	return new(big.Int).Set(sig.r)
}

// S returns a copy of the s scalar.
func (sig *Signature) S() *big.Int {
	return new(big.Int).Set(sig.s)
}

// IsEqual reports whether two signatures have the same (r, s) pair.
func (sig *Signature) IsEqual(other *Signature) bool {
	return sig.r.Cmp(other.r) == 0 && sig.s.Cmp(other.s) == 0
}

// Serialize encodes the signature in strict DER:
//
//	0x30 <total length> 0x02 <length of R> <R> 0x02 <length of S> <S>
//
// R and S are minimal big-endian integers: leading zero bytes are trimmed,
// except that a single zero byte is kept in front of a value whose high bit
// is set so the integer stays non-negative under two's complement rules.
// The stored (r, s) pair is encoded exactly as held; callers relying on the
// low-s convention get it from signing, which normalizes before returning.
func (sig *Signature) Serialize() []byte {
	canonR := canonicalInt(sig.r)
	canonS := canonicalInt(sig.s)

	b := make([]byte, 0, 6+len(canonR)+len(canonS))
	b = append(b, asn1SequenceID)
	b = append(b, byte(4+len(canonR)+len(canonS)))
	b = append(b, asn1IntegerID)
	b = append(b, byte(len(canonR)))
	b = append(b, canonR...)
	b = append(b, asn1IntegerID)
	b = append(b, byte(len(canonS)))
	b = append(b, canonS...)
	return b
}

// canonicalInt returns v as a minimal big-endian two's-complement-safe
// positive integer.
func canonicalInt(v *big.Int) []byte {
	b := v.Bytes()
	if len(b) == 0 {
		return []byte{0x00}
	}
	if b[0]&0x80 != 0 {
		padded := make([]byte, len(b)+1)
		copy(padded[1:], b)
		return padded
	}
	return b
}

// ParseDERSignature decodes a strict DER signature. Any structural defect
// fails with ErrMalformedSignature: wrong tags, lengths that disagree with
// the actual byte count, trailing bytes, negative integers, and non-minimal
// (overlong) integer encodings. Scalars outside [1, n-1] fail with
// ErrInvalidSignature.
func ParseDERSignature(der []byte) (*Signature, error) {
	if len(der) < minSigLen {
		return nil, fmt.Errorf("%w: %d bytes is too short", ErrMalformedSignature, len(der))
	}
	if len(der) > maxSigLen {
		return nil, fmt.Errorf("%w: %d bytes is too long", ErrMalformedSignature, len(der))
	}
	if der[0] != asn1SequenceID {
		return nil, fmt.Errorf("%w: leading tag 0x%02x is not a sequence", ErrMalformedSignature, der[0])
	}
	if int(der[1]) != len(der)-2 {
		return nil, fmt.Errorf("%w: sequence length %d disagrees with %d remaining bytes",
			ErrMalformedSignature, der[1], len(der)-2)
	}

	r, rest, err := parseDERInt(der[2:], "r")
	if err != nil {
		return nil, err
	}
	s, rest, err := parseDERInt(rest, "s")
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrMalformedSignature, len(rest))
	}
	return NewSignature(r, s)
}

// parseDERInt consumes one DER integer (tag, length, minimal big-endian
// value) from the front of buf and returns the value plus the remainder.
func parseDERInt(buf []byte, name string) (*big.Int, []byte, error) {
	if len(buf) < 2 {
		return nil, nil, fmt.Errorf("%w: truncated %s header", ErrMalformedSignature, name)
	}
	if buf[0] != asn1IntegerID {
		return nil, nil, fmt.Errorf("%w: tag 0x%02x for %s is not an integer", ErrMalformedSignature, buf[0], name)
	}
	length := int(buf[1])
	if length == 0 {
		return nil, nil, fmt.Errorf("%w: zero-length %s", ErrMalformedSignature, name)
	}
	if len(buf) < 2+length {
		return nil, nil, fmt.Errorf("%w: %s length %d exceeds remaining bytes", ErrMalformedSignature, name, length)
	}
	val := buf[2 : 2+length]
	if val[0]&0x80 != 0 {
		return nil, nil, fmt.Errorf("%w: negative %s", ErrMalformedSignature, name)
	}
	if length > 1 && val[0] == 0x00 && val[1]&0x80 == 0 {
		return nil, nil, fmt.Errorf("%w: non-minimal %s encoding", ErrMalformedSignature, name)
	}
	return new(big.Int).SetBytes(val), buf[2+length:], nil
}
