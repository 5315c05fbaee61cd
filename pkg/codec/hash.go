package codec

import (
	"github.com/minio/sha256-simd"
	"golang.org/x/crypto/ripemd160"
)

// Hash256 computes SHA-256(SHA-256(b)), the digest function Bitcoin applies
// to signable transaction forms and block headers.
func Hash256(b []byte) []byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return second[:]
}

// Hash160 computes RIPEMD-160(SHA-256(b)), the composition behind Bitcoin
// address payloads.
func Hash160(b []byte) []byte {
	first := sha256.Sum256(b)
	h := ripemd160.New()
	h.Write(first[:])
	return h.Sum(nil)
}
