package rfc6979

import (
	"math/big"
	"testing"
)

func hexBig(t *testing.T, s string) *big.Int {
	t.Helper()
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		t.Fatalf("bad hex int %q", s)
	}
	return n
}

// secp256k1 group order.
var order = func() *big.Int {
	n, _ := new(big.Int).SetString("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141", 16)
	return n
}()

func TestNonce(t *testing.T) {
	// Well-known secp256k1/SHA-256 vector: secret key 1,
	// z = SHA-256("Satoshi Nakamoto").
	x := big.NewInt(1)
	z := hexBig(t, "a0dc65ffca799873cbea0ac274015b9526505daaaed385155425f7337704883e")

	t.Run("first candidate", func(t *testing.T) {
		want := hexBig(t, "8f8a276c19f4149656b280621e358cce24f5f52542772691ee69063b74f15d15")
		if k := Nonce(order, x, z, 0); k.Cmp(want) != 0 {
			t.Errorf("k = %x, want %x", k, want)
		}
	})

	t.Run("skip advances the stream", func(t *testing.T) {
		want := hexBig(t, "f15fb763a6bcbbacbde0a6a9ae2a02482bd92f3e75a50b357bd551ddd771045e")
		if k := Nonce(order, x, z, 1); k.Cmp(want) != 0 {
			t.Errorf("k = %x, want %x", k, want)
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		if Nonce(order, x, z, 0).Cmp(Nonce(order, x, z, 0)) != 0 {
			t.Error("same inputs produced different nonces")
		}
	})

	t.Run("digest separates nonces", func(t *testing.T) {
		other := new(big.Int).Add(z, big.NewInt(1))
		if Nonce(order, x, z, 0).Cmp(Nonce(order, x, other, 0)) == 0 {
			t.Error("distinct digests produced the same nonce")
		}
	})

	t.Run("key separates nonces", func(t *testing.T) {
		if Nonce(order, x, z, 0).Cmp(Nonce(order, big.NewInt(2), z, 0)) == 0 {
			t.Error("distinct keys produced the same nonce")
		}
	})

	t.Run("in range", func(t *testing.T) {
		for skip := 0; skip < 4; skip++ {
			k := Nonce(order, x, z, skip)
			if k.Sign() <= 0 || k.Cmp(order) >= 0 {
				t.Fatalf("skip %d: k = %x outside [1, q-1]", skip, k)
			}
		}
	})
}
