package benchmark

import (
	"math/big"
	"testing"

	"github.com/btcmath/go-btc-ecc/pkg/codec"
	"github.com/btcmath/go-btc-ecc/pkg/ecc"
	"github.com/btcmath/go-btc-ecc/pkg/ecdsa"
)

func newKey(b *testing.B) *ecdsa.PrivateKey {
	b.Helper()
	secret := new(big.Int).SetBytes(codec.Hash256([]byte("benchmark secret")))
	priv, err := ecdsa.NewPrivateKey(secret)
	if err != nil {
		b.Fatal(err)
	}
	return priv
}

func BenchmarkFieldMul(b *testing.B) {
	curve := ecc.Secp256k1()
	x, err := ecc.NewFieldElement(curve.Gx, curve.P)
	if err != nil {
		b.Fatal(err)
	}
	y, err := ecc.NewFieldElement(curve.Gy, curve.P)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := x.Mul(y); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFieldInverse(b *testing.B) {
	curve := ecc.Secp256k1()
	one, err := ecc.NewFieldElement(big.NewInt(1), curve.P)
	if err != nil {
		b.Fatal(err)
	}
	x, err := ecc.NewFieldElement(curve.Gx, curve.P)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := one.Div(x); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPointAdd(b *testing.B) {
	g := ecc.Secp256k1().Generator()
	p, err := g.ScalarMult(big.NewInt(2))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.Add(p); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkScalarMult(b *testing.B) {
	g := ecc.Secp256k1().Generator()
	k := new(big.Int).SetBytes(codec.Hash256([]byte("scalar")))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.ScalarMult(k); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSign(b *testing.B) {
	priv := newKey(b)
	z := new(big.Int).SetBytes(codec.Hash256([]byte("benchmark message")))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := priv.Sign(z); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkVerify(b *testing.B) {
	priv := newKey(b)
	z := new(big.Int).SetBytes(codec.Hash256([]byte("benchmark message")))
	sig, err := priv.Sign(z)
	if err != nil {
		b.Fatal(err)
	}
	pub := priv.PubKey()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ok, err := pub.Verify(z, sig)
		if err != nil || !ok {
			b.Fatalf("Verify = (%v, %v)", ok, err)
		}
	}
}

func BenchmarkParseDERSignature(b *testing.B) {
	priv := newKey(b)
	sig, err := priv.Sign(big.NewInt(1))
	if err != nil {
		b.Fatal(err)
	}
	der := sig.Serialize()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ecdsa.ParseDERSignature(der); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkHash256(b *testing.B) {
	data := make([]byte, 1024)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		codec.Hash256(data)
	}
}
