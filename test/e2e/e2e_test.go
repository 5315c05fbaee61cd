package e2e

import (
	"math/big"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	btcecdsa "github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	dcrecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/stretchr/testify/require"

	"github.com/btcmath/go-btc-ecc/pkg/codec"
	"github.com/btcmath/go-btc-ecc/pkg/ecdsa"
)

// keyPair builds the same secret in this library and in dcrec so the two
// implementations can be compared bit for bit.
func keyPair(t *testing.T, secret *big.Int) (*ecdsa.PrivateKey, *secp256k1.PrivateKey) {
	t.Helper()
	priv, err := ecdsa.NewPrivateKey(secret)
	if err != nil {
		t.Fatal(err)
	}
	ref := secp256k1.PrivKeyFromBytes(codec.IntToBigEndian(secret, 32))
	return priv, ref
}

func TestPublicKeyMatchesReference(t *testing.T) {
	for _, secret := range []*big.Int{
		big.NewInt(1),
		big.NewInt(12345),
		new(big.Int).SetBytes(codec.Hash256([]byte("reference secret"))),
	} {
		priv, ref := keyPair(t, secret)

		require.Equal(t, ref.PubKey().SerializeCompressed(), priv.PubKey().SerializeCompressed(),
			"compressed SEC encoding diverged for secret %x", secret)
		require.Equal(t, ref.PubKey().SerializeUncompressed(), priv.PubKey().SerializeUncompressed(),
			"uncompressed SEC encoding diverged for secret %x", secret)
	}
}

func TestSignaturesVerifyUnderReference(t *testing.T) {
	secret := new(big.Int).SetBytes(codec.Hash256([]byte("cross check secret")))
	priv, ref := keyPair(t, secret)

	digest := codec.Hash256([]byte("cross check message"))
	z := new(big.Int).SetBytes(digest)

	sig, err := priv.Sign(z)
	require.NoError(t, err)

	refSig, err := dcrecdsa.ParseDERSignature(sig.Serialize())
	require.NoError(t, err, "reference parser rejected our DER encoding")
	require.True(t, refSig.Verify(digest, ref.PubKey()),
		"reference implementation rejected our signature")
}

func TestReferenceSignaturesVerifyHere(t *testing.T) {
	secret := new(big.Int).SetBytes(codec.Hash256([]byte("reference signer")))
	priv, ref := keyPair(t, secret)

	digest := codec.Hash256([]byte("reference signed message"))
	refSig := dcrecdsa.Sign(ref, digest)

	sig, err := ecdsa.ParseDERSignature(refSig.Serialize())
	require.NoError(t, err, "our parser rejected the reference DER encoding")

	ok, err := priv.PubKey().Verify(new(big.Int).SetBytes(digest), sig)
	require.NoError(t, err)
	require.True(t, ok, "reference signature did not verify here")
}

func TestDeterministicSignaturesMatchBtcec(t *testing.T) {
	// Both sides derive the nonce from RFC 6979 and normalize to low s, so
	// the DER bytes must agree exactly.
	secret := new(big.Int).SetBytes(codec.Hash256([]byte("btcec parity secret")))
	priv, err := ecdsa.NewPrivateKey(secret)
	require.NoError(t, err)
	refPriv, _ := btcec.PrivKeyFromBytes(codec.IntToBigEndian(secret, 32))

	for _, msg := range []string{"first", "second", "third"} {
		digest := codec.Hash256([]byte(msg))

		sig, err := priv.Sign(new(big.Int).SetBytes(digest))
		require.NoError(t, err)

		refSig := btcecdsa.Sign(refPriv, digest)
		require.Equal(t, refSig.Serialize(), sig.Serialize(),
			"deterministic signature diverged for message %q", msg)
	}
}

func TestParseReferencePublicKeys(t *testing.T) {
	secret := new(big.Int).SetBytes(codec.Hash256([]byte("parse their keys")))
	priv, ref := keyPair(t, secret)

	parsed, err := ecdsa.ParsePublicKey(ref.PubKey().SerializeCompressed())
	require.NoError(t, err)
	require.True(t, parsed.IsEqual(priv.PubKey()))

	parsed, err = ecdsa.ParsePublicKey(ref.PubKey().SerializeUncompressed())
	require.NoError(t, err)
	require.True(t, parsed.IsEqual(priv.PubKey()))

	refParsed, err := secp256k1.ParsePubKey(priv.PubKey().SerializeCompressed())
	require.NoError(t, err)
	require.Equal(t, refParsed.SerializeCompressed(), priv.PubKey().SerializeCompressed())
}
