// Command ecckey is a small utility around the library: it generates
// secp256k1 key pairs, signs message digests, and verifies DER signatures,
// all on hex-encoded wire formats.
package main

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/btcmath/go-btc-ecc/pkg/codec"
	"github.com/btcmath/go-btc-ecc/pkg/ecdsa"
)

func main() {
	app := &cli.App{
		Name:  "ecckey",
		Usage: "generate secp256k1 keys, sign messages, verify signatures",
		Commands: []*cli.Command{
			{
				Name:   "generate",
				Usage:  "generate a new key pair and print it as hex",
				Action: runGenerate,
			},
			{
				Name:  "pubkey",
				Usage: "derive the public key for a hex-encoded secret",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "secret", Usage: "private key as hex", Required: true},
					&cli.BoolFlag{Name: "uncompressed", Usage: "use the 65-byte SEC format"},
				},
				Action: runPubKey,
			},
			{
				Name:  "sign",
				Usage: "sign the double-SHA256 digest of a message",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "secret", Usage: "private key as hex", Required: true},
					&cli.StringFlag{Name: "message", Usage: "message to sign", Required: true},
				},
				Action: runSign,
			},
			{
				Name:  "verify",
				Usage: "verify a DER signature over the double-SHA256 digest of a message",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "pubkey", Usage: "SEC public key as hex", Required: true},
					&cli.StringFlag{Name: "message", Usage: "signed message", Required: true},
					&cli.StringFlag{Name: "signature", Usage: "DER signature as hex", Required: true},
				},
				Action: runVerify,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func runGenerate(*cli.Context) error {
	priv, err := ecdsa.GeneratePrivateKey()
	if err != nil {
		return err
	}
	fmt.Printf("secret: %064x\n", priv.Secret())
	fmt.Printf("pubkey: %s\n", hex.EncodeToString(priv.PubKey().SerializeCompressed()))
	return nil
}

func runPubKey(c *cli.Context) error {
	priv, err := parseSecret(c.String("secret"))
	if err != nil {
		return err
	}
	pub := priv.PubKey()
	if c.Bool("uncompressed") {
		fmt.Println(hex.EncodeToString(pub.SerializeUncompressed()))
	} else {
		fmt.Println(hex.EncodeToString(pub.SerializeCompressed()))
	}
	return nil
}

func runSign(c *cli.Context) error {
	priv, err := parseSecret(c.String("secret"))
	if err != nil {
		return err
	}
	z := new(big.Int).SetBytes(codec.Hash256([]byte(c.String("message"))))
	sig, err := priv.Sign(z)
	if err != nil {
		return err
	}
	fmt.Println(hex.EncodeToString(sig.Serialize()))
	return nil
}

func runVerify(c *cli.Context) error {
	pubBytes, err := hex.DecodeString(c.String("pubkey"))
	if err != nil {
		return fmt.Errorf("decode pubkey hex: %w", err)
	}
	pub, err := ecdsa.ParsePublicKey(pubBytes)
	if err != nil {
		return err
	}
	sigBytes, err := hex.DecodeString(c.String("signature"))
	if err != nil {
		return fmt.Errorf("decode signature hex: %w", err)
	}
	sig, err := ecdsa.ParseDERSignature(sigBytes)
	if err != nil {
		return err
	}
	z := new(big.Int).SetBytes(codec.Hash256([]byte(c.String("message"))))
	ok, err := pub.Verify(z, sig)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("INVALID")
		os.Exit(1)
	}
	fmt.Println("OK")
	return nil
}

func parseSecret(s string) (*ecdsa.PrivateKey, error) {
	d, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, fmt.Errorf("secret %q is not valid hex", s)
	}
	return ecdsa.NewPrivateKey(d)
}
