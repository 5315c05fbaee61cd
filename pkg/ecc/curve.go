package ecc

import "math/big"

// CurveParams describes a short Weierstrass curve y^2 = x^3 + A*x + B over
// the prime field F_P, together with a base point (Gx, Gy) generating a
// cyclic subgroup of order N. Parameters are plain data so that unit tests
// can run against small toy curves while production code uses Secp256k1.
type CurveParams struct {
	P    *big.Int // field prime
	A    *big.Int // curve coefficient a
	B    *big.Int // curve coefficient b
	Gx   *big.Int // base point x coordinate
	Gy   *big.Int // base point y coordinate
	N    *big.Int // order of the subgroup generated by the base point
	Name string
}

// Generator returns the curve's base point G.
func (c *CurveParams) Generator() Point {
	gx := newReduced(new(big.Int).Set(c.Gx), c.P)
	gy := newReduced(new(big.Int).Set(c.Gy), c.P)
	return Point{curve: c, x: &gx, y: &gy}
}

// matches reports whether two descriptors define the same curve and
// subgroup, so points built from separately constructed but value-equal
// parameter sets are interchangeable.
func (c *CurveParams) matches(other *CurveParams) bool {
	if c == other {
		return true
	}
	if c == nil || other == nil {
		return false
	}
	return c.P.Cmp(other.P) == 0 &&
		c.A.Cmp(other.A) == 0 &&
		c.B.Cmp(other.B) == 0 &&
		c.Gx.Cmp(other.Gx) == 0 &&
		c.Gy.Cmp(other.Gy) == 0 &&
		c.N.Cmp(other.N) == 0
}

var secp256k1 *CurveParams

func init() {
	secp256k1 = &CurveParams{
		P:    hexInt("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f"),
		A:    big.NewInt(0),
		B:    big.NewInt(7),
		Gx:   hexInt("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"),
		Gy:   hexInt("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"),
		N:    hexInt("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"),
		Name: "secp256k1",
	}
}

// Secp256k1 returns the fixed parameter set of the Bitcoin curve. The
// returned struct is shared and must not be modified.
func Secp256k1() *CurveParams {
	return secp256k1
}

func hexInt(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("ecc: invalid curve constant " + s)
	}
	return n
}
